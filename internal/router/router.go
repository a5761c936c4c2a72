package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "petcare-marketplace/docs"
	mem "petcare-marketplace/internal/adapters/storage/memory"
	"petcare-marketplace/internal/domain/cart"
	"petcare-marketplace/internal/domain/catalog"
	"petcare-marketplace/internal/domain/chat"
	"petcare-marketplace/internal/domain/checkout"
	"petcare-marketplace/internal/domain/session"
	"petcare-marketplace/internal/middleware"
	"petcare-marketplace/internal/platform/logger"
	"petcare-marketplace/internal/ports/auth"
	"petcare-marketplace/internal/ports/kv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, usa kv in-memory.
	KV kv.Store

	// Obligatorio: quién acepta las credenciales del login.
	Verifier auth.CredentialVerifier

	Logger logger.Logger

	ChatMinDelay time.Duration
	ChatMaxDelay time.Duration
}

// App es el handler HTTP más los stores que hay que cerrar al apagar.
type App struct {
	http.Handler

	Session *session.Store
	Cart    *cart.Store
	Chat    *chat.Service
}

// Close frena las respuestas de chat pendientes.
func (a *App) Close() {
	a.Chat.CloseAll()
}

func NewRouter(ctx context.Context, opts Options) (*App, error) {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.KV == nil {
		opts.KV = mem.NewKVStore()
	}
	if opts.Verifier == nil {
		return nil, fmt.Errorf("router: credential verifier is required")
	}

	// Stores (hidratan desde kv)
	sessionStore, err := session.NewStore(ctx, opts.KV, opts.Verifier, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	cartStore, err := cart.NewStore(ctx, opts.KV, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("cart store: %w", err)
	}

	// Services
	shop := catalog.New()
	booker := catalog.NewBooker(shop, sessionStore)
	checkoutSvc := checkout.NewService(cartStore, sessionStore)
	chatSvc := chat.NewService(sessionStore, chat.Options{
		Doctors:  shop,
		MinDelay: opts.ChatMinDelay,
		MaxDelay: opts.ChatMaxDelay,
		Logger:   opts.Logger,
	})

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	session.RegisterRoutes(r, sessionStore)
	catalog.RegisterRoutes(r, shop, booker, sessionStore)
	cart.RegisterRoutes(r, cartStore, shop.CartProduct)
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.RequireLogin(sessionStore))
		checkout.RegisterRoutes(gr, checkoutSvc)
	})
	chat.RegisterRoutes(r, chatSvc, sessionStore)

	return &App{
		Handler: r,
		Session: sessionStore,
		Cart:    cartStore,
		Chat:    chatSvc,
	}, nil
}
