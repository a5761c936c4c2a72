package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"petcare-marketplace/internal/domain/cart"
	"petcare-marketplace/internal/domain/session"
)

var (
	ErrNotLoggedIn    = errors.New("checkout requires an active session")
	ErrEmptySelection = errors.New("no cart items selected")
)

// Métodos de pago aceptados (simulados, no hay cobro real).
const (
	PaymentCreditCard   = "credit-card"
	PaymentBankTransfer = "bank-transfer"
	PaymentEWallet      = "e-wallet"
	PaymentCOD          = "cod"
)

// El envío es gratis; el total de la orden es el total seleccionado.
const ShippingCost int64 = 0

// CartSource es la parte del carrito que usa checkout.
type CartSource interface {
	SelectedItems() []cart.Item
	RemovePurchased(ctx context.Context, bought []cart.Item) error
}

// OrderRecorder es la parte de la sesión que usa checkout.
type OrderRecorder interface {
	IsLoggedIn() bool
	AddOrder(ctx context.Context, in session.OrderInput) (session.Order, error)
}

type Input struct {
	Address       string
	City          string
	PaymentMethod string
}

// ShippingAddress arma la dirección como la guarda la orden: "dirección, ciudad".
func (in Input) ShippingAddress() string {
	addr := strings.TrimSpace(in.Address)
	city := strings.TrimSpace(in.City)
	if city == "" {
		return addr
	}
	return addr + ", " + city
}

type Service struct {
	cart   CartSource
	orders OrderRecorder
}

func NewService(c CartSource, o OrderRecorder) *Service {
	return &Service{cart: c, orders: o}
}

// Checkout convierte las líneas seleccionadas en una orden "processing" y descuenta
// del carrito esas mismas líneas. Las no seleccionadas quedan para otra compra.
func (s *Service) Checkout(ctx context.Context, in Input) (session.Order, error) {
	if !s.orders.IsLoggedIn() {
		return session.Order{}, ErrNotLoggedIn
	}

	selected := s.cart.SelectedItems()
	if len(selected) == 0 {
		return session.Order{}, ErrEmptySelection
	}

	items := make([]session.OrderItem, 0, len(selected))
	var subtotal int64
	for _, it := range selected {
		items = append(items, session.OrderItem{
			ProductID: it.ID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
		subtotal += it.Subtotal()
	}

	o, err := s.orders.AddOrder(ctx, session.OrderInput{
		Status:          session.OrderProcessing,
		Items:           items,
		Total:           subtotal + ShippingCost,
		ShippingAddress: in.ShippingAddress(),
		PaymentMethod:   in.PaymentMethod,
	})
	if err != nil {
		return o, fmt.Errorf("record order: %w", err)
	}
	if o.ID == "" {
		// la sesión se cerró entre el chequeo y el alta
		return session.Order{}, ErrNotLoggedIn
	}

	// solo lo que entró en la orden; el carrito pudo cambiar mientras tanto
	if err := s.cart.RemovePurchased(ctx, selected); err != nil {
		return o, fmt.Errorf("remove purchased items: %w", err)
	}
	return o, nil
}
