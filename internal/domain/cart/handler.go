package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"petcare-marketplace/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

// El carrito no exige sesión: se puede llenar antes del login.
// find puede ser nil: entonces todo producto llega completo en el body.
func RegisterRoutes(r chi.Router, st *Store, find ProductFinder) {
	r.Route("/cart", func(cr chi.Router) {
		cr.Get("/", getCartHandler(st))
		cr.Delete("/", clearCartHandler(st))
		cr.Post("/select-all", selectAllHandler(st))

		cr.Post("/items", addItemHandler(st, find))
		cr.Patch("/items/{productID}", updateQuantityHandler(st))
		cr.Delete("/items/{productID}", removeItemHandler(st))
		cr.Post("/items/{productID}/toggle", toggleSelectionHandler(st))
	})
}

// Con un id del catálogo alcanza el id; el resto del body se ignora.
type addItemRequest struct {
	ID            int64  `json:"id" validate:"required,gt=0"`
	Name          string `json:"name"`
	Price         string `json:"price"` // texto de display, ej "Rp 125.000"
	OriginalPrice string `json:"original_price"`
	Image         string `json:"image"`
	Category      string `json:"category"`
}

type updateQuantityRequest struct {
	// puntero para distinguir "0" (elimina) de "no enviado"
	Quantity *int `json:"quantity" validate:"required"`
}

type selectAllRequest struct {
	Selected *bool `json:"selected" validate:"required"`
}

type itemResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	OriginalPrice *int64 `json:"original_price,omitempty"`
	Image         string `json:"image"`
	Category      string `json:"category"`
	Quantity      int    `json:"quantity"`
	Selected      bool   `json:"selected"`
	Subtotal      int64  `json:"subtotal"`
}

type cartResponse struct {
	Items         []itemResponse `json:"items"`
	TotalItems    int            `json:"total_items"`
	TotalPrice    int64          `json:"total_price"`
	SelectedTotal int64          `json:"selected_total"`
}

// getCartHandler godoc
// @Summary Ver carrito con totales
// @Tags cart
// @Produce json
// @Success 200 {object} cartResponse
// @Router /cart [get]
func getCartHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, toCartResponse(st))
	}
}

// addItemHandler godoc
// @Summary Agregar producto al carrito
// @Description Si el producto ya está, suma 1 a la cantidad. Un id del catálogo toma nombre y precio del catálogo; un id desconocido necesita name y price. El precio se normaliza a entero.
// @Tags cart
// @Accept json
// @Produce json
// @Param payload body addItemRequest true "Producto"
// @Success 200 {object} cartResponse
// @Failure 400 {string} string "invalid json / validation failed"
// @Failure 404 {string} string "product not found"
// @Failure 409 {string} string "product out of stock"
// @Router /cart/items [post]
func addItemHandler(st *Store, find ProductFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addItemRequest
		if err := validate.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := resolveProduct(req, find)
		switch {
		case errors.Is(err, ErrOutOfStock):
			http.Error(w, err.Error(), http.StatusConflict)
			return
		case errors.Is(err, ErrProductNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		case err != nil:
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := st.AddToCart(r.Context(), p); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toCartResponse(st))
	}
}

// updateQuantityHandler godoc
// @Summary Cambiar cantidad de una línea
// @Description quantity <= 0 elimina la línea.
// @Tags cart
// @Accept json
// @Produce json
// @Param productID path int true "ID del producto"
// @Param payload body updateQuantityRequest true "Nueva cantidad"
// @Success 200 {object} cartResponse
// @Failure 400 {string} string "invalid productID / invalid json"
// @Router /cart/items/{productID} [patch]
func updateQuantityHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := productID(w, r)
		if !ok {
			return
		}
		var req updateQuantityRequest
		if err := validate.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := st.UpdateQuantity(r.Context(), id, *req.Quantity); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toCartResponse(st))
	}
}

// removeItemHandler godoc
// @Summary Quitar línea del carrito
// @Tags cart
// @Produce json
// @Param productID path int true "ID del producto"
// @Success 200 {object} cartResponse
// @Router /cart/items/{productID} [delete]
func removeItemHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := productID(w, r)
		if !ok {
			return
		}
		if err := st.RemoveFromCart(r.Context(), id); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toCartResponse(st))
	}
}

// toggleSelectionHandler godoc
// @Summary Alternar selección de una línea
// @Tags cart
// @Produce json
// @Param productID path int true "ID del producto"
// @Success 200 {object} cartResponse
// @Router /cart/items/{productID}/toggle [post]
func toggleSelectionHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := productID(w, r)
		if !ok {
			return
		}
		if err := st.ToggleSelection(r.Context(), id); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toCartResponse(st))
	}
}

// selectAllHandler godoc
// @Summary Seleccionar / deseleccionar todo
// @Tags cart
// @Accept json
// @Produce json
// @Param payload body selectAllRequest true "selected"
// @Success 200 {object} cartResponse
// @Router /cart/select-all [post]
func selectAllHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req selectAllRequest
		if err := validate.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := st.SelectAll(r.Context(), *req.Selected); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toCartResponse(st))
	}
}

// clearCartHandler godoc
// @Summary Vaciar carrito
// @Tags cart
// @Success 204
// @Router /cart [delete]
func clearCartHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.ClearCart(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

var errMissingFields = errors.New("name and price are required for products outside the catalog")

// resolveProduct: el catálogo manda; fuera del catálogo el body tiene que traer
// nombre y precio.
func resolveProduct(req addItemRequest, find ProductFinder) (Product, error) {
	if find != nil {
		p, err := find(req.ID)
		if err == nil || !errors.Is(err, ErrProductNotFound) {
			return p, err
		}
		if req.Name == "" || req.Price == "" {
			return Product{}, err
		}
	} else if req.Name == "" || req.Price == "" {
		return Product{}, errMissingFields
	}
	return Product{
		ID:            req.ID,
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		Category:      req.Category,
	}, nil
}

func productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid productID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func toCartResponse(st *Store) cartResponse {
	items := st.Items()
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, itemResponse{
			ID:            it.ID,
			Name:          it.Name,
			Price:         it.Price,
			OriginalPrice: it.OriginalPrice,
			Image:         it.Image,
			Category:      it.Category,
			Quantity:      it.Quantity,
			Selected:      it.Selected,
			Subtotal:      it.Subtotal(),
		})
	}
	return cartResponse{
		Items:         out,
		TotalItems:    st.TotalItems(),
		TotalPrice:    st.TotalPrice(),
		SelectedTotal: st.SelectedTotal(),
	}
}

// writeJSON duplicado a propósito (ver session).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
