package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"petcare-marketplace/internal/domain/session"
	"petcare-marketplace/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/checkout", checkoutHandler(svc))
}

type checkoutRequest struct {
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=credit-card bank-transfer e-wallet cod"`
}

// checkoutHandler godoc
// @Summary Checkout simulado
// @Description Crea una orden con los productos seleccionados del carrito y los quita del carrito. No hay cobro real.
// @Tags checkout
// @Accept json
// @Produce json
// @Param payload body checkoutRequest true "Envío y método de pago"
// @Success 201 {object} session.OrderResponse
// @Failure 400 {string} string "invalid json / validation failed"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "no cart items selected"
// @Router /checkout [post]
func checkoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkoutRequest
		if err := validate.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		o, err := svc.Checkout(r.Context(), Input{
			Address:       req.Address,
			City:          req.City,
			PaymentMethod: req.PaymentMethod,
		})
		switch {
		case errors.Is(err, ErrNotLoggedIn):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		case errors.Is(err, ErrEmptySelection):
			http.Error(w, err.Error(), http.StatusConflict)
			return
		case err != nil && o.ID == "":
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		// con err de persistencia pero ID asignado la orden ya existe en memoria: se responde igual

		writeJSON(w, http.StatusCreated, session.ToOrderResponse(o))
	}
}

// writeJSON duplicado a propósito (ver session).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
