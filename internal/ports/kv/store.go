package kv

import "context"

// Claves fijas, una por colección. Mismos nombres que usaba el storage del navegador
// para que un volcado existente se pueda importar tal cual.
const (
	KeyUser          = "petcare_user"
	KeyBookings      = "petcare_bookings"
	KeyConsultations = "petcare_consultations"
	KeyHomeServices  = "petcare_home_services"
	KeyOrders        = "petcare_orders"
	KeyCart          = "petcare_cart"
)

// Store es la superficie clave -> texto que consumen los stores de dominio.
// Get devuelve ok=false si la clave no existe (no es error).
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
