package cart

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product out of stock")
)

// ProductFinder resuelve un id de catálogo. Devuelve ErrProductNotFound o
// ErrOutOfStock.
type ProductFinder func(id int64) (Product, error)

// Product es lo que llega desde el catálogo. Price y OriginalPrice son texto de
// display ("Rp 125.000"); el store los normaliza con ParsePrice.
type Product struct {
	ID            int64
	Name          string
	Price         string
	OriginalPrice string // opcional
	Image         string
	Category      string
}

// Item es una línea del carrito. Hay como mucho una por producto y Quantity
// siempre es >= 1: bajar a 0 elimina la línea.
//
// Los tags json son el formato persistido (compatible con el cliente web).
type Item struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	OriginalPrice *int64 `json:"originalPrice,omitempty"`
	Image         string `json:"image"`
	Category      string `json:"category"`
	Quantity      int    `json:"quantity"`
	Selected      bool   `json:"selected"`
}

// Subtotal = precio unitario x cantidad.
func (it Item) Subtotal() int64 {
	return it.Price * int64(it.Quantity)
}

func (it Item) clone() Item {
	out := it
	if it.OriginalPrice != nil {
		v := *it.OriginalPrice
		out.OriginalPrice = &v
	}
	return out
}
