package catalog

import (
	"errors"
	"strings"

	"petcare-marketplace/internal/domain/cart"
)

// CategoryAll no filtra.
const CategoryAll = "all"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrDoctorNotFound  = errors.New("doctor not found")
)

// Catalog es de solo lectura: se arma una vez y nunca cambia, así que no
// necesita lock. Todo lo que devuelve es copia.
type Catalog struct {
	categories []Category
	products   []Product
	services   []HomeService
	slots      []string
	doctors    []Doctor
}

func New() *Catalog {
	return &Catalog{
		categories: seedCategories(),
		products:   seedProducts(),
		services:   seedServices(),
		slots:      seedTimeSlots(),
		doctors:    seedDoctors(),
	}
}

// ProductFilter: Category "" o "all" no filtra; Query busca en el nombre sin
// distinguir mayúsculas.
type ProductFilter struct {
	Category string
	Query    string
}

func (f ProductFilter) match(p Product) bool {
	if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	return q == "" || strings.Contains(strings.ToLower(p.Name), q)
}

// Categories incluye "all" primero.
func (c *Catalog) Categories() []Category {
	out := make([]Category, 0, len(c.categories)+1)
	out = append(out, Category{ID: CategoryAll, Name: "Semua Produk"})
	return append(out, c.categories...)
}

func (c *Catalog) HasCategory(id string) bool {
	if id == CategoryAll {
		return true
	}
	for _, cat := range c.categories {
		if cat.ID == id {
			return true
		}
	}
	return false
}

func (c *Catalog) Products(f ProductFilter) []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if f.match(p) {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Product(id int64) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// CartProduct adapta un producto del catálogo a lo que espera el carrito.
// Cumple cart.ProductFinder.
func (c *Catalog) CartProduct(id int64) (cart.Product, error) {
	p, ok := c.Product(id)
	if !ok {
		return cart.Product{}, cart.ErrProductNotFound
	}
	if !p.InStock {
		return cart.Product{}, cart.ErrOutOfStock
	}
	return cart.Product{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Category:      p.Category,
	}, nil
}

func (c *Catalog) Services() []HomeService {
	out := make([]HomeService, 0, len(c.services))
	for _, s := range c.services {
		out = append(out, s.clone())
	}
	return out
}

func (c *Catalog) Service(id string) (HomeService, error) {
	for _, s := range c.services {
		if s.ID == id {
			return s.clone(), nil
		}
	}
	return HomeService{}, ErrServiceNotFound
}

func (c *Catalog) TimeSlots() []string {
	return append([]string(nil), c.slots...)
}

func (c *Catalog) HasTimeSlot(slot string) bool {
	for _, s := range c.slots {
		if s == slot {
			return true
		}
	}
	return false
}

func (c *Catalog) Doctors() []Doctor {
	return append([]Doctor(nil), c.doctors...)
}

// Doctor no filtra por estado: un doctor "busy" se puede elegir igual.
func (c *Catalog) Doctor(id int64) (Doctor, error) {
	for _, d := range c.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return Doctor{}, ErrDoctorNotFound
}

func (s HomeService) clone() HomeService {
	out := s
	out.Includes = append([]string(nil), s.Includes...)
	return out
}
