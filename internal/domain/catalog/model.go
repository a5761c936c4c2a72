package catalog

import "petcare-marketplace/internal/domain/session"

type Category struct {
	ID   string
	Name string
}

// Product es un producto de la tienda. Los precios quedan como texto de display
// ("Rp 285.000"); el carrito los normaliza con cart.ParsePrice.
type Product struct {
	ID            int64
	Name          string
	Category      string
	Price         string
	OriginalPrice string // vacío = sin descuento
	Rating        float64
	Reviews       int
	Image         string
	Discount      string
	InStock       bool
}

// HomeService es un servicio a domicilio reservable.
type HomeService struct {
	ID          string
	Name        string
	Description string
	Price       string
	Duration    string
	Image       string
	Includes    []string
	Type        session.HomeServiceType
}

type DoctorStatus string

const (
	DoctorOnline DoctorStatus = "online"
	DoctorBusy   DoctorStatus = "busy"
)

// Doctor de la consulta online. Price es por sesión, ya entero.
type Doctor struct {
	ID           int64
	Name         string
	Specialty    string
	Experience   string
	Rating       float64
	Price        int64
	Image        string
	Status       DoctorStatus
	ResponseTime string
}
