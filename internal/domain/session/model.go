package session

import "time"

// User es el perfil del usuario logueado. Es dueño exclusivo de su lista de mascotas.
type User struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Address string // opcional
	Avatar  string // opcional (URL)

	Pets []Pet

	CreatedAt time.Time
}

// Pet vive solo dentro de User.Pets; no tiene clave propia en el store.
type Pet struct {
	ID      string
	Name    string
	Species Species
	Gender  Gender

	Age    *int     // años, opcional
	Breed  string   // opcional
	Weight *float64 // kg, opcional
	Image  string   // opcional

	CreatedAt time.Time
}

// Booking es una entrada del historial de reservas. Mascota y doctor van por nombre
// (el listado de doctores no es una entidad persistida).
type Booking struct {
	ID          string
	ServiceType ServiceType
	ServiceName string
	PetID       string
	PetName     string
	DoctorName  string
	Date        time.Time
	Time        string // hora del día, ej "14:00"
	Status      BookingStatus
	Price       int64
	Notes       string
}

type ChatMessage struct {
	ID        string
	Sender    Sender
	Text      string
	Timestamp time.Time
	Kind      MessageKind
}

// ConsultationHistory tiene dos ids: ID (storage, lo asigna el store) y
// ConsultationID (dominio, lo trae el caller). Update busca por ConsultationID.
type ConsultationHistory struct {
	ID               string
	ConsultationID   string
	DoctorName       string
	DoctorImage      string
	PetName          string
	ConsultationType ConsultationType
	Date             time.Time
	Duration         int // minutos
	Status           BookingStatus
	Price            int64
	Notes            string
	Messages         []ChatMessage
}

// HomeServiceHistory se actualiza por ID (storage), a diferencia de las consultas.
type HomeServiceHistory struct {
	ID          string
	BookingID   string
	PetID       string
	PetName     string
	ServiceType HomeServiceType
	ServiceName string
	DoctorName  string
	Date        time.Time
	Time        string
	Status      BookingStatus
	Price       int64
	Address     string
	Notes       string
	CompletedAt *time.Time
}

type OrderItem struct {
	ProductID int64
	Name      string
	Price     int64
	Quantity  int
	Image     string
}

type Order struct {
	ID              string
	OrderNumber     string
	Date            time.Time
	Status          OrderStatus
	Items           []OrderItem
	Total           int64
	ShippingAddress string
	PaymentMethod   string
}

// Copias profundas: nada de lo que devuelve el store comparte memoria con su estado.

func (u User) clone() User {
	out := u
	out.Pets = nil
	for _, p := range u.Pets {
		out.Pets = append(out.Pets, p.clone())
	}
	return out
}

func (p Pet) clone() Pet {
	out := p
	if p.Age != nil {
		v := *p.Age
		out.Age = &v
	}
	if p.Weight != nil {
		v := *p.Weight
		out.Weight = &v
	}
	return out
}

func (c ConsultationHistory) clone() ConsultationHistory {
	out := c
	out.Messages = append([]ChatMessage(nil), c.Messages...)
	return out
}

func (h HomeServiceHistory) clone() HomeServiceHistory {
	out := h
	if h.CompletedAt != nil {
		t := *h.CompletedAt
		out.CompletedAt = &t
	}
	return out
}

func (o Order) clone() Order {
	out := o
	out.Items = append([]OrderItem(nil), o.Items...)
	return out
}
