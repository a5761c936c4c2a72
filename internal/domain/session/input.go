package session

import "time"

// Los Patch usan punteros: nil = no tocar (merge superficial).

type ProfilePatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Avatar  *string
}

type PetInput struct {
	Name    string
	Species Species
	Gender  Gender
	Age     *int
	Breed   string
	Weight  *float64
	Image   string
}

type PetPatch struct {
	Name    *string
	Species *Species
	Gender  *Gender
	Age     *int
	Breed   *string
	Weight  *float64
	Image   *string
}

type BookingInput struct {
	ServiceType ServiceType
	ServiceName string
	PetID       string
	PetName     string
	DoctorName  string
	Date        time.Time
	Time        string
	Status      BookingStatus
	Price       int64
	Notes       string
}

type ConsultationInput struct {
	ConsultationID   string
	DoctorName       string
	DoctorImage      string
	PetName          string
	ConsultationType ConsultationType
	Date             time.Time
	Duration         int
	Status           BookingStatus
	Price            int64
	Notes            string
	Messages         []ChatMessage
}

// ConsultationPatch cubre todo salvo ID y ConsultationID (la clave de búsqueda).
type ConsultationPatch struct {
	DoctorName       *string
	DoctorImage      *string
	PetName          *string
	ConsultationType *ConsultationType
	Date             *time.Time
	Status           *BookingStatus
	Duration         *int
	Price            *int64
	Notes            *string
	Messages         []ChatMessage // nil = no tocar; reemplaza la transcripción completa
}

type HomeServiceInput struct {
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

// HomeServicePatch cubre todo salvo ID.
type HomeServicePatch struct {
	BookingID   *string
	PetID       *string
	PetName     *string
	ServiceType *HomeServiceType
	ServiceName *string
	DoctorName  *string
	Price       *int64
	Status      *BookingStatus
	Date        *time.Time
	Time        *string
	Address     *string
	Notes       *string
	CompletedAt *time.Time
}

type OrderInput struct {
	Date            time.Time // zero = ahora
	Status          OrderStatus
	Items           []OrderItem
	Total           int64
	ShippingAddress string
	PaymentMethod   string
}

func (p ProfilePatch) apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
}

func (p PetPatch) apply(pet *Pet) {
	if p.Name != nil {
		pet.Name = *p.Name
	}
	if p.Species != nil {
		pet.Species = *p.Species
	}
	if p.Gender != nil {
		pet.Gender = *p.Gender
	}
	if p.Age != nil {
		v := *p.Age
		pet.Age = &v
	}
	if p.Breed != nil {
		pet.Breed = *p.Breed
	}
	if p.Weight != nil {
		v := *p.Weight
		pet.Weight = &v
	}
	if p.Image != nil {
		pet.Image = *p.Image
	}
}

func (p ConsultationPatch) apply(c *ConsultationHistory) {
	if p.DoctorName != nil {
		c.DoctorName = *p.DoctorName
	}
	if p.DoctorImage != nil {
		c.DoctorImage = *p.DoctorImage
	}
	if p.PetName != nil {
		c.PetName = *p.PetName
	}
	if p.ConsultationType != nil {
		c.ConsultationType = *p.ConsultationType
	}
	if p.Date != nil {
		c.Date = *p.Date
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Duration != nil {
		c.Duration = *p.Duration
	}
	if p.Price != nil {
		c.Price = *p.Price
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.Messages != nil {
		c.Messages = append([]ChatMessage(nil), p.Messages...)
	}
}

func (p HomeServicePatch) apply(h *HomeServiceHistory) {
	if p.BookingID != nil {
		h.BookingID = *p.BookingID
	}
	if p.PetID != nil {
		h.PetID = *p.PetID
	}
	if p.PetName != nil {
		h.PetName = *p.PetName
	}
	if p.ServiceType != nil {
		h.ServiceType = *p.ServiceType
	}
	if p.ServiceName != nil {
		h.ServiceName = *p.ServiceName
	}
	if p.DoctorName != nil {
		h.DoctorName = *p.DoctorName
	}
	if p.Price != nil {
		h.Price = *p.Price
	}
	if p.Status != nil {
		h.Status = *p.Status
	}
	if p.Date != nil {
		h.Date = *p.Date
	}
	if p.Time != nil {
		h.Time = *p.Time
	}
	if p.Address != nil {
		h.Address = *p.Address
	}
	if p.Notes != nil {
		h.Notes = *p.Notes
	}
	if p.CompletedAt != nil {
		t := *p.CompletedAt
		h.CompletedAt = &t
	}
}
