package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petcare-marketplace/internal/domain/cart"
	"petcare-marketplace/internal/domain/session"
)

const (
	homeServiceDoctor = "Dr. Tim Home Service"
	unnamedPet        = "Hewan Peliharaan"
	pendingAddress    = "Alamat akan dikonfirmasi"
)

var (
	ErrNotLoggedIn = errors.New("booking requires an active session")
	ErrInvalidSlot = errors.New("time slot not available")
	ErrPetNotFound = errors.New("pet not found")
)

// ServiceRecorder es la parte de la sesión que usa la reserva de servicios.
type ServiceRecorder interface {
	User() (session.User, bool)
	AddBooking(ctx context.Context, in session.BookingInput) (session.Booking, error)
	AddHomeServiceHistory(ctx context.Context, in session.HomeServiceInput) (session.HomeServiceHistory, error)
}

type BookInput struct {
	ServiceID string
	PetID     string // vacío = primera mascota del usuario
	Date      time.Time
	Time      string
	Address   string // vacío = dirección del perfil
	Notes     string
}

type Booker struct {
	catalog  *Catalog
	sessions ServiceRecorder
}

func NewBooker(c *Catalog, sessions ServiceRecorder) *Booker {
	return &Booker{catalog: c, sessions: sessions}
}

// Book reserva un servicio a domicilio: crea el booking y la historia de home
// service enlazada, ambos en estado upcoming.
func (b *Booker) Book(ctx context.Context, in BookInput) (session.HomeServiceHistory, error) {
	u, ok := b.sessions.User()
	if !ok {
		return session.HomeServiceHistory{}, ErrNotLoggedIn
	}
	svc, err := b.catalog.Service(in.ServiceID)
	if err != nil {
		return session.HomeServiceHistory{}, err
	}
	if !b.catalog.HasTimeSlot(in.Time) {
		return session.HomeServiceHistory{}, fmt.Errorf("%w: %q", ErrInvalidSlot, in.Time)
	}

	pet, err := pickPet(u.Pets, in.PetID)
	if err != nil {
		return session.HomeServiceHistory{}, err
	}
	address := firstNonEmpty(in.Address, u.Address, pendingAddress)
	notes := in.Notes
	if strings.TrimSpace(notes) == "" {
		notes = fmt.Sprintf("Booking %s pada %s jam %s", svc.Name, in.Date.Format("2006-01-02"), in.Time)
	}
	price := cart.ParsePrice(svc.Price)

	bk, err := b.sessions.AddBooking(ctx, session.BookingInput{
		ServiceType: session.ServiceHomeService,
		ServiceName: svc.Name,
		PetID:       pet.ID,
		PetName:     pet.Name,
		DoctorName:  homeServiceDoctor,
		Date:        in.Date,
		Time:        in.Time,
		Status:      session.StatusUpcoming,
		Price:       price,
		Notes:       notes,
	})
	if err != nil {
		return session.HomeServiceHistory{}, fmt.Errorf("add booking: %w", err)
	}

	return b.sessions.AddHomeServiceHistory(ctx, session.HomeServiceInput{
		BookingID:   bk.ID,
		PetID:       pet.ID,
		PetName:     pet.Name,
		ServiceType: svc.Type,
		ServiceName: svc.Name,
		DoctorName:  homeServiceDoctor,
		Date:        in.Date,
		Time:        in.Time,
		Status:      session.StatusUpcoming,
		Price:       price,
		Address:     address,
		Notes:       notes,
	})
}

func pickPet(pets []session.Pet, id string) (session.Pet, error) {
	if id == "" {
		if len(pets) == 0 {
			return session.Pet{Name: unnamedPet}, nil
		}
		return pets[0], nil
	}
	for _, p := range pets {
		if p.ID == id {
			return p, nil
		}
	}
	return session.Pet{}, fmt.Errorf("%w: %s", ErrPetNotFound, id)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
