package chat

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"petcare-marketplace/internal/domain/catalog"
	"petcare-marketplace/internal/domain/session"
	"petcare-marketplace/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("conversation not found")
	ErrNotLoggedIn   = errors.New("chat requires an active session")
	ErrUnknownDoctor = errors.New("doctor not found")
	ErrUnknownPet    = errors.New("pet not found")
)

// Nombre con el que queda la reserva de cada consulta.
const consultationServiceName = "Konsultasi Online"

// Rango por defecto del "typing" simulado del doctor.
const (
	DefaultMinDelay = 1500 * time.Millisecond
	DefaultMaxDelay = 3500 * time.Millisecond
)

// HistoryRecorder es la parte de la sesión que usa el chat.
type HistoryRecorder interface {
	User() (session.User, bool)
	AddConsultationHistory(ctx context.Context, in session.ConsultationInput) (session.ConsultationHistory, error)
	AddBooking(ctx context.Context, in session.BookingInput) (session.Booking, error)
}

// DoctorDirectory resuelve StartInput.DoctorID. *catalog.Catalog lo cumple.
type DoctorDirectory interface {
	Doctor(id int64) (catalog.Doctor, error)
}

type Options struct {
	Responder Responder       // nil = NewKeywordResponder()
	Doctors   DoctorDirectory // nil = solo se aceptan doctores por nombre
	MinDelay  time.Duration
	MaxDelay  time.Duration
	Logger    logger.Logger
}

// Service registra las conversaciones abiertas.
type Service struct {
	mu    sync.Mutex
	convs map[string]*Conversation

	history   HistoryRecorder
	doctors   DoctorDirectory
	responder Responder
	minDelay  time.Duration
	maxDelay  time.Duration
	log       logger.Logger

	now     func() time.Time
	newID   func() string
	onReply func(convID string, m session.ChatMessage)
}

func NewService(history HistoryRecorder, opts Options) *Service {
	if opts.Responder == nil {
		opts.Responder = NewKeywordResponder()
	}
	if opts.MinDelay <= 0 && opts.MaxDelay <= 0 {
		opts.MinDelay, opts.MaxDelay = DefaultMinDelay, DefaultMaxDelay
	}
	if opts.MaxDelay < opts.MinDelay {
		opts.MaxDelay = opts.MinDelay
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Service{
		convs:     map[string]*Conversation{},
		history:   history,
		doctors:   opts.Doctors,
		responder: opts.Responder,
		minDelay:  opts.MinDelay,
		maxDelay:  opts.MaxDelay,
		log:       opts.Logger.With(map[string]any{"component": "chat"}),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return "consultation-" + uuid.Must(uuid.NewV7()).String() },
	}
}

// randomDelay devuelve un valor en [min, max). Con min == max devuelve min.
func randomDelay(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + rand.N(hi-lo)
}

// StartInput: con DoctorID el nombre, la foto y el precio salen del directorio
// de doctores. Con PetID el nombre sale del perfil.
type StartInput struct {
	DoctorID         int64
	DoctorName       string
	DoctorImage      string
	PetID            string
	PetName          string
	ConsultationType session.ConsultationType
	Price            int64
}

// Start abre una conversación con los dos mensajes de bienvenida y deja una
// reserva "Konsultasi Online" en estado upcoming.
func (s *Service) Start(ctx context.Context, in StartInput) (*Conversation, error) {
	u, ok := s.history.User()
	if !ok {
		return nil, ErrNotLoggedIn
	}
	if in.ConsultationType == "" {
		in.ConsultationType = session.ConsultationGeneral
	}
	if err := s.resolveDoctor(&in); err != nil {
		return nil, err
	}
	if err := resolvePet(&in, u.Pets); err != nil {
		return nil, err
	}

	c := &Conversation{
		ID:               s.newID(),
		DoctorName:       in.DoctorName,
		DoctorImage:      in.DoctorImage,
		PetName:          in.PetName,
		ConsultationType: in.ConsultationType,
		Price:            in.Price,
		StartedAt:        s.now(),
		pending:          map[int]*time.Timer{},
		responder:        s.responder,
		delay:            func() time.Duration { return randomDelay(s.minDelay, s.maxDelay) },
		now:              s.now,
	}
	if s.onReply != nil {
		id := c.ID
		c.onReply = func(m session.ChatMessage) { s.onReply(id, m) }
	}
	c.greet(u.Name)

	s.mu.Lock()
	s.convs[c.ID] = c
	s.mu.Unlock()

	s.log.Info("conversation started", map[string]any{"conversation_id": c.ID, "doctor": c.DoctorName})

	_, err := s.history.AddBooking(ctx, session.BookingInput{
		ServiceType: session.ServiceConsultation,
		ServiceName: consultationServiceName,
		PetID:       in.PetID,
		PetName:     in.PetName,
		DoctorName:  in.DoctorName,
		Date:        c.StartedAt,
		Time:        c.StartedAt.Format("15:04"),
		Status:      session.StatusUpcoming,
		Price:       in.Price,
	})
	if err != nil {
		// la reserva queda en memoria; el chat sigue
		s.log.Warn("booking not persisted", map[string]any{"conversation_id": c.ID, "err": err})
	}
	return c, nil
}

func (s *Service) resolveDoctor(in *StartInput) error {
	if in.DoctorID == 0 {
		return nil
	}
	if s.doctors == nil {
		return fmt.Errorf("%w: %d", ErrUnknownDoctor, in.DoctorID)
	}
	d, err := s.doctors.Doctor(in.DoctorID)
	if err != nil {
		return fmt.Errorf("%w: %d", ErrUnknownDoctor, in.DoctorID)
	}
	in.DoctorName = d.Name
	in.DoctorImage = d.Image
	in.Price = d.Price
	return nil
}

// resolvePet: sin PetID ni PetName toma la primera mascota del perfil, si hay.
func resolvePet(in *StartInput, pets []session.Pet) error {
	if in.PetID == "" {
		if in.PetName == "" && len(pets) > 0 {
			in.PetID, in.PetName = pets[0].ID, pets[0].Name
		}
		return nil
	}
	for _, p := range pets {
		if p.ID == in.PetID {
			in.PetName = p.Name
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownPet, in.PetID)
}

func (s *Service) Get(id string) (*Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.convs[id]
	return c, ok
}

// Finish cierra la conversación y la guarda en el historial de consultas como
// completada. La duración se redondea hacia arriba en minutos (mínimo 1).
func (s *Service) Finish(ctx context.Context, id string) (session.ConsultationHistory, error) {
	s.mu.Lock()
	c, ok := s.convs[id]
	if ok {
		delete(s.convs, id)
	}
	s.mu.Unlock()
	if !ok {
		return session.ConsultationHistory{}, ErrNotFound
	}

	c.Close()

	elapsed := s.now().Sub(c.StartedAt)
	minutes := int(math.Ceil(elapsed.Minutes()))
	if minutes < 1 {
		minutes = 1
	}

	h, err := s.history.AddConsultationHistory(ctx, session.ConsultationInput{
		ConsultationID:   c.ID,
		DoctorName:       c.DoctorName,
		DoctorImage:      c.DoctorImage,
		PetName:          c.PetName,
		ConsultationType: c.ConsultationType,
		Date:             c.StartedAt,
		Duration:         minutes,
		Status:           session.StatusCompleted,
		Price:            c.Price,
		Messages:         c.Messages(),
	})
	if err != nil {
		return h, fmt.Errorf("save consultation %s: %w", id, err)
	}
	if h.ID == "" {
		return h, ErrNotLoggedIn
	}

	s.log.Info("conversation finished", map[string]any{"conversation_id": id, "messages": len(h.Messages)})
	return h, nil
}

// CloseAll frena los timers de todas las conversaciones abiertas (shutdown).
func (s *Service) CloseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.convs {
		c.Close()
		delete(s.convs, id)
	}
}
