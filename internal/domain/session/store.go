package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"petcare-marketplace/internal/platform/logger"
	"petcare-marketplace/internal/ports/auth"
	"petcare-marketplace/internal/ports/kv"

	"github.com/google/uuid"
)

// Store es el estado de sesión y perfil: usuario, mascotas y las cuatro historias
// (bookings, consultas, home services, órdenes).
//
// Cada operación muta en memoria y después reescribe la colección completa en el
// kv. Sin sesión (logged out) las mutaciones son no-op silenciosos; lo mismo con
// ids inexistentes. Los únicos errores que se devuelven son del backend kv, y en
// ese caso el cambio en memoria se conserva.
type Store struct {
	mu       sync.Mutex
	kv       kv.Store
	verifier auth.CredentialVerifier
	log      logger.Logger

	now   func() time.Time
	newID func(prefix string) string

	user          *User // nil = logged out
	bookings      []Booking
	consultations []ConsultationHistory
	homeServices  []HomeServiceHistory
	orders        []Order
}

// NewStore hidrata el store desde kv. Historias ausentes caen al dataset demo;
// usuario y órdenes ausentes quedan vacíos. Un usuario persistido restaura la sesión.
func NewStore(ctx context.Context, store kv.Store, verifier auth.CredentialVerifier, log logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{
		kv:       store,
		verifier: verifier,
		log:      log.With(map[string]any{"store": "session"}),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    newID,
	}
	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func newID(prefix string) string {
	// v7 = ordenado por tiempo, sin colisiones dentro del mismo milisegundo
	return prefix + "-" + uuid.Must(uuid.NewV7()).String()
}

// orderNumber: prefijo fijo + últimos 6 dígitos del timestamp en ms.
// No es único bajo dos órdenes en el mismo milisegundo (aceptado para la demo).
func orderNumber(t time.Time) string {
	return fmt.Sprintf("PET%06d", t.UnixMilli()%1_000_000)
}

// -------------------------
// Sesión
// -------------------------

// Login acepta solo el par demo. En éxito reemplaza el usuario por el dataset demo.
// Credenciales inválidas: false y el estado no cambia.
func (s *Store) Login(ctx context.Context, email, password string) (bool, error) {
	if s.verifier == nil || !s.verifier.Verify(ctx, email, password) {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := DemoUser()
	s.user = &u
	s.log.Info("login", map[string]any{"user_id": u.ID})
	return true, s.persistUser(ctx)
}

// Logout limpia usuario; historias y carrito quedan intactos.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	return s.persistUser(ctx)
}

func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// User devuelve una copia del usuario actual.
func (s *Store) User() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return User{}, false
	}
	return s.user.clone(), true
}

// -------------------------
// Perfil y mascotas
// -------------------------

func (s *Store) UpdateProfile(ctx context.Context, patch ProfilePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := s.user.clone()
	patch.apply(&u)
	s.user = &u
	return s.persistUser(ctx)
}

// AddPet devuelve la mascota creada; sin sesión devuelve Pet{} (ID vacío).
func (s *Store) AddPet(ctx context.Context, in PetInput) (Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return Pet{}, nil
	}

	p := Pet{
		ID:        s.newID("pet"),
		Name:      in.Name,
		Species:   in.Species,
		Gender:    in.Gender,
		Breed:     in.Breed,
		Image:     in.Image,
		CreatedAt: s.now(),
	}
	PetPatch{Age: in.Age, Weight: in.Weight}.apply(&p)

	u := s.user.clone()
	u.Pets = append(u.Pets, p)
	s.user = &u

	return p.clone(), s.persistUser(ctx)
}

func (s *Store) UpdatePet(ctx context.Context, petID string, patch PetPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := s.user.clone()
	found := false
	for i := range u.Pets {
		if u.Pets[i].ID == petID {
			patch.apply(&u.Pets[i])
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	s.user = &u
	return s.persistUser(ctx)
}

func (s *Store) DeletePet(ctx context.Context, petID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := s.user.clone()
	kept := u.Pets[:0]
	for _, p := range u.Pets {
		if p.ID != petID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(s.user.Pets) {
		return nil
	}
	if len(kept) == 0 {
		kept = nil
	}
	u.Pets = kept
	s.user = &u
	return s.persistUser(ctx)
}

// -------------------------
// Historias (más reciente primero)
// -------------------------

func (s *Store) AddBooking(ctx context.Context, in BookingInput) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return Booking{}, nil
	}
	b := Booking{
		ID:          s.newID("booking"),
		ServiceType: in.ServiceType,
		ServiceName: in.ServiceName,
		PetID:       in.PetID,
		PetName:     in.PetName,
		DoctorName:  in.DoctorName,
		Date:        s.dateOrNow(in.Date),
		Time:        in.Time,
		Status:      in.Status,
		Price:       in.Price,
		Notes:       in.Notes,
	}
	s.bookings = append([]Booking{b}, s.bookings...)
	return b, s.persistBookings(ctx)
}

func (s *Store) Bookings() []Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Booking(nil), s.bookings...)
}

func (s *Store) AddConsultationHistory(ctx context.Context, in ConsultationInput) (ConsultationHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ConsultationHistory{}, nil
	}
	c := ConsultationHistory{
		ID:               s.newID("consultation-history"),
		ConsultationID:   in.ConsultationID,
		DoctorName:       in.DoctorName,
		DoctorImage:      in.DoctorImage,
		PetName:          in.PetName,
		ConsultationType: in.ConsultationType,
		Date:             s.dateOrNow(in.Date),
		Duration:         in.Duration,
		Status:           in.Status,
		Price:            in.Price,
		Notes:            in.Notes,
		Messages:         append([]ChatMessage(nil), in.Messages...),
	}
	s.consultations = append([]ConsultationHistory{c}, s.consultations...)
	return c.clone(), s.persistConsultations(ctx)
}

// UpdateConsultationHistory busca por ConsultationID (id de dominio), no por ID.
func (s *Store) UpdateConsultationHistory(ctx context.Context, consultationID string, patch ConsultationPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	for i := range s.consultations {
		if s.consultations[i].ConsultationID == consultationID {
			c := s.consultations[i].clone()
			patch.apply(&c)
			s.consultations[i] = c
			return s.persistConsultations(ctx)
		}
	}
	return nil
}

func (s *Store) Consultations() []ConsultationHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mapSlice(s.consultations, ConsultationHistory.clone)
}

func (s *Store) AddHomeServiceHistory(ctx context.Context, in HomeServiceInput) (HomeServiceHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return HomeServiceHistory{}, nil
	}
	h := HomeServiceHistory{
		ID:          s.newID("home-service"),
		BookingID:   in.BookingID,
		PetID:       in.PetID,
		PetName:     in.PetName,
		ServiceType: in.ServiceType,
		ServiceName: in.ServiceName,
		DoctorName:  in.DoctorName,
		Date:        s.dateOrNow(in.Date),
		Time:        in.Time,
		Status:      in.Status,
		Price:       in.Price,
		Address:     in.Address,
		Notes:       in.Notes,
	}
	HomeServicePatch{CompletedAt: in.CompletedAt}.apply(&h)

	s.homeServices = append([]HomeServiceHistory{h}, s.homeServices...)
	return h.clone(), s.persistHomeServices(ctx)
}

// UpdateHomeServiceHistory busca por ID (storage).
func (s *Store) UpdateHomeServiceHistory(ctx context.Context, serviceID string, patch HomeServicePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	for i := range s.homeServices {
		if s.homeServices[i].ID == serviceID {
			h := s.homeServices[i].clone()
			patch.apply(&h)
			s.homeServices[i] = h
			return s.persistHomeServices(ctx)
		}
	}
	return nil
}

func (s *Store) HomeServices() []HomeServiceHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mapSlice(s.homeServices, HomeServiceHistory.clone)
}

// AddOrder asigna ID y número de orden. Status vacío = processing.
func (s *Store) AddOrder(ctx context.Context, in OrderInput) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return Order{}, nil
	}
	now := s.now()
	status := in.Status
	if status == "" {
		status = OrderProcessing
	}
	o := Order{
		ID:              s.newID("order"),
		OrderNumber:     orderNumber(now),
		Date:            s.dateOrNow(in.Date),
		Status:          status,
		Items:           append([]OrderItem(nil), in.Items...),
		Total:           in.Total,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
	}
	s.orders = append([]Order{o}, s.orders...)
	return o.clone(), s.persistOrders(ctx)
}

func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mapSlice(s.orders, Order.clone)
}

func (s *Store) dateOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return s.now()
	}
	return t.UTC()
}

// -------------------------
// Persistencia
// -------------------------

func (s *Store) hydrate(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, kv.KeyUser)
	if err != nil {
		return fmt.Errorf("load %s: %w", kv.KeyUser, err)
	}
	if ok {
		var rec userRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return fmt.Errorf("decode %s: %w", kv.KeyUser, err)
		}
		u, err := rec.toUser()
		if err != nil {
			return fmt.Errorf("decode %s: %w", kv.KeyUser, err)
		}
		s.user = &u
	}

	if s.bookings, err = loadList(ctx, s.kv, kv.KeyBookings, bookingRecord.toBooking, seedBookings); err != nil {
		return err
	}
	if s.consultations, err = loadList(ctx, s.kv, kv.KeyConsultations, consultationRecord.toConsultation, seedConsultations); err != nil {
		return err
	}
	if s.homeServices, err = loadList(ctx, s.kv, kv.KeyHomeServices, homeServiceRecord.toHomeService, seedHomeServices); err != nil {
		return err
	}
	if s.orders, err = loadList[orderRecord, Order](ctx, s.kv, kv.KeyOrders, orderRecord.toOrder, nil); err != nil {
		return err
	}
	return nil
}

func loadList[R any, T any](ctx context.Context, store kv.Store, key string, conv func(R) (T, error), fallback func() []T) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		if fallback == nil {
			return nil, nil
		}
		return fallback(), nil
	}
	out, err := decodeList(raw, conv)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return out, nil
}

func (s *Store) persistUser(ctx context.Context) error {
	if s.user == nil {
		return s.persisted(kv.KeyUser, s.kv.Remove(ctx, kv.KeyUser))
	}
	b, err := json.Marshal(toUserRecord(*s.user))
	if err != nil {
		return s.persisted(kv.KeyUser, err)
	}
	return s.persisted(kv.KeyUser, s.kv.Set(ctx, kv.KeyUser, string(b)))
}

func (s *Store) persistBookings(ctx context.Context) error {
	raw, err := encodeList(s.bookings, toBookingRecord)
	return s.write(ctx, kv.KeyBookings, raw, err)
}

func (s *Store) persistConsultations(ctx context.Context) error {
	raw, err := encodeList(s.consultations, toConsultationRecord)
	return s.write(ctx, kv.KeyConsultations, raw, err)
}

func (s *Store) persistHomeServices(ctx context.Context) error {
	raw, err := encodeList(s.homeServices, toHomeServiceRecord)
	return s.write(ctx, kv.KeyHomeServices, raw, err)
}

func (s *Store) persistOrders(ctx context.Context) error {
	raw, err := encodeList(s.orders, toOrderRecord)
	return s.write(ctx, kv.KeyOrders, raw, err)
}

func (s *Store) write(ctx context.Context, key, raw string, encErr error) error {
	if encErr != nil {
		return s.persisted(key, encErr)
	}
	return s.persisted(key, s.kv.Set(ctx, key, raw))
}

func (s *Store) persisted(key string, err error) error {
	if err == nil {
		return nil
	}
	s.log.Error("persist failed", map[string]any{"key": key, "err": err})
	return fmt.Errorf("persist %s: %w", key, err)
}
