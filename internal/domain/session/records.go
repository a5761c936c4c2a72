package session

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Forma persistida de cada colección. El backend solo guarda texto, así que las
// fechas viajan como RFC3339 y se vuelven a parsear al hidratar. Los nombres de
// campo son los mismos que usaba el cliente web.

type userRecord struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address,omitempty"`
	Avatar    string      `json:"avatar,omitempty"`
	Pets      []petRecord `json:"pets"`
	CreatedAt string      `json:"createdAt"`
}

type petRecord struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Gender    string   `json:"gender"`
	Age       *int     `json:"age,omitempty"`
	Breed     string   `json:"breed,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	Image     string   `json:"image,omitempty"`
	CreatedAt string   `json:"createdAt"`
}

type bookingRecord struct {
	ID          string `json:"id"`
	ServiceType string `json:"serviceType"`
	ServiceName string `json:"serviceName"`
	PetID       string `json:"petId,omitempty"`
	PetName     string `json:"petName,omitempty"`
	DoctorName  string `json:"doctorName,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Price       int64  `json:"price"`
	Notes       string `json:"notes,omitempty"`
}

type chatMessageRecord struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
}

type consultationRecord struct {
	ID               string              `json:"id"`
	ConsultationID   string              `json:"consultationId"`
	DoctorName       string              `json:"doctorName"`
	DoctorImage      string              `json:"doctorImage,omitempty"`
	PetName          string              `json:"petName"`
	ConsultationType string              `json:"consultationType"`
	Date             string              `json:"date"`
	Duration         int                 `json:"duration"`
	Status           string              `json:"status"`
	Price            int64               `json:"price"`
	Notes            string              `json:"notes,omitempty"`
	ChatMessages     []chatMessageRecord `json:"chatMessages"`
}

type homeServiceRecord struct {
	ID          string  `json:"id"`
	BookingID   string  `json:"bookingId"`
	PetID       string  `json:"petId"`
	PetName     string  `json:"petName"`
	ServiceType string  `json:"serviceType"`
	ServiceName string  `json:"serviceName"`
	DoctorName  string  `json:"doctorName"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	Price       int64   `json:"price"`
	Address     string  `json:"address"`
	Notes       string  `json:"notes,omitempty"`
	CompletedAt *string `json:"completedAt,omitempty"`
}

type orderItemRecord struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
}

type orderRecord struct {
	ID              string            `json:"id"`
	OrderNumber     string            `json:"orderNumber"`
	Date            string            `json:"date"`
	Status          string            `json:"status"`
	Items           []orderItemRecord `json:"items"`
	Total           int64             `json:"total"`
	ShippingAddress string            `json:"shippingAddress"`
	PaymentMethod   string            `json:"paymentMethod"`
}

// timestampLayouts en orden de preferencia. El último cubre fechas sin hora
// ("2024-01-10") que escribían versiones viejas del cliente.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	if len(in) == 0 {
		return nil
	}
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

func mapSliceErr[T, R any](in []T, f func(T) (R, error)) ([]R, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]R, 0, len(in))
	for i, v := range in {
		r, err := f(v)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// ---------- encode ----------

func toUserRecord(u User) userRecord {
	pets := mapSlice(u.Pets, toPetRecord)
	if pets == nil {
		pets = []petRecord{}
	}
	return userRecord{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		Avatar:    u.Avatar,
		Pets:      pets,
		CreatedAt: formatTimestamp(u.CreatedAt),
	}
}

func toPetRecord(p Pet) petRecord {
	return petRecord{
		ID:        p.ID,
		Name:      p.Name,
		Type:      string(p.Species),
		Gender:    string(p.Gender),
		Age:       p.Age,
		Breed:     p.Breed,
		Weight:    p.Weight,
		Image:     p.Image,
		CreatedAt: formatTimestamp(p.CreatedAt),
	}
}

func toBookingRecord(b Booking) bookingRecord {
	return bookingRecord{
		ID:          b.ID,
		ServiceType: string(b.ServiceType),
		ServiceName: b.ServiceName,
		PetID:       b.PetID,
		PetName:     b.PetName,
		DoctorName:  b.DoctorName,
		Date:        formatTimestamp(b.Date),
		Time:        b.Time,
		Status:      string(b.Status),
		Price:       b.Price,
		Notes:       b.Notes,
	}
}

func toChatMessageRecord(m ChatMessage) chatMessageRecord {
	return chatMessageRecord{
		ID:        m.ID,
		Sender:    string(m.Sender),
		Message:   m.Text,
		Timestamp: formatTimestamp(m.Timestamp),
		Type:      string(m.Kind),
	}
}

func toConsultationRecord(c ConsultationHistory) consultationRecord {
	msgs := mapSlice(c.Messages, toChatMessageRecord)
	if msgs == nil {
		msgs = []chatMessageRecord{}
	}
	return consultationRecord{
		ID:               c.ID,
		ConsultationID:   c.ConsultationID,
		DoctorName:       c.DoctorName,
		DoctorImage:      c.DoctorImage,
		PetName:          c.PetName,
		ConsultationType: string(c.ConsultationType),
		Date:             formatTimestamp(c.Date),
		Duration:         c.Duration,
		Status:           string(c.Status),
		Price:            c.Price,
		Notes:            c.Notes,
		ChatMessages:     msgs,
	}
}

func toHomeServiceRecord(h HomeServiceHistory) homeServiceRecord {
	var completed *string
	if h.CompletedAt != nil {
		s := formatTimestamp(*h.CompletedAt)
		completed = &s
	}
	return homeServiceRecord{
		ID:          h.ID,
		BookingID:   h.BookingID,
		PetID:       h.PetID,
		PetName:     h.PetName,
		ServiceType: string(h.ServiceType),
		ServiceName: h.ServiceName,
		DoctorName:  h.DoctorName,
		Date:        formatTimestamp(h.Date),
		Time:        h.Time,
		Status:      string(h.Status),
		Price:       h.Price,
		Address:     h.Address,
		Notes:       h.Notes,
		CompletedAt: completed,
	}
}

func toOrderRecord(o Order) orderRecord {
	items := mapSlice(o.Items, func(i OrderItem) orderItemRecord {
		return orderItemRecord{ID: i.ProductID, Name: i.Name, Price: i.Price, Quantity: i.Quantity, Image: i.Image}
	})
	if items == nil {
		items = []orderItemRecord{}
	}
	return orderRecord{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		Date:            formatTimestamp(o.Date),
		Status:          string(o.Status),
		Items:           items,
		Total:           o.Total,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
	}
}

// ---------- decode ----------

func (r userRecord) toUser() (User, error) {
	created, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return User{}, fmt.Errorf("user createdAt: %w", err)
	}
	pets, err := mapSliceErr(r.Pets, petRecord.toPet)
	if err != nil {
		return User{}, fmt.Errorf("user pets: %w", err)
	}
	return User{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		Avatar:    r.Avatar,
		Pets:      pets,
		CreatedAt: created,
	}, nil
}

func (r petRecord) toPet() (Pet, error) {
	created, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return Pet{}, err
	}
	return Pet{
		ID:        r.ID,
		Name:      r.Name,
		Species:   Species(r.Type),
		Gender:    Gender(r.Gender),
		Age:       r.Age,
		Breed:     r.Breed,
		Weight:    r.Weight,
		Image:     r.Image,
		CreatedAt: created,
	}, nil
}

func (r bookingRecord) toBooking() (Booking, error) {
	date, err := parseTimestamp(r.Date)
	if err != nil {
		return Booking{}, err
	}
	return Booking{
		ID:          r.ID,
		ServiceType: ServiceType(r.ServiceType),
		ServiceName: r.ServiceName,
		PetID:       r.PetID,
		PetName:     r.PetName,
		DoctorName:  r.DoctorName,
		Date:        date,
		Time:        r.Time,
		Status:      BookingStatus(r.Status),
		Price:       r.Price,
		Notes:       r.Notes,
	}, nil
}

func (r chatMessageRecord) toChatMessage() (ChatMessage, error) {
	ts, err := parseTimestamp(r.Timestamp)
	if err != nil {
		return ChatMessage{}, err
	}
	return ChatMessage{
		ID:        r.ID,
		Sender:    Sender(r.Sender),
		Text:      r.Message,
		Timestamp: ts,
		Kind:      MessageKind(r.Type),
	}, nil
}

func (r consultationRecord) toConsultation() (ConsultationHistory, error) {
	date, err := parseTimestamp(r.Date)
	if err != nil {
		return ConsultationHistory{}, err
	}
	msgs, err := mapSliceErr(r.ChatMessages, chatMessageRecord.toChatMessage)
	if err != nil {
		return ConsultationHistory{}, fmt.Errorf("chat messages: %w", err)
	}
	return ConsultationHistory{
		ID:               r.ID,
		ConsultationID:   r.ConsultationID,
		DoctorName:       r.DoctorName,
		DoctorImage:      r.DoctorImage,
		PetName:          r.PetName,
		ConsultationType: ConsultationType(r.ConsultationType),
		Date:             date,
		Duration:         r.Duration,
		Status:           BookingStatus(r.Status),
		Price:            r.Price,
		Notes:            r.Notes,
		Messages:         msgs,
	}, nil
}

func (r homeServiceRecord) toHomeService() (HomeServiceHistory, error) {
	date, err := parseTimestamp(r.Date)
	if err != nil {
		return HomeServiceHistory{}, err
	}
	var completed *time.Time
	if r.CompletedAt != nil && strings.TrimSpace(*r.CompletedAt) != "" {
		t, err := parseTimestamp(*r.CompletedAt)
		if err != nil {
			return HomeServiceHistory{}, fmt.Errorf("completedAt: %w", err)
		}
		completed = &t
	}
	return HomeServiceHistory{
		ID:          r.ID,
		BookingID:   r.BookingID,
		PetID:       r.PetID,
		PetName:     r.PetName,
		ServiceType: HomeServiceType(r.ServiceType),
		ServiceName: r.ServiceName,
		DoctorName:  r.DoctorName,
		Date:        date,
		Time:        r.Time,
		Status:      BookingStatus(r.Status),
		Price:       r.Price,
		Address:     r.Address,
		Notes:       r.Notes,
		CompletedAt: completed,
	}, nil
}

func (r orderRecord) toOrder() (Order, error) {
	date, err := parseTimestamp(r.Date)
	if err != nil {
		return Order{}, err
	}
	return Order{
		ID:          r.ID,
		OrderNumber: r.OrderNumber,
		Date:        date,
		Status:      OrderStatus(r.Status),
		Items: mapSlice(r.Items, func(i orderItemRecord) OrderItem {
			return OrderItem{ProductID: i.ID, Name: i.Name, Price: i.Price, Quantity: i.Quantity, Image: i.Image}
		}),
		Total:           r.Total,
		ShippingAddress: r.ShippingAddress,
		PaymentMethod:   r.PaymentMethod,
	}, nil
}

// decodeList parsea una colección persistida (array JSON) a modelos de dominio.
func decodeList[R any, T any](raw string, conv func(R) (T, error)) ([]T, error) {
	var recs []R
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		return nil, err
	}
	return mapSliceErr(recs, conv)
}

// encodeList serializa siempre un array (nunca "null") para que la clave quede legible.
func encodeList[T any, R any](items []T, conv func(T) R) (string, error) {
	recs := mapSlice(items, conv)
	if recs == nil {
		recs = []R{}
	}
	b, err := json.Marshal(recs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
