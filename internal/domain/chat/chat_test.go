package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"petcare-marketplace/internal/domain/catalog"
	"petcare-marketplace/internal/domain/session"
)

type fakeHistory struct {
	user       *session.User
	added      []session.ConsultationInput
	bookings   []session.BookingInput
	err        error
	bookingErr error
}

func (f *fakeHistory) User() (session.User, bool) {
	if f.user == nil {
		return session.User{}, false
	}
	return *f.user, true
}

func (f *fakeHistory) AddConsultationHistory(_ context.Context, in session.ConsultationInput) (session.ConsultationHistory, error) {
	f.added = append(f.added, in)
	return session.ConsultationHistory{
		ID:             "consultation-history-x",
		ConsultationID: in.ConsultationID,
		Duration:       in.Duration,
		Status:         in.Status,
		Messages:       in.Messages,
	}, f.err
}

func (f *fakeHistory) AddBooking(_ context.Context, in session.BookingInput) (session.Booking, error) {
	f.bookings = append(f.bookings, in)
	return session.Booking{ID: "booking-x", ServiceType: in.ServiceType, Status: in.Status}, f.bookingErr
}

func loggedIn() *fakeHistory {
	return &fakeHistory{user: &session.User{ID: "demo-user-1", Name: "Sarah"}}
}

// newInstantService responde sin delay y publica cada respuesta en replies.
func newInstantService(h HistoryRecorder) (*Service, chan session.ChatMessage) {
	replies := make(chan session.ChatMessage, 16)
	svc := NewService(h, Options{MinDelay: time.Nanosecond, MaxDelay: time.Nanosecond})
	svc.onReply = func(_ string, m session.ChatMessage) { replies <- m }
	return svc, replies
}

func waitReplies(t *testing.T, ch <-chan session.ChatMessage, n int) []session.ChatMessage {
	t.Helper()
	var out []session.ChatMessage
	for len(out) < n {
		select {
		case m := <-ch:
			out = append(out, m)
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout waiting for reply %d/%d", len(out)+1, n)
		}
	}
	return out
}

func TestKeywordResponder(t *testing.T) {
	r := NewKeywordResponder()

	cases := map[string]string{
		"Kucing saya DEMAM":         r.rules[0].reply,
		"tidak mau makan":           r.rules[1].reply,
		"kapan jadwal vaksin?":      r.rules[2].reply,
		"Terima kasih dok":          r.rules[3].reply,
		"halo":                      r.Fallback,
		"sakit dan tidak mau makan": r.rules[0].reply, // primera regla gana
	}
	for in, want := range cases {
		if got := r.Reply(in); got != want {
			t.Fatalf("Reply(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRandomDelay_InRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		d := randomDelay(DefaultMinDelay, DefaultMaxDelay)
		if d < DefaultMinDelay || d >= DefaultMaxDelay {
			t.Fatalf("delay %s out of [%s, %s)", d, DefaultMinDelay, DefaultMaxDelay)
		}
	}
	if d := randomDelay(time.Second, time.Second); d != time.Second {
		t.Fatalf("expected fixed delay, got %s", d)
	}
}

func TestStart_RequiresLogin(t *testing.T) {
	svc, _ := newInstantService(&fakeHistory{})
	if _, err := svc.Start(context.Background(), StartInput{}); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestStart_Greets(t *testing.T) {
	svc, _ := newInstantService(loggedIn())
	c, err := svc.Start(context.Background(), StartInput{DoctorName: "Dr. Rina", PetName: "Luna"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 greeting messages, got %d", len(msgs))
	}
	if msgs[0].Sender != session.SenderSystem || msgs[0].Text != "Konsultasi dimulai dengan Dr. Rina untuk Luna" {
		t.Fatalf("unexpected system message %#v", msgs[0])
	}
	if msgs[1].Sender != session.SenderDoctor || msgs[1].Text != "Halo Sarah! Saya Dr. Rina. Apa yang bisa saya bantu dengan Luna hari ini?" {
		t.Fatalf("unexpected doctor greeting %#v", msgs[1])
	}
	if c.ConsultationType != session.ConsultationGeneral {
		t.Fatalf("expected general by default, got %q", c.ConsultationType)
	}
	if got, ok := svc.Get(c.ID); !ok || got != c {
		t.Fatalf("conversation not registered")
	}
}

func TestStart_RecordsUpcomingBooking(t *testing.T) {
	h := loggedIn()
	svc, _ := newInstantService(h)
	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return at }

	if _, err := svc.Start(context.Background(), StartInput{DoctorName: "Dr. Rina", PetName: "Luna", Price: 30000}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(h.bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(h.bookings))
	}
	b := h.bookings[0]
	if b.ServiceType != session.ServiceConsultation || b.ServiceName != "Konsultasi Online" || b.Status != session.StatusUpcoming {
		t.Fatalf("unexpected booking %#v", b)
	}
	if b.DoctorName != "Dr. Rina" || b.PetName != "Luna" || b.Price != 30000 {
		t.Fatalf("unexpected booking fields %#v", b)
	}
	if !b.Date.Equal(at) || b.Time != "09:30" {
		t.Fatalf("expected booking at start time, got %v %q", b.Date, b.Time)
	}
}

func TestStart_BookingPersistErrorKeepsChat(t *testing.T) {
	h := loggedIn()
	h.bookingErr = errors.New("kv down")
	svc, _ := newInstantService(h)

	c, err := svc.Start(context.Background(), StartInput{DoctorName: "Dr. Rina"})
	if err != nil {
		t.Fatalf("Start should not fail on booking persist error: %v", err)
	}
	if _, ok := svc.Get(c.ID); !ok || len(h.bookings) != 1 {
		t.Fatalf("conversation or booking missing")
	}
}

func TestStart_DoctorAndPetFromDirectory(t *testing.T) {
	h := loggedIn()
	h.user.Pets = []session.Pet{{ID: "pet-1", Name: "Milo"}, {ID: "pet-2", Name: "Luna"}}
	svc := NewService(h, Options{Doctors: catalog.New(), MinDelay: time.Nanosecond, MaxDelay: time.Nanosecond})

	// el directorio pisa nombre y precio del cliente
	c, err := svc.Start(context.Background(), StartInput{DoctorID: 3, DoctorName: "x", Price: 1, PetID: "pet-2"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if c.DoctorName != "Dr. Rina Sari" || c.DoctorImage == "" || c.Price != 30000 || c.PetName != "Luna" {
		t.Fatalf("unexpected conversation %#v", c)
	}
	b := h.bookings[0]
	if b.DoctorName != "Dr. Rina Sari" || b.Price != 30000 || b.PetID != "pet-2" || b.PetName != "Luna" {
		t.Fatalf("unexpected booking %#v", b)
	}

	// sin mascota elegida usa la primera del perfil
	if _, err := svc.Start(context.Background(), StartInput{DoctorID: 1}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if b := h.bookings[1]; b.PetID != "pet-1" || b.PetName != "Milo" || b.Price != 25000 {
		t.Fatalf("unexpected default pet booking %#v", b)
	}
	svc.CloseAll()
}

func TestStart_UnknownDoctorOrPet(t *testing.T) {
	h := loggedIn()
	svc := NewService(h, Options{Doctors: catalog.New()})

	if _, err := svc.Start(context.Background(), StartInput{DoctorID: 42}); !errors.Is(err, ErrUnknownDoctor) {
		t.Fatalf("expected ErrUnknownDoctor, got %v", err)
	}
	if _, err := svc.Start(context.Background(), StartInput{DoctorID: 1, PetID: "pet-9"}); !errors.Is(err, ErrUnknownPet) {
		t.Fatalf("expected ErrUnknownPet, got %v", err)
	}
	if len(h.bookings) != 0 {
		t.Fatalf("failed starts must not book, got %d", len(h.bookings))
	}

	noDir, _ := newInstantService(h)
	if _, err := noDir.Start(context.Background(), StartInput{DoctorID: 1}); !errors.Is(err, ErrUnknownDoctor) {
		t.Fatalf("expected ErrUnknownDoctor without directory, got %v", err)
	}
}

func TestSend_EachMessageGetsOneReply(t *testing.T) {
	svc, replies := newInstantService(loggedIn())
	c, _ := svc.Start(context.Background(), StartInput{DoctorName: "Dr. Rina", PetName: "Luna"})

	for _, text := range []string{"demam", "makan", "vaksin"} {
		m, err := c.Send(text)
		if err != nil {
			t.Fatalf("Send: %v", err)
		}
		if m.Sender != session.SenderUser || m.Text != text {
			t.Fatalf("unexpected user message %#v", m)
		}
	}

	got := waitReplies(t, replies, 3)
	for _, m := range got {
		if m.Sender != session.SenderDoctor {
			t.Fatalf("expected doctor reply, got %#v", m)
		}
	}

	msgs := c.Messages()
	if len(msgs) != 8 {
		t.Fatalf("expected 2 greetings + 3 sent + 3 replies, got %d", len(msgs))
	}
	seen := map[string]bool{}
	for _, m := range msgs {
		if seen[m.ID] {
			t.Fatalf("duplicate message id %q", m.ID)
		}
		seen[m.ID] = true
	}
	if c.Pending() != 0 {
		t.Fatalf("expected no pending replies, got %d", c.Pending())
	}
}

func TestSend_RejectsEmptyAndClosed(t *testing.T) {
	svc, _ := newInstantService(loggedIn())
	c, _ := svc.Start(context.Background(), StartInput{})

	if _, err := c.Send("   "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}

	c.Close()
	c.Close() // idempotente
	if _, err := c.Send("halo"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestClose_DropsPendingReplies(t *testing.T) {
	h := loggedIn()
	svc := NewService(h, Options{MinDelay: time.Hour, MaxDelay: time.Hour})
	c, _ := svc.Start(context.Background(), StartInput{})

	if _, err := c.Send("halo"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if c.Pending() != 1 {
		t.Fatalf("expected 1 pending reply, got %d", c.Pending())
	}

	c.Close()
	if c.Pending() != 0 || len(c.Messages()) != 3 {
		t.Fatalf("expected pending dropped, got pending=%d messages=%d", c.Pending(), len(c.Messages()))
	}
}

func TestFinish_SavesTranscript(t *testing.T) {
	h := loggedIn()
	svc, replies := newInstantService(h)

	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := start
	svc.now = func() time.Time { return clock }

	c, _ := svc.Start(context.Background(), StartInput{DoctorName: "Dr. Rina", PetName: "Luna", ConsultationType: session.ConsultationFollowUp, Price: 75000})
	_, _ = c.Send("terima kasih")
	waitReplies(t, replies, 1)

	clock = start.Add(4*time.Minute + 10*time.Second)

	got, err := svc.Finish(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if got.ConsultationID != c.ID || got.Status != session.StatusCompleted || got.Duration != 5 {
		t.Fatalf("unexpected history %#v", got)
	}
	if len(h.added) != 1 || len(h.added[0].Messages) != 4 || h.added[0].Price != 75000 {
		t.Fatalf("unexpected recorded input %#v", h.added)
	}
	if !c.Closed() {
		t.Fatalf("conversation should be closed")
	}
	if _, ok := svc.Get(c.ID); ok {
		t.Fatalf("conversation should be unregistered")
	}
	if _, err := svc.Finish(context.Background(), c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second finish, got %v", err)
	}
}

func TestFinish_PropagatesPersistError(t *testing.T) {
	h := loggedIn()
	h.err = errors.New("disk full")
	svc, _ := newInstantService(h)
	c, _ := svc.Start(context.Background(), StartInput{})

	if _, err := svc.Finish(context.Background(), c.ID); !errors.Is(err, h.err) {
		t.Fatalf("expected wrapped persist error, got %v", err)
	}
}

func TestCloseAll(t *testing.T) {
	svc := NewService(loggedIn(), Options{MinDelay: time.Hour, MaxDelay: time.Hour})
	a, _ := svc.Start(context.Background(), StartInput{})
	b, _ := svc.Start(context.Background(), StartInput{})
	_, _ = a.Send("x")

	svc.CloseAll()
	if !a.Closed() || !b.Closed() || a.Pending() != 0 {
		t.Fatalf("expected all conversations closed")
	}
	if _, ok := svc.Get(a.ID); ok {
		t.Fatalf("expected registry emptied")
	}
}
