package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	mem "petcare-marketplace/internal/adapters/storage/memory"
	"petcare-marketplace/internal/ports/kv"
)

// -------------------------
// Fakes
// -------------------------

type fixedVerifier struct{ email, password string }

func (v fixedVerifier) Verify(_ context.Context, email, password string) bool {
	return email == v.email && password == v.password
}

var demoCreds = fixedVerifier{email: "demo@example.com", password: "123456"}

type failingKV struct {
	kv.Store
	failSet bool
}

var errBackend = errors.New("backend down")

func (f *failingKV) Set(ctx context.Context, key, value string) error {
	if f.failSet {
		return errBackend
	}
	return f.Store.Set(ctx, key, value)
}

// newTestStore fija reloj e ids para que los resultados sean deterministas.
func newTestStore(t *testing.T, store kv.Store) *Store {
	t.Helper()

	s, err := NewStore(context.Background(), store, demoCreds, nil)
	require.NoError(t, err)

	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	n := 0
	s.newID = func(prefix string) string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
	return s
}

func loggedInStore(t *testing.T, store kv.Store) *Store {
	t.Helper()
	s := newTestStore(t, store)
	ok, err := s.Login(context.Background(), "demo@example.com", "123456")
	require.NoError(t, err)
	require.True(t, ok)
	return s
}

// -------------------------
// Login / logout
// -------------------------

func TestLogin_DemoCredentials(t *testing.T) {
	s := newTestStore(t, mem.NewKVStore())

	ok, err := s.Login(context.Background(), "demo@example.com", "123456")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, s.IsLoggedIn())

	u, ok := s.User()
	require.True(t, ok)
	require.Equal(t, "demo-user-1", u.ID)
	require.Len(t, u.Pets, 2)
}

func TestLogin_WrongCredentialsLeaveStateUnchanged(t *testing.T) {
	store := mem.NewKVStore()
	s := newTestStore(t, store)

	for _, c := range [][2]string{
		{"demo@example.com", "wrong"},
		{"other@example.com", "123456"},
		{"", ""},
	} {
		ok, err := s.Login(context.Background(), c[0], c[1])
		require.NoError(t, err)
		require.False(t, ok)
		require.False(t, s.IsLoggedIn())
	}

	_, ok, _ := store.Get(context.Background(), kv.KeyUser)
	require.False(t, ok, "failed login must not persist a user")
}

func TestLogout_ClearsUserButKeepsHistories(t *testing.T) {
	ctx := context.Background()
	store := mem.NewKVStore()
	s := loggedInStore(t, store)

	_, err := s.AddOrder(ctx, OrderInput{Total: 100})
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx))
	require.False(t, s.IsLoggedIn())

	_, ok := s.User()
	require.False(t, ok)
	require.Len(t, s.Orders(), 1)
	require.Len(t, s.Bookings(), 3)

	_, ok, _ = store.Get(ctx, kv.KeyUser)
	require.False(t, ok, "logout removes the user key")
}

func TestNewStore_RestoresSessionFromPersistedUser(t *testing.T) {
	store := mem.NewKVStore()
	loggedInStore(t, store)

	s2 := newTestStore(t, store)
	require.True(t, s2.IsLoggedIn())
}

// -------------------------
// Profile / pets
// -------------------------

func TestUpdateProfile_ShallowMerge(t *testing.T) {
	s := loggedInStore(t, mem.NewKVStore())

	name := "Sarah W."
	require.NoError(t, s.UpdateProfile(context.Background(), ProfilePatch{Name: &name}))

	u, _ := s.User()
	require.Equal(t, "Sarah W.", u.Name)
	require.Equal(t, "demo@example.com", u.Email)
	require.Len(t, u.Pets, 2)
}

func TestUpdateProfile_NoopWhenLoggedOut(t *testing.T) {
	s := newTestStore(t, mem.NewKVStore())

	name := "x"
	require.NoError(t, s.UpdateProfile(context.Background(), ProfilePatch{Name: &name}))
	require.False(t, s.IsLoggedIn())
}

func TestAddPet_ThenDeletePet_LeavesRosterWithoutIt(t *testing.T) {
	ctx := context.Background()
	s := loggedInStore(t, mem.NewKVStore())

	// arrancamos de un roster vacío
	u, _ := s.User()
	for _, p := range u.Pets {
		require.NoError(t, s.DeletePet(ctx, p.ID))
	}

	age := 1
	p, err := s.AddPet(ctx, PetInput{Name: "Kiko", Species: SpeciesBird, Gender: GenderMale, Age: &age})
	require.NoError(t, err)
	require.Equal(t, "pet-1", p.ID)
	require.Equal(t, s.now(), p.CreatedAt)

	u, _ = s.User()
	require.Len(t, u.Pets, 1)

	require.NoError(t, s.DeletePet(ctx, p.ID))
	u, _ = s.User()
	require.Empty(t, u.Pets)
}

func TestAddPet_NoopWhenLoggedOut(t *testing.T) {
	ctx := context.Background()
	s := loggedInStore(t, mem.NewKVStore())
	require.NoError(t, s.Logout(ctx))

	p, err := s.AddPet(ctx, PetInput{Name: "Ghost"})
	require.NoError(t, err)
	require.Empty(t, p.ID)
	require.False(t, s.IsLoggedIn())

	_, ok := s.User()
	require.False(t, ok)
}

func TestDeletePet_UnknownIDIsNoop(t *testing.T) {
	s := loggedInStore(t, mem.NewKVStore())
	before, _ := s.User()

	require.NoError(t, s.DeletePet(context.Background(), "nope"))

	after, _ := s.User()
	require.Equal(t, before, after)
}

func TestUpdatePet_MergesMatchingPetOnly(t *testing.T) {
	s := loggedInStore(t, mem.NewKVStore())

	w := 5.0
	require.NoError(t, s.UpdatePet(context.Background(), "pet-1", PetPatch{Weight: &w}))
	require.NoError(t, s.UpdatePet(context.Background(), "unknown", PetPatch{Weight: &w}))

	u, _ := s.User()
	require.Equal(t, 5.0, *u.Pets[0].Weight)
	require.Equal(t, "Persian", u.Pets[0].Breed)
	require.Equal(t, 25.0, *u.Pets[1].Weight)
}

func TestUser_ReturnsDeepCopy(t *testing.T) {
	s := loggedInStore(t, mem.NewKVStore())

	u, _ := s.User()
	*u.Pets[0].Age = 99
	u.Pets[0].Name = "mutated"

	again, _ := s.User()
	require.Equal(t, 2, *again.Pets[0].Age)
	require.Equal(t, "Milo", again.Pets[0].Name)
}

// -------------------------
// Histories
// -------------------------

func TestNewStore_SeedsHistoriesOnFirstRun(t *testing.T) {
	s := newTestStore(t, mem.NewKVStore())

	require.Len(t, s.Bookings(), 3)
	require.Len(t, s.Consultations(), 1)
	require.Len(t, s.HomeServices(), 1)
	require.Empty(t, s.Orders())
}

func TestNewStore_PersistedEmptyListWinsOverSeed(t *testing.T) {
	store := mem.NewKVStoreFrom(map[string]string{kv.KeyBookings: "[]"})
	s := newTestStore(t, store)
	require.Empty(t, s.Bookings())
}

func TestAddBooking_PrependsMostRecentFirst(t *testing.T) {
	s := loggedInStore(t, mem.NewKVStore())

	b, err := s.AddBooking(context.Background(), BookingInput{
		ServiceType: ServiceConsultation,
		ServiceName: "Konsultasi Online",
		PetName:     "Milo",
		Time:        "09:30",
		Status:      StatusUpcoming,
		Price:       75000,
	})
	require.NoError(t, err)

	list := s.Bookings()
	require.Len(t, list, 4)
	require.Equal(t, b.ID, list[0].ID)
	require.Equal(t, s.now(), list[0].Date)
}

func TestUpdateConsultationHistory_MatchesDomainID(t *testing.T) {
	ctx := context.Background()
	s := loggedInStore(t, mem.NewKVStore())

	c, err := s.AddConsultationHistory(ctx, ConsultationInput{
		ConsultationID:   "consultation-42",
		DoctorName:       "Dr. Rina Sari",
		PetName:          "Luna",
		ConsultationType: ConsultationFollowUp,
		Status:           StatusOngoing,
	})
	require.NoError(t, err)
	require.NotEqual(t, c.ID, c.ConsultationID)

	done := StatusCompleted
	// por storage id no encuentra nada
	require.NoError(t, s.UpdateConsultationHistory(ctx, c.ID, ConsultationPatch{Status: &done}))
	require.Equal(t, StatusOngoing, s.Consultations()[0].Status)

	// por id de dominio sí
	require.NoError(t, s.UpdateConsultationHistory(ctx, "consultation-42", ConsultationPatch{Status: &done}))
	require.Equal(t, StatusCompleted, s.Consultations()[0].Status)
}

func TestUpdateHomeServiceHistory_MatchesStorageID(t *testing.T) {
	ctx := context.Background()
	s := loggedInStore(t, mem.NewKVStore())

	h, err := s.AddHomeServiceHistory(ctx, HomeServiceInput{
		BookingID:   "booking-77",
		ServiceType: HomeServiceGrooming,
		Status:      StatusUpcoming,
		Price:       150000,
	})
	require.NoError(t, err)

	done := StatusCompleted
	require.NoError(t, s.UpdateHomeServiceHistory(ctx, "booking-77", HomeServicePatch{Status: &done}))
	require.Equal(t, StatusUpcoming, s.HomeServices()[0].Status)

	completed := s.now().Add(time.Hour)
	require.NoError(t, s.UpdateHomeServiceHistory(ctx, h.ID, HomeServicePatch{Status: &done, CompletedAt: &completed}))
	got := s.HomeServices()[0]
	require.Equal(t, StatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	require.True(t, got.CompletedAt.Equal(completed))
}

func TestUpdateConsultationHistory_PatchesEveryField(t *testing.T) {
	ctx := context.Background()
	s := loggedInStore(t, mem.NewKVStore())

	_, err := s.AddConsultationHistory(ctx, ConsultationInput{
		ConsultationID:   "consultation-9",
		DoctorName:       "Dr. Sarah Wijaya",
		PetName:          "Milo",
		ConsultationType: ConsultationGeneral,
		Status:           StatusUpcoming,
		Price:            25000,
	})
	require.NoError(t, err)

	doctor, image, pet := "Dr. Ahmad Pratama", "ahmad.jpg", "Luna"
	kind := ConsultationSpecialist
	date := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.UpdateConsultationHistory(ctx, "consultation-9", ConsultationPatch{
		DoctorName:       &doctor,
		DoctorImage:      &image,
		PetName:          &pet,
		ConsultationType: &kind,
		Date:             &date,
	}))

	got := s.Consultations()[0]
	require.Equal(t, "Dr. Ahmad Pratama", got.DoctorName)
	require.Equal(t, "ahmad.jpg", got.DoctorImage)
	require.Equal(t, "Luna", got.PetName)
	require.Equal(t, ConsultationSpecialist, got.ConsultationType)
	require.True(t, got.Date.Equal(date))
	// lo no enviado queda igual
	require.Equal(t, StatusUpcoming, got.Status)
	require.Equal(t, int64(25000), got.Price)
	require.Equal(t, "consultation-9", got.ConsultationID)
}

func TestUpdateHomeServiceHistory_PatchesEveryField(t *testing.T) {
	ctx := context.Background()
	s := loggedInStore(t, mem.NewKVStore())

	h, err := s.AddHomeServiceHistory(ctx, HomeServiceInput{
		BookingID:   "booking-5",
		PetName:     "Milo",
		ServiceType: HomeServiceGrooming,
		ServiceName: "Grooming & Perawatan",
		DoctorName:  "Dr. Tim Home Service",
		Status:      StatusUpcoming,
		Price:       100000,
		Address:     "Jl. Melati 3",
	})
	require.NoError(t, err)

	booking, petID, pet, name, doctor := "booking-6", "pet-2", "Luna", "Pemeriksaan Kesehatan", "Dr. Rina Sari"
	kind := HomeServiceHealthCheckup
	price := int64(150000)
	require.NoError(t, s.UpdateHomeServiceHistory(ctx, h.ID, HomeServicePatch{
		BookingID:   &booking,
		PetID:       &petID,
		PetName:     &pet,
		ServiceType: &kind,
		ServiceName: &name,
		DoctorName:  &doctor,
		Price:       &price,
	}))

	got := s.HomeServices()[0]
	require.Equal(t, h.ID, got.ID)
	require.Equal(t, "booking-6", got.BookingID)
	require.Equal(t, "pet-2", got.PetID)
	require.Equal(t, "Luna", got.PetName)
	require.Equal(t, HomeServiceHealthCheckup, got.ServiceType)
	require.Equal(t, "Pemeriksaan Kesehatan", got.ServiceName)
	require.Equal(t, "Dr. Rina Sari", got.DoctorName)
	require.Equal(t, int64(150000), got.Price)
	require.Equal(t, "Jl. Melati 3", got.Address)
	require.Equal(t, StatusUpcoming, got.Status)
}

func TestAddOrder_AssignsIDAndNumber(t *testing.T) {
	s := loggedInStore(t, mem.NewKVStore())

	o, err := s.AddOrder(context.Background(), OrderInput{
		Items:           []OrderItem{{ProductID: 1, Name: "Cat food", Price: 100, Quantity: 2}},
		Total:           200,
		ShippingAddress: "Jl. Sudirman, Jakarta",
		PaymentMethod:   "bank-transfer",
	})
	require.NoError(t, err)
	require.Equal(t, OrderProcessing, o.Status)
	require.Equal(t, orderNumber(s.now()), o.OrderNumber)
	require.Regexp(t, `^PET\d{6}$`, o.OrderNumber)
}

// Dos órdenes en el mismo milisegundo comparten número: el contrato actual no
// exige unicidad del número, solo del ID.
func TestAddOrder_SameMillisecondNumbersMayCollide(t *testing.T) {
	ctx := context.Background()
	s := loggedInStore(t, mem.NewKVStore())

	a, err := s.AddOrder(ctx, OrderInput{Total: 1})
	require.NoError(t, err)
	b, err := s.AddOrder(ctx, OrderInput{Total: 2})
	require.NoError(t, err)

	require.NotEqual(t, a.ID, b.ID)
	require.Equal(t, a.OrderNumber, b.OrderNumber)
	require.Len(t, s.Orders(), 2)
	require.Equal(t, b.ID, s.Orders()[0].ID)
}

func TestHistories_NoopWhenLoggedOut(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, mem.NewKVStore())

	o, err := s.AddOrder(ctx, OrderInput{Total: 1})
	require.NoError(t, err)
	require.Empty(t, o.ID)
	require.Empty(t, s.Orders())

	b, err := s.AddBooking(ctx, BookingInput{ServiceName: "x"})
	require.NoError(t, err)
	require.Empty(t, b.ID)
	require.Len(t, s.Bookings(), 3)
}

// -------------------------
// Persistence
// -------------------------

func TestRoundTrip_ReconstructsEqualCollections(t *testing.T) {
	ctx := context.Background()
	store := mem.NewKVStore()
	s := loggedInStore(t, store)

	age := 4
	_, err := s.AddPet(ctx, PetInput{Name: "Bun", Species: SpeciesRabbit, Gender: GenderFemale, Age: &age})
	require.NoError(t, err)
	_, err = s.AddBooking(ctx, BookingInput{ServiceType: ServiceHomeService, ServiceName: "Grooming", Date: time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC), Time: "10:00", Status: StatusUpcoming, Price: 120000})
	require.NoError(t, err)
	_, err = s.AddConsultationHistory(ctx, ConsultationInput{
		ConsultationID: "consultation-9",
		Messages: []ChatMessage{
			{ID: "m1", Sender: SenderUser, Text: "halo", Timestamp: time.Date(2025, 3, 1, 9, 31, 5, 123456789, time.UTC), Kind: MessageText},
		},
	})
	require.NoError(t, err)
	completed := time.Date(2025, 3, 2, 11, 0, 0, 0, time.UTC)
	_, err = s.AddHomeServiceHistory(ctx, HomeServiceInput{BookingID: "b-1", CompletedAt: &completed})
	require.NoError(t, err)
	_, err = s.AddOrder(ctx, OrderInput{Items: []OrderItem{{ProductID: 3, Name: "Leash", Price: 50, Quantity: 1}}, Total: 50})
	require.NoError(t, err)

	reloaded := newTestStore(t, store)

	u1, _ := s.User()
	u2, ok := reloaded.User()
	require.True(t, ok)
	require.Equal(t, u1, u2)
	require.Equal(t, s.Bookings(), reloaded.Bookings())
	require.Equal(t, s.Consultations(), reloaded.Consultations())
	require.Equal(t, s.HomeServices(), reloaded.HomeServices())
	require.Equal(t, s.Orders(), reloaded.Orders())
}

func TestHydrate_ParsesDateOnlyTimestamps(t *testing.T) {
	store := mem.NewKVStoreFrom(map[string]string{
		kv.KeyBookings: `[{"id":"booking-1","serviceType":"consultation","serviceName":"Konsultasi Online","date":"2024-01-10","time":"14:00","status":"completed","price":75000}]`,
	})
	s := newTestStore(t, store)

	list := s.Bookings()
	require.Len(t, list, 1)
	require.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), list[0].Date)
}

func TestHydrate_CorruptCollectionFails(t *testing.T) {
	store := mem.NewKVStoreFrom(map[string]string{kv.KeyOrders: "{not json"})
	_, err := NewStore(context.Background(), store, demoCreds, nil)
	require.Error(t, err)
}

func TestPersist_WritesFullCollectionAsJSONArray(t *testing.T) {
	ctx := context.Background()
	store := mem.NewKVStore()
	s := loggedInStore(t, store)

	_, err := s.AddOrder(ctx, OrderInput{Total: 10})
	require.NoError(t, err)

	raw, ok, _ := store.Get(ctx, kv.KeyOrders)
	require.True(t, ok)

	var recs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &recs))
	require.Len(t, recs, 1)
	require.Equal(t, "2025-03-01T09:30:00Z", recs[0]["date"])
}

func TestPersist_BackendErrorIsReturnedAndStateKept(t *testing.T) {
	ctx := context.Background()
	store := &failingKV{Store: mem.NewKVStore()}
	s := loggedInStore(t, store)

	store.failSet = true
	_, err := s.AddOrder(ctx, OrderInput{Total: 10})
	require.ErrorIs(t, err, errBackend)
	require.Len(t, s.Orders(), 1)
}
