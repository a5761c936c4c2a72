package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"petcare-marketplace/internal/domain/cart"
	"petcare-marketplace/internal/domain/session"

	"github.com/stretchr/testify/require"
)

func TestProducts_Filter(t *testing.T) {
	c := New()

	cases := []struct {
		name string
		f    ProductFilter
		want []int64
	}{
		{"no filter", ProductFilter{}, []int64{1, 2, 3, 4, 5, 6}},
		{"all", ProductFilter{Category: "all"}, []int64{1, 2, 3, 4, 5, 6}},
		{"category", ProductFilter{Category: "food"}, []int64{1, 6}},
		{"query case insensitive", ProductFilter{Query: "  KUCING "}, []int64{2, 4}},
		{"category and query", ProductFilter{Category: "food", Query: "royal"}, []int64{1}},
		{"no match", ProductFilter{Category: "toys", Query: "shampoo"}, []int64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := []int64{}
			for _, p := range c.Products(tc.f) {
				got = append(got, p.ID)
			}
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCategories_AllFirst(t *testing.T) {
	c := New()
	cats := c.Categories()
	require.Len(t, cats, 6)
	require.Equal(t, Category{ID: "all", Name: "Semua Produk"}, cats[0])
	require.True(t, c.HasCategory("grooming"))
	require.True(t, c.HasCategory("all"))
	require.False(t, c.HasCategory("cars"))
}

func TestCartProduct(t *testing.T) {
	c := New()

	p, err := c.CartProduct(1)
	require.NoError(t, err)
	require.Equal(t, "Royal Canin Adult Cat Food", p.Name)
	require.Equal(t, int64(285000), cart.ParsePrice(p.Price))
	require.Equal(t, int64(320000), cart.ParsePrice(p.OriginalPrice))

	_, err = c.CartProduct(4)
	require.ErrorIs(t, err, cart.ErrOutOfStock)

	_, err = c.CartProduct(99)
	require.ErrorIs(t, err, cart.ErrProductNotFound)
}

func TestServicesAndDoctors(t *testing.T) {
	c := New()

	ss := c.Services()
	require.Len(t, ss, 4)
	ss[0].Includes[0] = "mutated"
	s, err := c.Service("checkup")
	require.NoError(t, err)
	require.Equal(t, "Pemeriksaan fisik lengkap", s.Includes[0])
	require.Equal(t, session.HomeServiceHealthCheckup, s.Type)

	_, err = c.Service("spa")
	require.ErrorIs(t, err, ErrServiceNotFound)

	require.Len(t, c.TimeSlots(), 9)
	require.True(t, c.HasTimeSlot("13:00"))
	require.False(t, c.HasTimeSlot("12:00"))

	// busy se puede elegir igual
	d, err := c.Doctor(3)
	require.NoError(t, err)
	require.Equal(t, DoctorBusy, d.Status)
	require.Equal(t, int64(30000), d.Price)

	_, err = c.Doctor(9)
	require.ErrorIs(t, err, ErrDoctorNotFound)
}

type fakeRecorder struct {
	user     *session.User
	bookings []session.BookingInput
	visits   []session.HomeServiceInput
	err      error
}

func (f *fakeRecorder) User() (session.User, bool) {
	if f.user == nil {
		return session.User{}, false
	}
	return *f.user, true
}

func (f *fakeRecorder) AddBooking(_ context.Context, in session.BookingInput) (session.Booking, error) {
	f.bookings = append(f.bookings, in)
	return session.Booking{ID: "booking-7"}, f.err
}

func (f *fakeRecorder) AddHomeServiceHistory(_ context.Context, in session.HomeServiceInput) (session.HomeServiceHistory, error) {
	f.visits = append(f.visits, in)
	return session.HomeServiceHistory{ID: "home-service-7", BookingID: in.BookingID, Address: in.Address, Notes: in.Notes}, nil
}

func demoRecorder() *fakeRecorder {
	return &fakeRecorder{user: &session.User{
		Address: "Jl. Sudirman No. 123",
		Pets:    []session.Pet{{ID: "pet-1", Name: "Milo"}, {ID: "pet-2", Name: "Luna"}},
	}}
}

func TestBook_CreatesLinkedBookingAndVisit(t *testing.T) {
	rec := demoRecorder()
	b := NewBooker(New(), rec)
	date := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	h, err := b.Book(context.Background(), BookInput{ServiceID: "emergency", Date: date, Time: "08:00"})
	require.NoError(t, err)
	require.Equal(t, "booking-7", h.BookingID)
	require.Equal(t, "Jl. Sudirman No. 123", h.Address)
	require.Equal(t, "Booking Layanan Darurat pada 2025-04-02 jam 08:00", h.Notes)

	require.Len(t, rec.bookings, 1)
	bk := rec.bookings[0]
	require.Equal(t, session.ServiceHomeService, bk.ServiceType)
	require.Equal(t, session.StatusUpcoming, bk.Status)
	require.Equal(t, int64(300000), bk.Price)
	require.Equal(t, "pet-1", bk.PetID)

	v := rec.visits[0]
	require.Equal(t, session.HomeServiceEmergency, v.ServiceType)
	require.Equal(t, "Dr. Tim Home Service", v.DoctorName)
	require.Equal(t, "Milo", v.PetName)
	require.True(t, v.Date.Equal(date))
}

func TestBook_ExplicitPetAndAddress(t *testing.T) {
	rec := demoRecorder()
	b := NewBooker(New(), rec)

	h, err := b.Book(context.Background(), BookInput{ServiceID: "grooming", PetID: "pet-2", Time: "15:00", Address: "Jl. Thamrin 1", Notes: "pintu belakang"})
	require.NoError(t, err)
	require.Equal(t, "Jl. Thamrin 1", h.Address)
	require.Equal(t, "pintu belakang", h.Notes)
	require.Equal(t, "Luna", rec.visits[0].PetName)
	require.Equal(t, int64(100000), rec.visits[0].Price)
}

func TestBook_Fallbacks(t *testing.T) {
	rec := &fakeRecorder{user: &session.User{}}
	b := NewBooker(New(), rec)

	_, err := b.Book(context.Background(), BookInput{ServiceID: "checkup", Time: "09:00"})
	require.NoError(t, err)
	require.Equal(t, "Hewan Peliharaan", rec.visits[0].PetName)
	require.Equal(t, "", rec.visits[0].PetID)
	require.Equal(t, "Alamat akan dikonfirmasi", rec.visits[0].Address)
}

func TestBook_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewBooker(New(), &fakeRecorder{}).Book(ctx, BookInput{ServiceID: "checkup", Time: "09:00"})
	require.ErrorIs(t, err, ErrNotLoggedIn)

	rec := demoRecorder()
	b := NewBooker(New(), rec)

	_, err = b.Book(ctx, BookInput{ServiceID: "spa", Time: "09:00"})
	require.ErrorIs(t, err, ErrServiceNotFound)

	_, err = b.Book(ctx, BookInput{ServiceID: "checkup", Time: "12:00"})
	require.ErrorIs(t, err, ErrInvalidSlot)

	_, err = b.Book(ctx, BookInput{ServiceID: "checkup", Time: "09:00", PetID: "pet-9"})
	require.ErrorIs(t, err, ErrPetNotFound)

	require.Empty(t, rec.bookings)
	require.Empty(t, rec.visits)

	rec.err = errors.New("kv down")
	_, err = b.Book(ctx, BookInput{ServiceID: "checkup", Time: "09:00"})
	require.ErrorContains(t, err, "add booking")
	require.Empty(t, rec.visits)
}
