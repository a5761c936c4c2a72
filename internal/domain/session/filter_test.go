package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func bookingIDs(in []Booking) []string {
	out := make([]string, 0, len(in))
	for _, b := range in {
		out = append(out, b.ID)
	}
	return out
}

func TestHistoryFilter_Bookings(t *testing.T) {
	seed := seedBookings()

	cases := []struct {
		name string
		f    HistoryFilter
		want []string
	}{
		{"empty filter keeps all", HistoryFilter{}, []string{"booking-1", "booking-2", "booking-3"}},
		{"all is no filter", HistoryFilter{Status: "all", ServiceType: "all"}, []string{"booking-1", "booking-2", "booking-3"}},
		{"status", HistoryFilter{Status: "upcoming"}, []string{"booking-3"}},
		{"service type", HistoryFilter{ServiceType: "home-service"}, []string{"booking-2"}},
		{"query pet case insensitive", HistoryFilter{Query: "  MILO "}, []string{"booking-1", "booking-3"}},
		{"query doctor", HistoryFilter{Query: "rina"}, []string{"booking-3"}},
		{"query service name", HistoryFilter{Query: "vaksin"}, []string{"booking-2"}},
		{"status and query", HistoryFilter{Status: "completed", Query: "milo"}, []string{"booking-1"}},
		{"no match", HistoryFilter{Query: "hamster"}, []string{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, bookingIDs(filterSlice(seed, c.f.Booking)))
		})
	}
}

func TestHistoryFilter_ConsultationsSearchType(t *testing.T) {
	seed := seedConsultations()

	require.Len(t, filterSlice(seed, HistoryFilter{Query: "general"}.Consultation), 1)
	require.Len(t, filterSlice(seed, HistoryFilter{Query: "sarah"}.Consultation), 1)
	require.Empty(t, filterSlice(seed, HistoryFilter{Status: "upcoming"}.Consultation))
}

func TestHistoryFilter_HomeServices(t *testing.T) {
	seed := seedHomeServices()

	require.Len(t, filterSlice(seed, HistoryFilter{Query: "luna", Status: "completed"}.HomeService), 1)
	require.Empty(t, filterSlice(seed, HistoryFilter{Query: "grooming"}.HomeService))
}

func TestHistoryFilter_OrdersByNumberOrItem(t *testing.T) {
	orders := []Order{
		{ID: "o1", OrderNumber: "PET000123", Status: OrderProcessing, Items: []OrderItem{{Name: "Royal Canin Adult Cat Food"}}},
		{ID: "o2", OrderNumber: "PET000456", Status: OrderDelivered, Items: []OrderItem{{Name: "Shampoo Anjing Anti Kutu"}}},
	}

	require.Len(t, filterSlice(orders, HistoryFilter{Query: "pet000456"}.Order), 1)
	require.Len(t, filterSlice(orders, HistoryFilter{Query: "royal"}.Order), 1)
	require.Len(t, filterSlice(orders, HistoryFilter{Status: "delivered"}.Order), 1)
	require.Empty(t, filterSlice(orders, HistoryFilter{Status: "shipped"}.Order))
}
