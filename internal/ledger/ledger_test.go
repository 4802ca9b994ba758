package ledger

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbook/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func validRequest() domain.BookingRequest {
	return domain.BookingRequest{
		City:     "Paris",
		CheckIn:  date("2024-06-10"),
		CheckOut: date("2024-06-15"),
		Guests:   2,
		Email:    "a@b.com",
		Hotel:    &domain.Hotel{ID: "h001", Name: "Grand Palace Hotel", Price: 250, Currency: "EUR"},
	}
}

func TestAdd_ComputesNightsAndTotal(t *testing.T) {
	l := New(WithSeed(1))
	b, err := l.Add(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 5, b.Nights)
	assert.Equal(t, 1250.0, b.TotalCost)
	assert.True(t, strings.HasPrefix(b.ID, "BK"))
	assert.False(t, b.CreatedAt.IsZero())
	assert.Equal(t, "a@b.com", b.Email)

	got, err := l.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestAdd_SingleNightMinimum(t *testing.T) {
	l := New()
	req := validRequest()
	req.CheckOut = date("2024-06-11")
	b, err := l.Add(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Nights)
	assert.Equal(t, 250.0, b.TotalCost)
}

func TestAdd_RejectsIncompleteRequests(t *testing.T) {
	mutations := map[string]func(*domain.BookingRequest){
		"no hotel":        func(r *domain.BookingRequest) { r.Hotel = nil },
		"no city":         func(r *domain.BookingRequest) { r.City = "" },
		"no checkin":      func(r *domain.BookingRequest) { r.CheckIn = time.Time{} },
		"no checkout":     func(r *domain.BookingRequest) { r.CheckOut = time.Time{} },
		"no email":        func(r *domain.BookingRequest) { r.Email = "" },
		"zero guests":     func(r *domain.BookingRequest) { r.Guests = 0 },
		"too many guests": func(r *domain.BookingRequest) { r.Guests = 11 },
		"inverted dates": func(r *domain.BookingRequest) {
			r.CheckIn, r.CheckOut = r.CheckOut, r.CheckIn
		},
		"equal dates": func(r *domain.BookingRequest) { r.CheckOut = r.CheckIn },
	}
	l := New()
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			_, err := l.Add(context.Background(), req)
			require.ErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}
	assert.Equal(t, 0, l.Len(), "rejected requests must not be appended")
}

func TestAdd_MintsUniqueIDs(t *testing.T) {
	// frozen clock forces the time prefix to collide; suffix retry must
	// still keep IDs unique
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	l := New(WithClock(func() time.Time { return fixed }), WithSeed(7))

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		b, err := l.Add(context.Background(), validRequest())
		require.NoError(t, err)
		_, dup := seen[b.ID]
		require.False(t, dup, "duplicate booking id %s", b.ID)
		seen[b.ID] = struct{}{}
	}
}

func TestGetByID_Absent(t *testing.T) {
	l := New()
	_, err := l.GetByID(context.Background(), "BK000NOPE")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNights(t *testing.T) {
	cases := []struct {
		in, out string
		want    int
	}{
		{"2024-06-10", "2024-06-15", 5},
		{"2024-06-10", "2024-06-11", 1},
		{"2024-12-30", "2025-01-02", 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, domain.Nights(date(c.in), date(c.out)), "%s..%s", c.in, c.out)
	}
}
