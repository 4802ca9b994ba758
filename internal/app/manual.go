package app

import (
	"context"
	"strings"
	"time"

	"hotelbook/internal/adapters/observability"
	"hotelbook/internal/domain"
)

// SearchQuery is the manual booking form: every field is validated eagerly,
// before any catalog query runs.
type SearchQuery struct {
	City        string    `json:"city"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	Guests      int       `json:"guests"`
	Email       string    `json:"email"`
	Preferences string    `json:"preferences,omitempty"`
}

// Validate checks every field and reports the first problem. Preferences
// are optional.
func (q SearchQuery) Validate() error {
	switch {
	case len(strings.TrimSpace(q.City)) < 2:
		return domain.Invalid("city", "must be at least 2 characters")
	case q.CheckIn.IsZero():
		return domain.Invalid("check_in", "is required")
	case q.CheckOut.IsZero():
		return domain.Invalid("check_out", "is required")
	case !q.CheckOut.After(q.CheckIn):
		return domain.Invalid("check_out", "must be after check-in date")
	case q.Guests < 1 || q.Guests > 10:
		return domain.Invalid("guests", "must be between 1 and 10")
	case !emailPattern.MatchString(q.Email):
		return domain.Invalid("email", "must be a valid address")
	}
	return nil
}

// ManualFlow is the single-shot form path: validate, search once, then book
// the user's pick on explicit confirmation.
type ManualFlow struct {
	search *SearchService
	ledger domain.Ledger
}

func NewManualFlow(search *SearchService, ledger domain.Ledger) *ManualFlow {
	return &ManualFlow{search: search, ledger: ledger}
}

// Search validates q and queries the catalog. Zero results are reported as
// an empty (non-nil) slice, not an error.
func (f *ManualFlow) Search(ctx context.Context, q SearchQuery) ([]domain.Hotel, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	hotels, err := f.search.Search(ctx, q.City)
	if err != nil {
		return nil, err
	}
	if hotels == nil {
		hotels = []domain.Hotel{}
	}
	return hotels, nil
}

// Book commits the chosen hotel. An unknown hotel ID is a selection
// problem, not a server fault.
func (f *ManualFlow) Book(ctx context.Context, q SearchQuery, hotelID string) (domain.Booking, error) {
	if err := q.Validate(); err != nil {
		return domain.Booking{}, err
	}
	hotel, err := f.search.GetHotel(ctx, hotelID)
	if err != nil {
		return domain.Booking{}, domain.Invalid("hotel_id", "unknown hotel")
	}
	b, err := f.ledger.Add(ctx, domain.BookingRequest{
		City:        q.City,
		CheckIn:     q.CheckIn,
		CheckOut:    q.CheckOut,
		Guests:      q.Guests,
		Preferences: q.Preferences,
		Email:       q.Email,
		Hotel:       &hotel,
	})
	if err != nil {
		return domain.Booking{}, err
	}
	observability.ObserveBooking("manual")
	return b, nil
}
