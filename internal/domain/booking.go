package domain

import (
	"math"
	"time"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// BookingRequest accumulates booking fields before commit. Both flows
// (manual form and dialogue wizard) build one of these field by field.
type BookingRequest struct {
	City        string
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      int
	Preferences string
	Email       string
	Hotel       *Hotel
}

// Booking is a confirmed reservation. Immutable once minted by the ledger.
type Booking struct {
	ID          string    `json:"id"`
	Hotel       Hotel     `json:"hotel"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	Guests      int       `json:"guests"`
	Preferences string    `json:"preferences,omitempty"`
	Nights      int       `json:"nights"`
	TotalCost   float64   `json:"total_cost"`
	CreatedAt   time.Time `json:"created_at"`
	Email       string    `json:"email"`
}

// Nights is the whole-day difference between checkout and checkin,
// rounded up, never less than one.
func Nights(checkIn, checkOut time.Time) int {
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		n = 1
	}
	return n
}
