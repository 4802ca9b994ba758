// Package ledger keeps the process-lifetime list of confirmed bookings.
// Append-only; bookings are never mutated after creation.
package ledger

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"hotelbook/internal/domain"
)

const suffixLen = 5

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

type Ledger struct {
	mu       sync.RWMutex
	bookings []domain.Booking
	byID     map[string]int

	now  func() time.Time
	rand *rand.Rand
}

type Option func(*Ledger)

// WithClock pins the creation timestamp source. Tests use this.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithSeed pins the booking-ID suffix randomness. Tests use this.
func WithSeed(seed int64) Option {
	return func(l *Ledger) { l.rand = rand.New(rand.NewSource(seed)) }
}

func New(opts ...Option) *Ledger {
	l := &Ledger{
		byID: make(map[string]int),
		now:  time.Now,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *Ledger) Add(ctx context.Context, req domain.BookingRequest) (domain.Booking, error) {
	if err := validate(req); err != nil {
		return domain.Booking{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	nights := domain.Nights(req.CheckIn, req.CheckOut)
	b := domain.Booking{
		ID:          l.mintID(),
		Hotel:       *req.Hotel,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Guests:      req.Guests,
		Preferences: req.Preferences,
		Nights:      nights,
		TotalCost:   float64(nights) * req.Hotel.Price,
		CreatedAt:   l.now().UTC(),
		Email:       req.Email,
	}
	l.byID[b.ID] = len(l.bookings)
	l.bookings = append(l.bookings, b)
	return b, nil
}

func (l *Ledger) GetByID(ctx context.Context, id string) (domain.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i, ok := l.byID[id]
	if !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	return l.bookings[i], nil
}

// Len reports how many bookings have been committed.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings)
}

// mintID builds a time-prefixed ID with a random suffix, e.g. BK1717...X4K2P.
// Unique within process lifetime is all that is required; the suffix retries
// guard against same-millisecond collisions. Caller holds the lock.
func (l *Ledger) mintID() string {
	for {
		var sb strings.Builder
		fmt.Fprintf(&sb, "BK%d", l.now().UnixMilli())
		for i := 0; i < suffixLen; i++ {
			sb.WriteByte(base36[l.rand.Intn(len(base36))])
		}
		id := strings.ToUpper(sb.String())
		if _, taken := l.byID[id]; !taken {
			return id
		}
	}
}

func validate(req domain.BookingRequest) error {
	switch {
	case req.Hotel == nil:
		return fmt.Errorf("%w: no hotel selected", domain.ErrInvalidRequest)
	case req.City == "":
		return fmt.Errorf("%w: missing city", domain.ErrInvalidRequest)
	case req.CheckIn.IsZero() || req.CheckOut.IsZero():
		return fmt.Errorf("%w: missing dates", domain.ErrInvalidRequest)
	case !req.CheckOut.After(req.CheckIn):
		return fmt.Errorf("%w: check-out must be after check-in", domain.ErrInvalidRequest)
	case req.Guests < 1 || req.Guests > 10:
		return fmt.Errorf("%w: guests must be within 1..10", domain.ErrInvalidRequest)
	case req.Email == "":
		return fmt.Errorf("%w: missing email", domain.ErrInvalidRequest)
	}
	return nil
}
