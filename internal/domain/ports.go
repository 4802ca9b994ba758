package domain

import "context"

// Catalog is the read-only hotel inventory.
type Catalog interface {
	// Search returns every hotel whose city or country contains query as a
	// case-insensitive substring, in catalog order, capped at 20. An empty
	// result is valid.
	Search(ctx context.Context, query string) ([]Hotel, error)
	GetByID(ctx context.Context, id string) (Hotel, error)
}

// Ledger is the process-lifetime collection of confirmed bookings.
type Ledger interface {
	// Add validates req, computes nights and total cost, mints an ID and
	// timestamp, appends the booking, and returns it by value. Fails with
	// ErrInvalidRequest when required fields are absent or dates inverted.
	Add(ctx context.Context, req BookingRequest) (Booking, error)
	GetByID(ctx context.Context, id string) (Booking, error)
}

// Cache fronts repeated catalog queries. All methods are best effort;
// callers must tolerate a miss or an error without failing the request.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
