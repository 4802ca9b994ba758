// Package catalog holds the in-memory hotel inventory. Records are
// generated once at startup and never mutated, so reads need no locking.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"hotelbook/internal/domain"
)

// DefaultSize is the catalog size generated when none is configured.
const DefaultSize = 120

// searchCap bounds Search results; order is catalog insertion order.
const searchCap = 20

type Store struct {
	hotels []domain.Hotel
	byID   map[string]int
}

// New builds a store over a pre-built fixture list. The slice is copied.
func New(hotels []domain.Hotel) (*Store, error) {
	s := &Store{
		hotels: make([]domain.Hotel, len(hotels)),
		byID:   make(map[string]int, len(hotels)),
	}
	copy(s.hotels, hotels)
	for i, h := range s.hotels {
		if _, dup := s.byID[h.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate hotel id %q", h.ID)
		}
		s.byID[h.ID] = i
	}
	return s, nil
}

// NewGenerated builds a store over a freshly generated catalog.
func NewGenerated(seed int64, size int) *Store {
	s, err := New(Generate(seed, size))
	if err != nil {
		// Generate assigns sequential IDs; a duplicate is a bug here.
		panic(err)
	}
	return s
}

func (s *Store) Search(ctx context.Context, query string) ([]domain.Hotel, error) {
	q := strings.ToLower(query)
	var out []domain.Hotel
	for _, h := range s.hotels {
		if strings.Contains(strings.ToLower(h.City), q) ||
			strings.Contains(strings.ToLower(h.Country), q) {
			out = append(out, h)
			if len(out) == searchCap {
				break
			}
		}
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (domain.Hotel, error) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return s.hotels[i], nil
}

// Len reports the catalog size.
func (s *Store) Len() int { return len(s.hotels) }

// Cities lists every distinct destination city in catalog order. Used by
// the cache warmer to enumerate warmable queries.
func (s *Store) Cities() []string {
	seen := make(map[string]struct{}, len(s.hotels))
	var out []string
	for _, h := range s.hotels {
		if _, ok := seen[h.City]; ok {
			continue
		}
		seen[h.City] = struct{}{}
		out = append(out, h.City)
	}
	return out
}
