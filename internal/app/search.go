package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelbook/internal/adapters/observability"
	"hotelbook/internal/domain"
)

// SearchService fronts the catalog with an optional cache. The catalog is
// immutable after generation, so cached entries never go stale within a
// process; the TTL only bounds memory in the shared cache.
type SearchService struct {
	catalog  domain.Catalog
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewSearchService(c domain.Catalog, cache domain.Cache, ttl time.Duration) *SearchService {
	return &SearchService{catalog: c, cache: cache, cacheTTL: ttl}
}

// SearchKey is the cache key for a destination query.
func SearchKey(query string) string {
	return fmt.Sprintf("search:%s", strings.ToLower(strings.TrimSpace(query)))
}

func (s *SearchService) Search(ctx context.Context, query string) ([]domain.Hotel, error) {
	observability.ObserveSearch()
	key := SearchKey(query)
	if s.cache != nil {
		var cached []domain.Hotel
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}
	hotels, err := s.catalog.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		// copy so later callers can't mutate the cached value through the
		// returned slice
		_ = s.cache.Set(ctx, key, copyHotels(hotels), int(s.cacheTTL.Seconds()))
	}
	return hotels, nil
}

func (s *SearchService) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	key := "hotel:" + id
	if s.cache != nil {
		var h domain.Hotel
		if ok, _ := s.cache.Get(ctx, key, &h); ok {
			return h, nil
		}
	}
	h, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
	}
	return h, nil
}

func copyHotels(in []domain.Hotel) []domain.Hotel {
	if len(in) == 0 {
		return []domain.Hotel{}
	}
	out := make([]domain.Hotel, len(in))
	copy(out, in)
	return out
}
