// Command warmer pre-populates the Redis search cache with every
// destination city in the catalog, so the first visitor of each city gets a
// cache hit. Pointless without REDIS_ADDR set.
package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotelbook/internal/adapters/observability"
	redisad "hotelbook/internal/adapters/redis"
	"hotelbook/internal/app"
	"hotelbook/internal/catalog"
	"hotelbook/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.RedisAddr == "" {
		log.Fatal().Msg("REDIS_ADDR is required for cache warming")
	}

	log.Info().
		Int("workers", cfg.Workers).
		Int64("seed", cfg.CatalogSeed).
		Msg("warmer starting")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("redis ping failed")
	}

	// The API process generates the same catalog from the same seed, so
	// warming against a local copy fills the keys the API will read.
	store := catalog.NewGenerated(cfg.CatalogSeed, cfg.CatalogSize)
	search := app.NewSearchService(store, cache, cfg.CacheTTL)

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, city := range store.Cities() {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(city string) {
			defer wg.Done()
			defer sem.Release(1)

			hotels, err := search.Search(ctx, city)
			if err != nil {
				log.Warn().Str("city", city).Err(err).Msg("warm failed")
				return
			}
			log.Info().Str("city", city).Int("hotels", len(hotels)).Msg("warm ok")
		}(city)
	}

	wg.Wait()
	log.Info().Msg("cache warming completed")
}
