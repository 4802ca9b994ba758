package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	server "hotelbook/internal/adapters/http_server"
	"hotelbook/internal/adapters/observability"
	redisad "hotelbook/internal/adapters/redis"
	"hotelbook/internal/app"
	"hotelbook/internal/catalog"
	"hotelbook/internal/domain"
	"hotelbook/internal/ledger"
	"hotelbook/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// catalog & ledger: both live in memory for the life of the process
	store := catalog.NewGenerated(cfg.CatalogSeed, cfg.CatalogSize)
	log.Info().Int("hotels", store.Len()).Int64("seed", cfg.CatalogSeed).Msg("catalog generated")
	book := ledger.New()

	// cache is optional; without REDIS_ADDR every search hits the catalog
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(context.Background()); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, running without cache")
		} else {
			cache = rc
			log.Info().Str("addr", cfg.RedisAddr).Msg("redis cache enabled")
		}
	}

	// deps
	search := app.NewSearchService(store, cache, cfg.CacheTTL)
	flow := app.NewManualFlow(search, book)
	sessions := app.NewSessions(search, book)

	// http
	srv := server.New(cfg.RateRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Search:   search,
		Flow:     flow,
		Ledger:   book,
		Sessions: sessions,
		Present:  app.Presenter{},
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
