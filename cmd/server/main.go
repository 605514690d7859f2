package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/voltline/backend/internal/config"
	"github.com/voltline/backend/internal/db"
	"github.com/voltline/backend/internal/geocode"
	httpapi "github.com/voltline/backend/internal/http"
	"github.com/voltline/backend/internal/memstore"
	"github.com/voltline/backend/internal/notify"
	"github.com/voltline/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "voltline-backend").Logger()

	ctx := context.Background()

	var st store.Store
	switch cfg.StoreDriver {
	case "postgres":
		pg, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect db")
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to ensure schema")
		}
		st = pg
	default:
		logger.Info().Msg("using in-memory store")
		st = memstore.New()
	}
	defer st.Close()

	var notifier notify.Notifier
	if cfg.WebhookURL == "" {
		notifier = notify.LogNotifier{Logger: logger}
	} else {
		notifier = notify.WebhookNotifier{BaseURL: cfg.WebhookURL}
	}

	var geocoder geocode.Geocoder
	if cfg.GeocodeEnabled {
		geocoder = &geocode.NominatimGeocoder{}
		logger.Info().Msg("address geocoding enabled")
	}

	router := httpapi.Router(cfg, st, notifier, geocoder, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
