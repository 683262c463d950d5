package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bytebite/config"
	httpapi "bytebite/meal-svc/internal/api/http"
	"bytebite/meal-svc/internal/service"
	"bytebite/meal-svc/internal/storage"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadMealService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	config.SetupLogger("meal-svc", cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg.Postgres)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure schema")
	}

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	cache := storage.NewRedisCache(rdb, cfg.MealCacheTTL)
	popularity := storage.NewRedisPopularity(rdb)

	var publisher service.OrderPublisher
	if cfg.Kafka.Enabled {
		writer := config.NewKafkaWriter(cfg.Kafka)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)

		reader := config.NewKafkaReader(cfg.Kafka)
		defer reader.Close()
		go service.NewConsumer(reader, popularity).Start(ctx)
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.OrdersTopic).Msg("kafka enabled")
	} else {
		publisher = service.LocalPublisher{Consumer: service.NewConsumer(nil, popularity)}
		log.Info().Msg("kafka disabled, popularity updated in-process")
	}

	handler := httpapi.NewHandler(
		service.NewMealService(repo, cache),
		service.NewRestaurantService(repo),
		service.NewOrderService(repo, publisher, service.DefaultQRGenerator{BaseURL: cfg.PublicURL}),
		service.NewPopularityService(popularity),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.Addr).Msg("Meal Service starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}
