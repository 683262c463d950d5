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
	"bytebite/mealapi"
	"bytebite/storefront/internal/checkout"
	"bytebite/storefront/internal/menu"
	"bytebite/storefront/internal/registration"
	"bytebite/storefront/internal/web"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadStorefront()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	config.SetupLogger("storefront", cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		fetcher   menu.Fetcher
		submitter checkout.OrderSubmitter
		registrar registration.Registrar
		proxy     *web.Proxy
	)

	if cfg.Offline {
		fetcher = menu.NewStaticFetcher()
		submitter = checkout.NewLocalSubmitter()
		registrar = registration.OfflineRegistrar{}
		log.Info().Msg("running offline with the built-in catalog")
	} else {
		httpClient := &http.Client{Timeout: cfg.RequestTimeout}
		client := mealapi.NewClient(cfg.MealAPIURL, httpClient)
		fetcher = menu.NewHTTPFetcher(client)
		submitter = checkout.NewAPISubmitter(client)
		registrar = client
		proxy = web.NewProxy(cfg.MealAPIURL, httpClient)
		log.Info().Str("meal_api", cfg.MealAPIURL).Msg("using meal service")
	}

	sessions := web.NewSessionStore(cfg.SessionTTL, func() *checkout.Controller {
		return checkout.NewController(fetcher, submitter)
	})
	go sessions.RunJanitor(ctx, time.Minute)

	handler := web.NewHandler(sessions, registration.NewService(registrar), !cfg.Offline)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           web.NewRouter(handler, proxy),
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

	log.Info().Str("addr", cfg.Addr).Msg("Storefront starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}
