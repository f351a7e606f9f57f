package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/bank-ledger/pkg/handlers/ledger"
	ledgermiddleware "github.com/de-tools/bank-ledger/pkg/server/middleware"
	"github.com/de-tools/bank-ledger/pkg/services/interest"
	"github.com/de-tools/bank-ledger/pkg/services/ledger"
	"github.com/de-tools/bank-ledger/pkg/services/rates"
	"github.com/de-tools/bank-ledger/pkg/services/statement"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          http.Handler
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Ledger     ledger.Service
	Rates      rates.Service
	Calculator interest.Calculator
	Statements statement.Builder
	Logger     zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) http.Handler {
	deps := config.Dependencies
	h := handlers.NewHandler(deps.Ledger, deps.Rates, deps.Calculator, deps.Statements)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(ledgermiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/accounts/{account}", func(r chi.Router) {
			r.Post("/transactions", h.CreateTransaction)
			r.Get("/transactions", h.ListTransactions)
			r.Get("/interest/{month}", h.GetInterest)
			r.Get("/statements/{month}", h.GetStatement)
		})

		r.Get("/rules", h.ListRules)
		r.Put("/rules/{date}", h.PutRule)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: timeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
