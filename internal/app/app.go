// Package app assembles the components into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"dinewise/internal/auth"
	"dinewise/internal/config"
	"dinewise/internal/handlers"
	"dinewise/internal/hours"
	"dinewise/internal/lock"
	"dinewise/internal/queue"
	"dinewise/internal/reservations"
	"dinewise/internal/restaurants"
	"dinewise/internal/storage"
	"dinewise/internal/tasks"
	"dinewise/internal/ws"

	"github.com/gin-gonic/gin"
)

// Components are the services built on top of one store.
type Components struct {
	Store        *storage.Store
	Restaurants  *restaurants.Directory
	Hours        *hours.Service
	Reservations *reservations.Ledger
	Queue        *queue.Ledger
	Hub          *ws.Hub
}

// Build wires the services around store. Slot locks go through Redis when the store has a client.
func Build(cfg *config.Config, store *storage.Store, loc *time.Location, log *slog.Logger) (*Components, error) {
	hasher, err := auth.NewHasher(cfg.Auth.PasswordHashing)
	if err != nil {
		return nil, err
	}

	hub := ws.NewHub(log.With(slog.String("component", "ws")))
	hoursSvc := hours.NewService(store.DB, log.With(slog.String("component", "hours")))

	ledgerOpts := []reservations.Option{reservations.WithLocation(loc)}
	if store.Redis != nil {
		ledgerOpts = append(ledgerOpts, reservations.WithLocker(lock.NewRedis(store.Redis)))
	}

	directory := restaurants.NewDirectory(store.DB, hasher, log.With(slog.String("component", "restaurants")))
	ledger := reservations.NewLedger(store.DB, hoursSvc, log.With(slog.String("component", "reservations")), ledgerOpts...)
	walkIns := queue.NewLedger(store.DB, log.With(slog.String("component", "queue")),
		queue.WithLocation(loc), queue.WithNotifier(hub))

	return &Components{
		Store:        store,
		Restaurants:  directory,
		Hours:        hoursSvc,
		Reservations: ledger,
		Queue:        walkIns,
		Hub:          hub,
	}, nil
}

type App struct {
	cfg       *config.Config
	parts     *Components
	scheduler *tasks.Scheduler
	server    *http.Server
	log       *slog.Logger
}

// New opens the store, migrates it and builds the HTTP server. Close releases the store.
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := storage.Open(cfg.Database, cfg.Redis, log)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return nil, err
	}

	parts, err := Build(cfg, store, time.Local, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	scheduler, err := tasks.NewScheduler(cfg.Tasks.QueuePurgeSchedule, parts.Queue, log.With(slog.String("component", "tasks")))
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}
	h := handlers.New(handlers.Services{
		Restaurants:  parts.Restaurants,
		Hours:        parts.Hours,
		Reservations: parts.Reservations,
		Queue:        parts.Queue,
		Store:        store,
		Location:     time.Local,
	}, log.With(slog.String("component", "http")))

	return &App{
		cfg:       cfg,
		parts:     parts,
		scheduler: scheduler,
		server: &http.Server{
			Addr:              ":" + cfg.Server.Port,
			Handler:           handlers.NewRouter(h, parts.Hub.ServeQueue, log),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}, nil
}

// Handler exposes the router, used by tests.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run serves HTTP, the websocket hub and the cron jobs until ctx is done,
// then shuts them down within the configured timeout.
func (a *App) Run(ctx context.Context) error {
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	go a.parts.Hub.Run(hubCtx)

	a.scheduler.Start()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case serveErr = <-errCh:
	case <-ctx.Done():
		a.log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	a.scheduler.Stop(shutdownCtx)
	stopHub()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if serveErr != nil {
		return fmt.Errorf("http server: %w", serveErr)
	}
	return nil
}

func (a *App) Close() error {
	return a.parts.Store.Close()
}
