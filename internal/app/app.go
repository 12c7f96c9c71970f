package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/roamly/trip-go/internal/config"
	"github.com/roamly/trip-go/internal/repository/memory"
	"github.com/roamly/trip-go/internal/service"
	"github.com/roamly/trip-go/internal/service/identity"
	httpgin "github.com/roamly/trip-go/internal/transport/http/gin"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Seed the catalog
	offerings, err := memory.LoadOfferings(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog seed: %w", err)
	}

	// Initialize the in-memory store
	store, err := memory.NewStore(offerings)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	logger.Info("catalog seeded", "offerings", store.Catalog().Len())

	// Initialize services
	services := service.NewServices(store, service.Config{
		Identity: identity.Config{
			Secret:   cfg.Auth.Secret,
			TokenTTL: cfg.Auth.TokenTTL,
		},
	})

	// Initialize Gin router
	router := httpgin.NewRouter(services, logger)

	return &App{
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler: router,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}
