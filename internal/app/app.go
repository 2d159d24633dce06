package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-mind/internal/config"
	"github.com/vancomm/minesweeper-mind/internal/metrics"
	"github.com/vancomm/minesweeper-mind/internal/middleware"
	"github.com/vancomm/minesweeper-mind/internal/store"
)

type App struct {
	logger   *slog.Logger
	router   *http.ServeMux
	registry *store.Registry
	metrics  *metrics.Metrics
	sessions *config.Sessions
	ws       *config.WebSocket
}

func New(logger *slog.Logger) (*App, error) {
	sessions, err := config.NewSessions()
	if err != nil {
		return nil, err
	}

	ws, err := config.NewWebSocket()
	if err != nil {
		return nil, err
	}

	app := &App{
		logger:   logger,
		router:   http.NewServeMux(),
		registry: store.New(sessions.MaxLive),
		metrics:  metrics.New(),
		sessions: sessions,
		ws:       ws,
	}

	app.loadRoutes()

	return app, nil
}

func (a *App) Handler() http.Handler {
	var h http.Handler = a.router
	if base := config.BasePath(); base != "" {
		h = http.StripPrefix(base, h)
	}
	return middleware.Wrap(
		h,
		middleware.Logging(a.logger),
		middleware.Cors(config.AllowedOrigins()),
	)
}

// evictIdle drops abandoned sessions until ctx is done.
func (a *App) evictIdle(ctx context.Context) error {
	ticker := time.NewTicker(max(a.sessions.MaxIdle/4, time.Second))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := a.registry.Evict(a.sessions.MaxIdle); n > 0 {
				a.logger.Info("evicted idle sessions", slog.Int("count", n))
				a.metrics.SessionsLive.Set(float64(a.registry.Len()))
			}
		}
	}
}

func (a *App) Start(ctx context.Context) error {
	addr := config.Addr()
	server := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})
	if a.sessions.MaxIdle > 0 {
		g.Go(func() error {
			return a.evictIdle(gCtx)
		})
	}

	a.logger.Info("server listening", slog.String("addr", addr))

	return g.Wait()
}
