package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/yanqian/solar-calculator/internal/infra/config"
)

const shutdownTimeout = 10 * time.Second

// Closer collects release hooks for connections opened while wiring the app.
type Closer struct {
	mu    sync.Mutex
	hooks []func()
}

// NewCloser is used by Wire to share one Closer between providers.
func NewCloser() *Closer {
	return &Closer{}
}

// Add registers fn to run on shutdown. Hooks run in reverse order.
func (c *Closer) Add(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, fn)
}

// Close runs every hook once.
func (c *Closer) Close() {
	c.mu.Lock()
	hooks := c.hooks
	c.hooks = nil
	c.mu.Unlock()
	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}
}

// App encapsulates the HTTP server lifecycle.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
	closer *Closer
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, closer *Closer) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server, closer: closer}
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	defer a.closer.Close()
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutdown signal received")
		return a.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
