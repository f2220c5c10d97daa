package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/solar-calculator/internal/infra/config"
)

func TestCloserRunsHooksInReverseOnce(t *testing.T) {
	closer := NewCloser()
	var order []int
	closer.Add(func() { order = append(order, 1) })
	closer.Add(func() { order = append(order, 2) })

	closer.Close()
	closer.Close()
	require.Equal(t, []int{2, 1}, order)
}

func TestAppRunStopsOnCancel(t *testing.T) {
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: "127.0.0.1:0"}}
	server := &http.Server{Addr: cfg.HTTP.Address, Handler: http.NotFoundHandler()}
	closer := NewCloser()
	closed := make(chan struct{})
	closer.Add(func() { close(closed) })

	app := NewApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), server, closer)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
	<-closed
}
