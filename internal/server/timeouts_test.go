package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanizio/userform/internal/config"
)

func TestNew_AppliesConfig(t *testing.T) {
	cfg := config.Defaults().HTTP
	srv := New(cfg, http.NotFoundHandler())

	assert.Equal(t, cfg.ListenAddr, srv.Addr)
	assert.Equal(t, cfg.ReadTimeout, srv.ReadTimeout)
	assert.Equal(t, cfg.WriteTimeout, srv.WriteTimeout)
	assert.Equal(t, cfg.IdleTimeout, srv.IdleTimeout)
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := config.Defaults().HTTP
	cfg.ListenAddr = "127.0.0.1:0"
	srv := New(cfg, http.NotFoundHandler())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, srv) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
