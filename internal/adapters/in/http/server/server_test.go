package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uptimecal/internal/adapters/in/http/render"
	"github.com/bnema/uptimecal/internal/testutils"
)

func TestNew_MiddlewareStack(t *testing.T) {
	e := New(render.NewHandler(nil, nil, render.Defaults{}), 0, zerolog.New(io.Discard))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestNew_UnknownRoute(t *testing.T) {
	e := New(render.NewHandler(nil, nil, render.Defaults{}), 0, zerolog.New(io.Discard))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	e := New(render.NewHandler(nil, nil, render.Defaults{}), 0, zerolog.New(io.Discard))
	ctx, cancel := context.WithCancel(testutils.TestContext(t))

	done := make(chan error, 1)
	go func() { done <- Run(ctx, e, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ListenError(t *testing.T) {
	e := New(render.NewHandler(nil, nil, render.Defaults{}), 0, zerolog.New(io.Discard))

	err := Run(testutils.TestContext(t), e, "256.0.0.1:99999")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "server failed")
}
