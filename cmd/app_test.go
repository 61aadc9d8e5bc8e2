package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/studyaid/config"
	"github.com/lshigami/studyaid/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewGinEngine_RequestID(t *testing.T) {
	r := NewGinEngine(&config.Config{Server: config.Server{GinMode: gin.TestMode}})
	r.GET("/ping", func(c *gin.Context) {
		id, _ := c.Get("request_id")
		c.String(http.StatusOK, id.(string))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	generated := w.Header().Get(requestIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRootCmd_HasCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "migrate"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

type closingProvider struct {
	*llm.MockProvider
	closed bool
}

func (p *closingProvider) Close() error {
	p.closed = true
	return nil
}

func TestCloseProviderOnStop(t *testing.T) {
	inner := &closingProvider{MockProvider: llm.NewMockProvider()}
	lc := fxtest.NewLifecycle(t)
	CloseProviderOnStop(lc, llm.WithLogging(inner))

	lc.RequireStart()
	assert.False(t, inner.closed)
	lc.RequireStop()
	assert.True(t, inner.closed)

	// Providers without a client to release register no hook.
	lc = fxtest.NewLifecycle(t)
	CloseProviderOnStop(lc, llm.NewMockProvider())
	require.NoError(t, lc.Start(context.Background()))
	require.NoError(t, lc.Stop(context.Background()))
}
