package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/feeling-quotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/feeling-quotes/internal/adapters/http/handlers"
	"github.com/jsamuelsen/feeling-quotes/internal/adapters/http/middleware"
	"github.com/jsamuelsen/feeling-quotes/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen/feeling-quotes/internal/app"
	"github.com/jsamuelsen/feeling-quotes/internal/domain"
	"github.com/jsamuelsen/feeling-quotes/internal/mocks"
	"github.com/jsamuelsen/feeling-quotes/internal/platform/config"
	"github.com/jsamuelsen/feeling-quotes/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testServerConfig(port int) *config.ServerConfig {
	return &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           port,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: 1 << 20,
	}
}

// newTestRouter wires the full middleware chain over a temp SQLite store
// and a static dir holding index.html.
func newTestRouter(t *testing.T, engine *gin.Engine) *gin.Engine {
	t.Helper()

	store, err := sqlite.Open(context.Background(), sqlite.Config{
		Path: filepath.Join(t.TempDir(), "quotes.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<h1>How are you feeling?</h1>"), 0o600))

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(store))

	svc := app.NewQuoteService(app.QuoteServiceConfig{
		Repository: store,
		Logger:     discardLogger(),
	})

	if engine == nil {
		engine = gin.New()
	}

	SetupRouter(engine, NewDefaultRouterConfig(
		discardLogger(),
		&config.AppConfig{Name: "feeling-quotes-test"},
		handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "abc123", "now"), prometheus.NewRegistry()),
		handlers.NewQuoteHandler(svc),
		handlers.NewStaticHandler(staticDir),
	))

	return engine
}

func request(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestServerNew(t *testing.T) {
	cfg := testServerConfig(8080)
	logger := discardLogger()

	srv := New(cfg, logger)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.Engine())
	assert.Equal(t, cfg, srv.Config())
	assert.Equal(t, "127.0.0.1:8080", srv.Addr())
	assert.Equal(t, cfg.ReadTimeout, srv.httpServer.ReadHeaderTimeout)
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		name string
		host string
		port int
		want string
	}{
		{name: "all interfaces on default port", host: "0.0.0.0", port: 3000, want: "0.0.0.0:3000"},
		{name: "localhost", host: "localhost", port: 8080, want: "localhost:8080"},
		{name: "ipv6 loopback", host: "::1", port: 3000, want: "[::1]:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testServerConfig(tt.port)
			cfg.Host = tt.host

			assert.Equal(t, tt.want, New(cfg, discardLogger()).Addr())
		})
	}
}

func TestServerStartShutdown(t *testing.T) {
	srv := New(testServerConfig(0), discardLogger())
	srv.Engine().GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	errCh, err := srv.Start()
	require.NoError(t, err)
	assert.NotEqual(t, "127.0.0.1:0", srv.Addr(), "bound address reports the real port")

	resp, err := http.Get("http://" + srv.Addr() + "/ping")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	_, ok := <-errCh
	assert.False(t, ok, "error channel should be closed")
}

func TestServerStart_AddressInUse(t *testing.T) {
	first := New(testServerConfig(0), discardLogger())
	_, err := first.Start()
	require.NoError(t, err)

	t.Cleanup(func() { _ = first.Shutdown(context.Background()) })

	_, port, err := net.SplitHostPort(first.Addr())
	require.NoError(t, err)

	portNum, err := strconv.Atoi(port)
	require.NoError(t, err)

	second := New(testServerConfig(portNum), discardLogger())
	_, err = second.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on")
}

func TestSetupRouter(t *testing.T) {
	router := newTestRouter(t, nil)

	t.Run("index page", func(t *testing.T) {
		w := request(router, http.MethodGet, "/", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "How are you feeling?")
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
		assert.Equal(t, w.Header().Get(middleware.HeaderRequestID), w.Header().Get(middleware.HeaderCorrelationID))
	})

	t.Run("empty store returns 404 for random", func(t *testing.T) {
		w := request(router, http.MethodGet, "/quotes/random", "")

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, handlers.MsgNoQuotes, resp.Error)
	})

	t.Run("add then fetch by feeling", func(t *testing.T) {
		w := request(router, http.MethodPost, "/quotes", `{"text":"Breathe.","feeling":"calm"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var added dto.AddQuoteResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
		assert.Positive(t, added.ID)
		assert.Equal(t, dto.MessageQuoteAdded, added.Message)

		w = request(router, http.MethodGet, "/quotes/by-feeling?feeling=calm", "")
		require.Equal(t, http.StatusOK, w.Code)

		var quote dto.QuoteResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
		assert.Equal(t, added.ID, quote.ID)
		assert.Equal(t, "Unknown", quote.Author)
	})

	t.Run("missing feeling parameter", func(t *testing.T) {
		w := request(router, http.MethodGet, "/quotes/by-feeling", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), handlers.MsgFeelingRequired)
	})

	t.Run("liveness probe", func(t *testing.T) {
		w := request(router, http.MethodGet, "/-/live", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("readiness checks sqlite", func(t *testing.T) {
		w := request(router, http.MethodGet, "/-/ready", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "sqlite")
	})

	t.Run("unknown path is a JSON 404", func(t *testing.T) {
		w := request(router, http.MethodGet, "/nope.css", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	})

	t.Run("unknown method is a JSON 404", func(t *testing.T) {
		w := request(router, http.MethodDelete, "/quotes/random", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSetupRouter_QuoteRoutesHaveDeadline(t *testing.T) {
	repo := mocks.NewMockQuoteRepository(t)
	repo.EXPECT().RandomQuote(mock.Anything).RunAndReturn(func(ctx context.Context) (*domain.Quote, error) {
		_, ok := ctx.Deadline()
		assert.True(t, ok, "quote requests carry a deadline")

		return &domain.Quote{ID: 1, Text: "Breathe.", Author: "Unknown", Feeling: "calm"}, nil
	})

	svc := app.NewQuoteService(app.QuoteServiceConfig{Repository: repo, Logger: discardLogger()})

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		Logger:       discardLogger(),
		QuoteHandler: handlers.NewQuoteHandler(svc),
		Timeout:      time.Second,
	})

	w := request(engine, http.MethodGet, "/quotes/random", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupRouterWithNilHandlers(t *testing.T) {
	engine := gin.New()

	assert.NotPanics(t, func() {
		SetupRouter(engine, RouterConfig{Logger: discardLogger()})
	})

	w := request(engine, http.MethodGet, "/quotes/random", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewDefaultRouterConfig(t *testing.T) {
	cfg := NewDefaultRouterConfig(discardLogger(), &config.AppConfig{Name: "x"}, nil, nil, nil)

	assert.Equal(t, DefaultRequestTimeout, cfg.Timeout)
	assert.Equal(t, "x", cfg.AppConfig.Name)
}

func TestMaxBodySizeMiddleware(t *testing.T) {
	cfg := testServerConfig(0)
	cfg.MaxRequestSize = 16

	srv := New(cfg, discardLogger())
	newTestRouter(t, srv.Engine())

	t.Run("body over limit", func(t *testing.T) {
		w := request(srv.Engine(), http.MethodPost, "/quotes", `{"text":"this body is far too long","feeling":"sad"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), handlers.MsgInvalidBody)
	})

	t.Run("body under limit", func(t *testing.T) {
		w := request(srv.Engine(), http.MethodPost, "/quotes", `{"feeling":"x"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), handlers.MsgTextFeelingRequired)
	})
}
