package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autonomous-barman/internal/middleware"
	"autonomous-barman/pkg/log"
)

type stubBarHandler struct{}

func (stubBarHandler) Chat(c *gin.Context)            { panic("pump jammed") }
func (stubBarHandler) ListCocktails(c *gin.Context)   { c.Status(http.StatusOK) }
func (stubBarHandler) DispenserStatus(c *gin.Context) { c.Status(http.StatusOK) }

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "production",
		Middleware:  middleware.New(log.NewNop(), middleware.Config{}),
		BarHandler:  stubBarHandler{},
		Bar:         BarInfo{Resolver: "pattern", PortionMode: "tasting", Recipes: 10, Pumps: 7},
	})
	require.NoError(t, err)
	return srv
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "no mode", cfg: Config{Port: 8080, BarHandler: stubBarHandler{}}},
		{name: "no port", cfg: Config{Mode: gin.TestMode, BarHandler: stubBarHandler{}}},
		{name: "no bar handler", cfg: Config{Port: 8080, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(log.NewNop(), tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			require.Equal(t, http.StatusOK, w.Code)

			var body struct {
				Data map[string]any `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, ServiceName, body.Data["service"])
			assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
		})
	}
}

func TestHealth_DescribesTheBar(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Message string  `json:"message"`
			Bar     BarInfo `json:"bar"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, HealthMessage, body.Data.Message)
	assert.Equal(t, BarInfo{Resolver: "pattern", PortionMode: "tasting", Recipes: 10, Pumps: 7}, body.Data.Bar)
}

func TestReady_ClosedWithoutMenu(t *testing.T) {
	srv, err := New(log.NewNop(), Config{
		Port:       8080,
		Mode:       gin.TestMode,
		Middleware: middleware.New(log.NewNop(), middleware.Config{}),
		BarHandler: stubBarHandler{},
		Bar:        BarInfo{Resolver: "command", PortionMode: "full"},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), ServiceUnready)

	w = httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, w.Code, "liveness does not depend on the menu")
}

func TestDomainRoutes(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cocktails", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dispenser/status", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPanicIsRecovered(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/chat", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv, err := New(log.NewNop(), Config{
		Port:       18089,
		Mode:       gin.TestMode,
		Middleware: middleware.New(log.NewNop(), middleware.Config{}),
		BarHandler: stubBarHandler{},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}
