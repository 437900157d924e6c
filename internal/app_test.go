package internal

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"presence/internal/controllers"
	"presence/internal/providers"
	"presence/internal/structures"
	"presence/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appTestScheduler struct{}

func (s *appTestScheduler) Init()                              {}
func (s *appTestScheduler) Stop()                              {}
func (s *appTestScheduler) RefreshNow(_ context.Context) error { return nil }
func (s *appTestScheduler) LastRefresh() time.Time             { return time.Time{} }
func (s *appTestScheduler) LastError() string                  { return "" }

func newTestHandler(t *testing.T, conf *structures.Config) http.Handler {
	t.Helper()
	ac := controllers.NewApiController(&routeTestLogger{}, &routeTestMockService{}, &routeTestCache{})
	pc, err := controllers.NewPageController(&routeTestLogger{})
	require.NoError(t, err)
	hc := controllers.NewHealthController(&routeTestMockService{}, &appTestScheduler{})

	return NewHandler(hc, conf, InitRoutes(ac, pc), providers.NewMetricsProvider(&structures.Config{}))
}

func TestNewHandler_Health(t *testing.T) {
	h := newTestHandler(t, &structures.Config{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)
}

func TestNewHandler_MetricsDisabled(t *testing.T) {
	h := newTestHandler(t, &structures.Config{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	// falls through to the dashboard catch-all
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNewHandler_MetricsEnabled(t *testing.T) {
	h := newTestHandler(t, &structures.Config{Metrics: structures.MetricsConfig{Enabled: true}})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNewHandler_API(t *testing.T) {
	h := newTestHandler(t, &structures.Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/presence_weekday/10", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestNewApp_ClosesLoggerWhenServerFails(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	conf := &structures.Config{
		AppName:   "PresenceAnalyzer",
		WebServer: structures.Server{Host: "127.0.0.1", Port: busy.Addr().(*net.TCPAddr).Port},
	}
	logger := &testutil.MockLogger{}
	ac := controllers.NewApiController(logger, &routeTestMockService{}, &routeTestCache{})
	pc, err := controllers.NewPageController(logger)
	require.NoError(t, err)
	hc := controllers.NewHealthController(&routeTestMockService{}, &appTestScheduler{})

	app, err := NewApp(hc, &routeTestMockService{}, &appTestScheduler{}, conf, logger, InitRoutes(ac, pc), providers.NewMetricsProvider(conf))

	assert.Nil(t, app)
	assert.ErrorContains(t, err, "server error")
	assert.True(t, logger.Closed())
	assert.True(t, logger.Has("error"))
}
