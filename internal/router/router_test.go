package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hospital-api/internal/config"
	"github.com/medicore/hospital-api/internal/email"
	appointmenthandler "github.com/medicore/hospital-api/internal/handler/appointment"
	authhandler "github.com/medicore/hospital-api/internal/handler/auth"
	doctorhandler "github.com/medicore/hospital-api/internal/handler/doctor"
	"github.com/medicore/hospital-api/internal/middleware"
	"github.com/medicore/hospital-api/internal/repository/kvstore"
	"github.com/medicore/hospital-api/internal/repository/session"
	authsvc "github.com/medicore/hospital-api/internal/service/auth"
	"github.com/medicore/hospital-api/internal/service/resource"
)

func newTestRouter(t *testing.T, rateLimit config.RateLimitConfig) *Router {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 0, BasePath: "/api/v1"},
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			TokenTTLHours: 1,
			AnonKey:       "public-anon-key",
		},
		RateLimit: rateLimit,
	}

	store := kvstore.NewMemoryStore()
	auth := authsvc.NewService(store, session.NewMemoryStore(), cfg.Auth)
	mailer := email.NewService(config.SMTPConfig{})

	authGate := middleware.NewAuthMiddleware(auth, cfg.Auth.AnonKey)

	r := New(
		cfg,
		zerolog.Nop(),
		authGate,
		authhandler.NewHandler(auth, cfg.Auth.AnonKey, authGate),
		appointmenthandler.NewHandler(resource.NewService(store, resource.Appointments), mailer, zerolog.Nop()),
		doctorhandler.NewHandler(resource.NewService(store, resource.Doctors)),
	)
	r.Setup()
	return r
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t, config.RateLimitConfig{RPS: 100, Burst: 200})

	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"timestamp"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, config.RateLimitConfig{RPS: 100, Burst: 200})

	// Generate one request so counters have samples.
	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hospital_api_requests_total")
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t, config.RateLimitConfig{RPS: 100, Burst: 200})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/doctors", nil)
	req.Header.Set("Origin", "https://medicore.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRateLimitExceeded(t *testing.T) {
	r := newTestRouter(t, config.RateLimitConfig{RPS: 1, Burst: 2})

	var last int
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
		last = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestLogoutRevokesAdminAccess(t *testing.T) {
	r := newTestRouter(t, config.RateLimitConfig{RPS: 100, Burst: 200})

	serve := func(method, path, token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.Engine().ServeHTTP(w, req)
		return w
	}

	w := serve(http.MethodPost, "/api/v1/auth/signup", "",
		`{"email":"admin@clinic.test","password":"s3cret-pass","name":"Clinic Admin"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = serve(http.MethodPost, "/api/v1/auth/login", "",
		`{"email":"admin@clinic.test","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Data struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	token := login.Data.AccessToken
	require.NotEmpty(t, token)

	// Warm the verdict cache with a successful admin call.
	w = serve(http.MethodPost, "/api/v1/doctors", token, `{"name":"Dr. Sarah Lee"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = serve(http.MethodPost, "/api/v1/auth/logout", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	// Revocation takes effect immediately, cached verdict or not.
	w = serve(http.MethodPost, "/api/v1/doctors", token, `{"name":"Dr. X"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized - Invalid token")
}

func TestBookingFlowThroughRouter(t *testing.T) {
	r := newTestRouter(t, config.RateLimitConfig{RPS: 100, Burst: 200})

	body := strings.NewReader(`{"name":"Jane Doe","department":"Cardiology","date":"2026-09-01","time":"10:30"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer public-anon-key")
	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Appointment booked successfully")
	assert.Contains(t, w.Body.String(), `"status":"Scheduled"`)
}
