package appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hospital-api/internal/middleware"
	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository/kvstore"
	"github.com/medicore/hospital-api/internal/service/resource"
)

const anonKey = "public-anon-key"

type staticValidator struct {
	token  string
	claims *model.TokenClaims
}

func (v *staticValidator) ValidateToken(_ context.Context, token string) (*model.TokenClaims, error) {
	if token == v.token {
		return v.claims, nil
	}
	return nil, kvstore.ErrNotFound
}

type recordingMailer struct {
	sent []model.Record
}

func (m *recordingMailer) SendBookingConfirmation(_ context.Context, appt model.Record) error {
	m.sent = append(m.sent, appt)
	return nil
}

func setupRouter(t *testing.T) (*gin.Engine, *recordingMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := resource.NewService(kvstore.NewMemoryStore(), resource.Appointments)
	mailer := &recordingMailer{}
	h := NewHandler(svc, mailer, zerolog.Nop())

	auth := middleware.NewAuthMiddleware(&staticValidator{
		token:  "admin-token",
		claims: &model.TokenClaims{UserID: "u1", Email: "admin@clinic.test"},
	}, anonKey)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"), auth.RequireAdmin())
	return r, mailer
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data"`
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Total   *int                   `json:"total"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestBookAppointmentPublic(t *testing.T) {
	r, mailer := setupRouter(t)

	booking := map[string]interface{}{
		"name":       "Jane Doe",
		"email":      "jane@example.com",
		"phone":      "555-0100",
		"department": "Cardiology",
		"doctor":     "Dr. Sarah Lee",
		"date":       "2026-09-01",
		"time":       "10:30",
	}

	w := doJSON(t, r, http.MethodPost, "/api/v1/appointments", anonKey, booking)
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Appointment booked successfully", resp.Message)
	assert.Equal(t, "Scheduled", resp.Data["status"])
	assert.Equal(t, "Jane Doe", resp.Data["name"])

	id, _ := resp.Data["id"].(string)
	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-z]{9}$`), id)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, id, mailer.sent[0].ID())

	// The same anonymous caller can fetch the receipt by id.
	w = doJSON(t, r, http.MethodGet, "/api/v1/appointments/"+id, anonKey, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Jane Doe", resp.Data["name"])
	assert.Equal(t, "Scheduled", resp.Data["status"])
}

func TestBookAppointmentKeepsExplicitStatus(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/appointments", anonKey, map[string]interface{}{
		"name":   "Mark Webb",
		"status": "Completed",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Completed", decode(t, w).Data["status"])
}

func TestListAppointmentsRequiresAdmin(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/appointments", anonKey, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Unauthorized - Admin login required", resp.Error)
}

func TestAdminListsAndUpdatesAppointments(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/appointments", anonKey, map[string]interface{}{
		"name":       "Jane Doe",
		"department": "Cardiology",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w).Data["id"].(string)

	w = doJSON(t, r, http.MethodGet, "/api/v1/appointments", "admin-token", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Success bool                     `json:"success"`
		Data    []map[string]interface{} `json:"data"`
		Total   *int                     `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.NotNil(t, list.Total)
	assert.Equal(t, 1, *list.Total)
	require.Len(t, list.Data, 1)

	w = doJSON(t, r, http.MethodPut, "/api/v1/appointments/"+id, "admin-token", map[string]interface{}{
		"status": "Cancelled",
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Cancelled", resp.Data["status"])
	assert.Equal(t, "Jane Doe", resp.Data["name"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/appointments/department/Cardiology", "admin-token", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestMalformedBookingBody(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+anonKey)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, decode(t, w).Success)
}
