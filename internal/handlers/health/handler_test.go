package health_test

import (
	"encoding/json"
	"fitbook/internal/handlers/health"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probe bool

func (p probe) Ready() bool { return bool(p) }

func serve(t *testing.T, ready bool) *httptest.ResponseRecorder {
	t.Helper()

	handler := health.New(probe(ready))
	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	return rec
}

func TestHandler_Check(t *testing.T) {
	rec := serve(t, true)

	require.Equal(t, http.StatusOK, rec.Code)

	var body health.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "healthy", body.Status)
	assert.NotEmpty(t, body.Message)

	_, err := time.Parse(time.RFC3339Nano, body.Timestamp)
	assert.NoError(t, err)
}

func TestHandler_CheckDuringShutdown(t *testing.T) {
	rec := serve(t, false)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SHUT DOWN")
}
