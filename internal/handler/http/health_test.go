package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeKiZo0/NotesApp/models"
)

func TestHealth_AlwaysOK(t *testing.T) {
	h := newTestHandler(t, &mockNotesSvc{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "test", body.Version)
	assert.WithinDuration(t, time.Now().UTC(), body.Timestamp, time.Minute)
}

// TestHealth_OKWhileStoreDown verifies the liveness/readiness split: the
// liveness probe stays healthy while the readiness probe reports failure
// for the same unreachable store.
func TestHealth_OKWhileStoreDown(t *testing.T) {
	h := newTestHandler(t, &mockNotesSvc{})
	h.pinger = &mockPinger{err: errors.New("dial tcp: connection refused")}

	liveReq := httptest.NewRequest(http.MethodGet, "/health", nil)
	liveRec := httptest.NewRecorder()
	h.health(liveRec, liveReq)

	readyReq := httptest.NewRequest(http.MethodGet, "/health/db", nil)
	readyRec := httptest.NewRecorder()
	h.dbHealth(readyRec, readyReq)

	assert.Equal(t, http.StatusOK, liveRec.Code)
	assert.Equal(t, http.StatusInternalServerError, readyRec.Code)
}

func TestDBHealth_OK(t *testing.T) {
	h := newTestHandler(t, &mockNotesSvc{})

	req := httptest.NewRequest(http.MethodGet, "/health/db", nil)
	rec := httptest.NewRecorder()

	h.dbHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestDBHealth_ReportsError(t *testing.T) {
	h := newTestHandler(t, &mockNotesSvc{})
	h.pinger = &mockPinger{err: errors.New("dial tcp: connection refused")}

	req := httptest.NewRequest(http.MethodGet, "/health/db", nil)
	rec := httptest.NewRecorder()

	h.dbHealth(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body models.DBHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Contains(t, body.Error, "connection refused")
}
