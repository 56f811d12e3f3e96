package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/monjearse/eda-app/history"
)

func seededHistory(t *testing.T) *history.Store {
	t.Helper()
	hist, err := history.Open(":memory:", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, hist.Save("ana@local", "outliers?", "um outlier"))
	require.NoError(t, hist.Save("ana@local", "correlações?", "a e b"))
	require.NoError(t, hist.Save("bruno@local", "resumo?", "conclusões"))
	return hist
}

func TestHistoryListAll(t *testing.T) {
	h := NewHistoryHandler(seededHistory(t), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	records, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, records, 3)
}

func TestHistoryFilterByUser(t *testing.T) {
	h := NewHistoryHandler(seededHistory(t), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/v1/history?user=ana%40local", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	records := resp.Data.([]any)
	require.Len(t, records, 2)

	first := records[0].(map[string]any)
	// Newest first.
	assert.Equal(t, "correlações?", first["question"])
}

func TestHistoryLimit(t *testing.T) {
	h := NewHistoryHandler(seededHistory(t), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/v1/history?limit=1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Len(t, resp.Data.([]any), 1)
}

func TestHistoryRejectsBadDates(t *testing.T) {
	h := NewHistoryHandler(seededHistory(t), zap.NewNop())

	for _, query := range []string{"start=ontem", "end=2026-13-40", "limit=zero", "limit=-1"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/history?"+query, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestHistoryMethodNotAllowed(t *testing.T) {
	h := NewHistoryHandler(seededHistory(t), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/v1/history", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestUsersList(t *testing.T) {
	h := NewUsersHandler(seededHistory(t), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, []any{"ana@local", "bruno@local"}, resp.Data)
}
