package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/monjearse/eda-app/agents"
	"github.com/monjearse/eda-app/dataset"
	"github.com/monjearse/eda-app/history"
	"github.com/monjearse/eda-app/testutil/mocks"
	"github.com/monjearse/eda-app/types"
)

func testStore() *dataset.Store {
	store := dataset.NewStore()
	store.Replace(map[string]*dataset.Dataset{
		"clientes": {
			Name: "clientes",
			Rows: 6,
			Columns: []dataset.Column{
				{Name: "idade", Kind: dataset.Numeric, Floats: []float64{1, 2, 3, 4, 5, 100}},
			},
		},
	})
	return store
}

func newAskHandler(t *testing.T, provider *mocks.MockProvider) (*AskHandler, *history.Store) {
	t.Helper()
	hist, err := history.Open(":memory:", zap.NewNop())
	require.NoError(t, err)
	orch := agents.NewOrchestrator(agents.Config{
		Provider: provider,
		Model:    "test-model",
		Store:    testStore(),
		History:  hist,
	}, zap.NewNop())
	return NewAskHandler(orch, hist, zap.NewNop()), hist
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestAskHappyPath(t *testing.T) {
	provider := mocks.NewMockProvider().
		WithResponses("anomaly", "ok", "idade concentra os outliers")
	h, hist := newAskHandler(t, provider)

	req := httptest.NewRequest(http.MethodPost, "/v1/questions",
		strings.NewReader(`{"question":"Quantos outliers existem em idade?","user":"ana@local"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.RequestID)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, types.AgentAnomaly, data["agent"])

	// The Q/A pair was persisted for the advisor flow.
	records, err := hist.Recent("ana@local", 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Quantos outliers existem em idade?", records[0].Question)
	assert.Contains(t, records[0].Answer, types.AgentAnomaly)
}

func TestAskDefaultsUser(t *testing.T) {
	provider := mocks.NewMockProvider().WithResponses("anomaly", "ok", "narrativa")
	h, hist := newAskHandler(t, provider)

	req := httptest.NewRequest(http.MethodPost, "/v1/questions",
		strings.NewReader(`{"question":"outliers?"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	records, err := hist.Recent(agents.DefaultUser, 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	h, _ := newAskHandler(t, mocks.NewMockProvider())

	req := httptest.NewRequest(http.MethodPost, "/v1/questions",
		strings.NewReader(`{"question":"   "}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, string(types.ErrInvalidRequest), resp.Error.Code)
}

func TestAskRejectsInvalidBody(t *testing.T) {
	h, _ := newAskHandler(t, mocks.NewMockProvider())

	req := httptest.NewRequest(http.MethodPost, "/v1/questions", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskMethodNotAllowed(t *testing.T) {
	h, _ := newAskHandler(t, mocks.NewMockProvider())

	req := httptest.NewRequest(http.MethodGet, "/v1/questions", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAskClassificationFailure(t *testing.T) {
	provider := mocks.NewMockProvider().WithError(errors.New("rate limited"))
	h, hist := newAskHandler(t, provider)

	req := httptest.NewRequest(http.MethodPost, "/v1/questions",
		strings.NewReader(`{"question":"outliers?"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, string(types.ErrClassificationFailed), resp.Error.Code)

	// Failed questions are not persisted.
	records, err := hist.Recent(agents.DefaultUser, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
