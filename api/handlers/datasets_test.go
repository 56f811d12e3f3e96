package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/monjearse/eda-app/agents"
	"github.com/monjearse/eda-app/dataset"
	"github.com/monjearse/eda-app/testutil/mocks"
)

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("files", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func newUploadHandler(provider *mocks.MockProvider) (*UploadHandler, *dataset.Store) {
	store := dataset.NewStore()
	advisor := agents.NewAdvisor(provider, "test-model", zap.NewNop())
	return NewUploadHandler(store, advisor, zap.NewNop()), store
}

func TestUploadReplacesStoreAndSummarizes(t *testing.T) {
	provider := mocks.NewMockProvider().WithResponse("Dados carregados com sucesso.")
	h, store := newUploadHandler(provider)

	// Pre-existing data must be replaced wholesale, not merged.
	store.Replace(map[string]*dataset.Dataset{"antigo": {Name: "antigo"}})

	body, contentType := multipartUpload(t, "clientes.csv",
		[]byte("idade,cidade\n31,SP\n45,RJ\n"))
	req := httptest.NewRequest(http.MethodPost, "/v1/datasets", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"clientes"}, data["datasets"])
	assert.NotNil(t, data["dimensions"])
	assert.NotNil(t, data["summary"])

	assert.ElementsMatch(t, []string{"clientes"}, store.Names())

	snap := store.Snapshot()
	require.Contains(t, snap, "clientes")
	assert.Equal(t, 2, snap["clientes"].Rows)
}

func TestUploadRejectsEmptyForm(t *testing.T) {
	h, _ := newUploadHandler(mocks.NewMockProvider())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/datasets", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadRejectsNonMultipart(t *testing.T) {
	h, _ := newUploadHandler(mocks.NewMockProvider())

	req := httptest.NewRequest(http.MethodPost, "/v1/datasets",
		bytes.NewReader([]byte("idade\n31\n")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadMethodNotAllowed(t *testing.T) {
	h, _ := newUploadHandler(mocks.NewMockProvider())

	req := httptest.NewRequest(http.MethodGet, "/v1/datasets", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestUploadWithoutCSVContent(t *testing.T) {
	h, store := newUploadHandler(mocks.NewMockProvider())

	body, contentType := multipartUpload(t, "notas.txt", []byte("sem csv"))
	req := httptest.NewRequest(http.MethodPost, "/v1/datasets", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, store.Len())
}
