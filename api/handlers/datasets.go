package handlers

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/monjearse/eda-app/agents"
	"github.com/monjearse/eda-app/dataset"
	"github.com/monjearse/eda-app/types"
)

// maxUploadBytes caps one upload request.
const maxUploadBytes = 256 << 20

// UploadResponse reports what an upload loaded plus the automatic general
// summary produced right after, mirroring the original upload flow.
type UploadResponse struct {
	Datasets   []string    `json:"datasets"`
	Dimensions types.Block `json:"dimensions"`
	Summary    types.Block `json:"summary"`
}

// UploadHandler ingests CSV/ZIP uploads and atomically replaces the
// dataset store.
type UploadHandler struct {
	store   *dataset.Store
	advisor *agents.Advisor
	logger  *zap.Logger
}

// NewUploadHandler creates the dataset upload handler.
func NewUploadHandler(store *dataset.Store, advisor *agents.Advisor, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{store: store, advisor: advisor, logger: logger}
}

func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	if r.Method != http.MethodPost {
		WriteError(w, requestID,
			types.NewError(types.ErrInvalidRequest, "method not allowed").
				WithHTTPStatus(http.StatusMethodNotAllowed), h.logger)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteError(w, requestID,
			types.NewError(types.ErrIngestFailed, "invalid multipart upload").WithCause(err), h.logger)
		return
	}

	var files []dataset.File
	for _, headers := range r.MultipartForm.File {
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				WriteError(w, requestID,
					types.NewError(types.ErrIngestFailed,
						fmt.Sprintf("cannot open %q", fh.Filename)).WithCause(err), h.logger)
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				WriteError(w, requestID,
					types.NewError(types.ErrIngestFailed,
						fmt.Sprintf("cannot read %q", fh.Filename)).WithCause(err), h.logger)
				return
			}
			files = append(files, dataset.File{Name: fh.Filename, Data: data})
		}
	}
	if len(files) == 0 {
		WriteError(w, requestID,
			types.NewError(types.ErrIngestFailed, "no files in upload"), h.logger)
		return
	}

	datasets, err := dataset.ReadAny(files)
	if err != nil {
		WriteError(w, requestID, err, h.logger)
		return
	}
	if len(datasets) == 0 {
		WriteError(w, requestID,
			types.NewError(types.ErrIngestFailed, "upload contained no CSV data"), h.logger)
		return
	}

	// Point-in-time swap: in-flight analyses keep their snapshot.
	h.store.Replace(datasets)

	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	h.logger.Info("datasets replaced", zap.Strings("datasets", names))

	loaded := &types.Answer{
		Agent: "System",
		Result: []types.Block{types.NewTextBlock("Dados carregados",
			fmt.Sprintf("Dados carregados: %s", strings.Join(names, ", ")))},
	}

	WriteSuccess(w, requestID, UploadResponse{
		Datasets:   names,
		Dimensions: dimensionsBlock(datasets, names),
		Summary:    h.advisor.Summarize(r.Context(), loaded),
	})
}

// dimensionsBlock builds the quick per-dataset shape summary shown after
// an upload.
func dimensionsBlock(datasets map[string]*dataset.Dataset, names []string) types.Block {
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		d := datasets[name]
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", d.Rows),
			fmt.Sprintf("%d", len(d.Columns)),
			fmt.Sprintf("%d", len(d.NumericColumns())),
			fmt.Sprintf("%d", len(d.CategoricalColumns())),
		})
	}
	return types.NewTableBlock("Dimensões dos datasets", &types.Table{
		Columns: []string{"Dataset", "Linhas", "Colunas", "Variáveis Numéricas", "Variáveis Categóricas"},
		Rows:    rows,
	})
}
