package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/monjearse/eda-app/agents"
	"github.com/monjearse/eda-app/types"
)

// AskRequest is the question payload.
type AskRequest struct {
	Question string `json:"question"`
	User     string `json:"user,omitempty"`
}

// HistoryWriter is the slice of the history store the ask flow needs.
type HistoryWriter interface {
	Save(user, question, answer string) error
}

// AskHandler answers questions through the orchestrator and persists the
// Q/A pair. Persistence happens caller-side: the orchestrator itself never
// writes history.
type AskHandler struct {
	orch    *agents.Orchestrator
	history HistoryWriter
	logger  *zap.Logger
}

// NewAskHandler creates the question endpoint handler.
func NewAskHandler(orch *agents.Orchestrator, history HistoryWriter, logger *zap.Logger) *AskHandler {
	return &AskHandler{orch: orch, history: history, logger: logger}
}

func (h *AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	if r.Method != http.MethodPost {
		WriteError(w, requestID,
			types.NewError(types.ErrInvalidRequest, "method not allowed").
				WithHTTPStatus(http.StatusMethodNotAllowed), h.logger)
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, requestID,
			types.NewError(types.ErrInvalidRequest, "invalid request body").WithCause(err), h.logger)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		WriteError(w, requestID,
			types.NewError(types.ErrInvalidRequest, "question must not be empty"), h.logger)
		return
	}
	user := req.User
	if user == "" {
		user = agents.DefaultUser
	}

	answer, err := h.orch.Answer(r.Context(), req.Question, user)
	if err != nil {
		WriteError(w, requestID, err, h.logger)
		return
	}

	if h.history != nil {
		if err := h.history.Save(user, req.Question, answer.String()); err != nil {
			h.logger.Warn("failed to persist answer",
				zap.String("user", user), zap.Error(err))
		}
	}

	WriteSuccess(w, requestID, answer)
}
