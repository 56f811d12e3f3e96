package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/monjearse/eda-app/history"
	"github.com/monjearse/eda-app/types"
)

// HistoryHandler serves the filtered Q/A history.
type HistoryHandler struct {
	store  *history.Store
	logger *zap.Logger
}

// NewHistoryHandler creates the history query handler.
func NewHistoryHandler(store *history.Store, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{store: store, logger: logger}
}

// ServeHTTP handles GET /v1/history?user=&start=&end=&limit=. Dates are
// "2006-01-02" and inclusive at day granularity.
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	if r.Method != http.MethodGet {
		WriteError(w, requestID,
			types.NewError(types.ErrInvalidRequest, "method not allowed").
				WithHTTPStatus(http.StatusMethodNotAllowed), h.logger)
		return
	}

	q := r.URL.Query()
	filter := history.Filter{User: q.Get("user")}

	if raw := q.Get("start"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			WriteError(w, requestID,
				types.NewError(types.ErrInvalidRequest, "start must be YYYY-MM-DD"), h.logger)
			return
		}
		filter.Start = &t
	}
	if raw := q.Get("end"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			WriteError(w, requestID,
				types.NewError(types.ErrInvalidRequest, "end must be YYYY-MM-DD"), h.logger)
			return
		}
		filter.End = &t
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			WriteError(w, requestID,
				types.NewError(types.ErrInvalidRequest, "limit must be a positive integer"), h.logger)
			return
		}
		filter.Limit = n
	}

	records, err := h.store.Filtered(filter)
	if err != nil {
		WriteError(w, requestID, err, h.logger)
		return
	}
	WriteSuccess(w, requestID, records)
}

// UsersHandler lists the distinct users present in the history.
type UsersHandler struct {
	store  *history.Store
	logger *zap.Logger
}

// NewUsersHandler creates the user listing handler.
func NewUsersHandler(store *history.Store, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{store: store, logger: logger}
}

func (h *UsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	if r.Method != http.MethodGet {
		WriteError(w, requestID,
			types.NewError(types.ErrInvalidRequest, "method not allowed").
				WithHTTPStatus(http.StatusMethodNotAllowed), h.logger)
		return
	}

	users, err := h.store.Users()
	if err != nil {
		WriteError(w, requestID, err, h.logger)
		return
	}
	WriteSuccess(w, requestID, users)
}
