// Package handlers implements the HTTP presentation boundary of the EDA
// assistant. The presentation layer always receives a well-formed Answer;
// the only core failure that reaches a handler is a classification
// failure, rendered here as a generic error notice.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/monjearse/eda-app/llm"
	"github.com/monjearse/eda-app/types"
)

// Response is the uniform API envelope.
type Response struct {
	Success   bool       `json:"success"`
	Data      any        `json:"data,omitempty"`
	Error     *ErrorInfo `json:"error,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
	RequestID string     `json:"request_id,omitempty"`
}

// ErrorInfo is the serialized error payload.
type ErrorInfo struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a success envelope.
func WriteSuccess(w http.ResponseWriter, requestID string, data any) {
	WriteJSON(w, http.StatusOK, Response{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
		RequestID: requestID,
	})
}

// WriteError writes an error envelope, mapping the error to an HTTP status.
func WriteError(w http.ResponseWriter, requestID string, err error, logger *zap.Logger) {
	status := http.StatusInternalServerError
	info := &ErrorInfo{Code: string(types.ErrInternalError), Message: err.Error()}

	var appErr *types.Error
	var llmErr *llm.Error
	switch {
	case errors.As(err, &appErr):
		info.Code = string(appErr.Code)
		info.Message = appErr.Message
		info.Retryable = appErr.Retryable
		status = mapCodeToStatus(appErr.Code)
		if appErr.HTTPStatus != 0 {
			status = appErr.HTTPStatus
		}
	case errors.As(err, &llmErr):
		info.Code = string(llmErr.Code)
		info.Message = llmErr.Message
		info.Retryable = llmErr.Retryable
		status = http.StatusBadGateway
	}

	if logger != nil {
		logger.Error("API error",
			zap.String("code", info.Code),
			zap.String("message", info.Message),
			zap.Int("status", status),
			zap.String("request_id", requestID))
	}

	WriteJSON(w, status, Response{
		Success:   false,
		Error:     info,
		Timestamp: time.Now(),
		RequestID: requestID,
	})
}

func mapCodeToStatus(code types.ErrorCode) int {
	switch code {
	case types.ErrInvalidRequest, types.ErrIngestFailed:
		return http.StatusBadRequest
	case types.ErrUnauthorized:
		return http.StatusUnauthorized
	case types.ErrForbidden:
		return http.StatusForbidden
	case types.ErrRateLimited:
		return http.StatusTooManyRequests
	case types.ErrQuotaExceeded:
		return http.StatusPaymentRequired
	case types.ErrClassificationFailed, types.ErrUpstreamError, types.ErrProviderUnavailable:
		return http.StatusBadGateway
	case types.ErrUpstreamTimeout:
		return http.StatusGatewayTimeout
	case types.ErrHistoryUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
