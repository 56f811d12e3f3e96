package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/monjearse/eda-app/agents"
	"github.com/monjearse/eda-app/dataset"
	"github.com/monjearse/eda-app/history"
	"github.com/monjearse/eda-app/llm"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Orchestrator *agents.Orchestrator
	History      *history.Store
	Store        *dataset.Store
	Provider     llm.Provider
	Logger       *zap.Logger
}

// NewRouter wires all endpoints onto a ServeMux.
func NewRouter(d Deps) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/v1/questions", NewAskHandler(d.Orchestrator, d.History, d.Logger))
	mux.Handle("/v1/datasets", NewUploadHandler(d.Store, d.Orchestrator.Advisor(), d.Logger))
	mux.Handle("/v1/history", NewHistoryHandler(d.History, d.Logger))
	mux.Handle("/v1/users", NewUsersHandler(d.History, d.Logger))
	mux.Handle("/healthz", NewHealthHandler(d.Provider, d.Logger))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
