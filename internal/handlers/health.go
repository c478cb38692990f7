package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// HealthHandler serves the liveness and version probes.
type HealthHandler struct {
	version string
	logger  *zap.Logger
}

// NewHealthHandler creates the health handler.
func NewHealthHandler(version string, log *zap.Logger) *HealthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &HealthHandler{version: version, logger: log}
}

// RegisterRoutes registers the probe endpoints on the given router.
func (h *HealthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", h.Healthz).Methods("GET")
	router.HandleFunc("/version", h.Version).Methods("GET")
}

// Healthz handles GET /healthz.
func (h *HealthHandler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}

// Version handles GET /version.
func (h *HealthHandler) Version(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"version": h.version})
}
