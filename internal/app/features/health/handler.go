package health

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	API *remote.Client
	Log *zap.Logger
}

func NewHandler(api *remote.Client, logger *zap.Logger) *Handler {
	return &Handler{API: api, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	API     string `json:"api"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and {"status":"ok","api":"reachable"}.
// When the fest API is down: 503 with the error string.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	if err := h.API.Ping(ctx); err != nil {
		h.Log.Warn("health check failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(healthResponse{
			Status:  "error",
			API:     "unreachable",
			Message: "Events service unavailable",
			Error:   err.Error(),
		})
		return
	}

	json.NewEncoder(w).Encode(healthResponse{Status: "ok", API: "reachable"})
}
