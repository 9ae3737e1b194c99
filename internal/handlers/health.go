package handlers

import (
	"net/http"
	"time"
)

// HealthData is the payload of the health endpoint.
// swagger:model HealthData
type HealthData struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthHandler returns an HTTP handler for the liveness probe.
// @Summary Health check
// @Description Reports that the process is up. No dependencies are probed.
// @Tags health
// @Produce json
// @Success 200 {object} handlers.Response "Service is healthy"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, "", HealthData{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
