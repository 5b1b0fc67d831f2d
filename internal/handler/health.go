package handler

import (
	"net/http"
)

// HealthStatus is the fixed status string reported by /health.
const HealthStatus = "API running"

type healthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}

// Health reports the service as running along with the configured model.
// It never contacts the inference endpoint.
func Health(model string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		writeJSON(w, http.StatusOK, healthResponse{
			Status: HealthStatus,
			Model:  model,
		})
	}
}
