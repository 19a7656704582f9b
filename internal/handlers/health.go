// internal/handlers/health.go
package handlers

import (
	"net/http"

	"donation-backend/internal/models"
	"donation-backend/pkg/utils"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness answers the root route with a plain-text heartbeat.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Donation server is up and running"))
}

func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := models.HealthResponse{
		Status:  "healthy",
		Message: "Server is running and connected to MongoDB",
	}
	utils.SendJSONResponse(w, r, http.StatusOK, response)
}
