package http

import (
	"net/http"
	"time"

	"github.com/ddanshin/staffdir/internal/utils"
	"github.com/ddanshin/staffdir/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}
