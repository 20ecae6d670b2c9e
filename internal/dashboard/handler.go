package dashboard

import (
	"net/http"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/auth"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
)

type Handler struct {
	service DashboardService
}

func NewHandler(s DashboardService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Student(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	dash, err := h.service.StudentDashboard(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("failed to build student dashboard")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, dash)
}

func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	dash, err := h.service.AdminDashboard(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to build admin dashboard")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, dash)
}
