package progress

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/auth"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
)

type Handler struct {
	service ProgressService
}

func NewHandler(s ProgressService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	courseID := chi.URLParam(r, "id")
	if courseID == "" {
		http.Error(w, "course id required", http.StatusBadRequest)
		return
	}

	p, err := h.service.CompleteLesson(r.Context(), claims.UserID, courseID)
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			http.Error(w, "course not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("failed to complete lesson")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, p)
}
