package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	questions, err := h.service.Generate(r.Context(), req.Topic, req.Context)
	if err != nil {
		if errors.Is(err, ErrEmptyTopic) {
			http.Error(w, "topic is required", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("failed to generate quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, QuizResponse{Quiz: questions})
}
