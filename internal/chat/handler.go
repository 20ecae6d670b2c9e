package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/auth"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/provider"
)

type Handler struct {
	service ChatService
}

func NewHandler(s ChatService) *Handler {
	return &Handler{service: s}
}

type chatRequest struct {
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	reply, err := h.service.Respond(r.Context(), claims.UserID, req.Message, req.Context)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			http.Error(w, "message is required", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("chat turn failed")
		if errors.Is(err, provider.ErrNoProvidersConfigured) || errors.Is(err, provider.ErrAllProvidersExhausted) {
			http.Error(w, "AI service unavailable", http.StatusInternalServerError)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	messages, err := h.service.History(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("failed to fetch chat history")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, messages)
}

func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.service.Clear(r.Context(), claims.UserID); err != nil {
		log.WithError(err).Error("failed to clear chat history")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "chat history cleared"})
}
