package course

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
)

type Handler struct {
	service CourseService
}

func NewHandler(s CourseService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	c, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCourse) {
			http.Error(w, "title and description are required", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("failed to create course")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, c)
}

func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "course id required", http.StatusBadRequest)
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			http.Error(w, "course not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("failed to fetch course")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	courses, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to list courses")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, courses)
}

func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "course id required", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		log.WithError(err).Error("failed to delete course")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "course deleted"})
}
