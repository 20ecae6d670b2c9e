package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/auth"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/user"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListCourses)
	r.Get("/{id}", h.GetCourse)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(user.RoleAdmin))
		r.Post("/", h.CreateCourse)
		r.Delete("/{id}", h.DeleteCourse)
	})

	return r
}
