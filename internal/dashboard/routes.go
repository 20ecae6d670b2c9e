package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/auth"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/user"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/student", h.Student)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(user.RoleAdmin))
		r.Get("/admin", h.Admin)
	})

	return r
}
