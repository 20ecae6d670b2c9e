package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/aiquiz"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/auth"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/chat"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/course"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/dashboard"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/document"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/middlewares"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/progress"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/quiz"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	CourseHandler    *course.Handler
	ProgressHandler  *progress.Handler
	DashboardHandler *dashboard.Handler
	ChatHandler      *chat.Handler
	AIQuizHandler    *aiquiz.Handler
	QuizHandler      *quiz.Handler
	DocumentHandler  *document.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
			config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.UserHandler.Register)
			r.Post("/verify-otp", cfg.UserHandler.VerifyOTP)
			r.Post("/login", cfg.UserHandler.Login)
			r.Post("/logout", auth.NewHandler().Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Put("/auth/profile", cfg.UserHandler.UpdateProfile)

			r.Mount("/users", user.Routes(cfg.UserHandler))
			r.Mount("/courses", course.Routes(cfg.CourseHandler))
			r.Mount("/dashboard", dashboard.Routes(cfg.DashboardHandler))
			r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))

			r.Post("/courses/{id}/lessons/complete", cfg.ProgressHandler.CompleteLesson)

			r.Route("/ai", func(r chi.Router) {
				r.Post("/upload", cfg.DocumentHandler.Upload)
				r.Mount("/quiz", aiquiz.Routes(cfg.AIQuizHandler))
				r.Mount("/", chat.Routes(cfg.ChatHandler))
			})
		})
	})

	return r
}
