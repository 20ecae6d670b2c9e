package chat

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/chat", h.Chat)
	r.Get("/chat-history", h.GetHistory)
	r.Delete("/chat-history", h.ClearHistory)
	return r
}
