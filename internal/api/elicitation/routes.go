package elicitation

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers elicitation routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/analyze", h.Analyze)
	r.Post("/generate", h.Generate)
	r.Post("/export", h.Export)
}
