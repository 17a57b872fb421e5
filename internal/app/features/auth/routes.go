// internal/app/features/auth/routes.go
package auth

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the auth endpoints under the base path (typically
// "/api/auth" from bootstrap). All four are public by definition.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Volunteer signup/login
	r.Post("/signup", h.HandleVolunteerSignup)
	r.Post("/login", h.HandleVolunteerLogin)

	// NGO signup/login
	r.Post("/ngo/signup", h.HandleNGOSignup)
	r.Post("/ngo/login", h.HandleNGOLogin)

	return r
}
