// internal/app/features/ngos/routes.go
package ngos

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/unityvolunteers/unityhub/internal/app/system/auth"
)

// Routes mounts all NGO routes under the base path (typically "/api/ngos"
// from bootstrap).
func Routes(h *Handler, tm *sysauth.TokenManager) chi.Router {
	r := chi.NewRouter()

	// Public: the NGO directory.
	r.Get("/", h.ServeList)

	// Self-profile routes
	r.Group(func(pr chi.Router) {
		pr.Use(tm.Require(sysauth.KindNGO))
		pr.Get("/me", h.ServeProfile)
		pr.Put("/me", h.HandleUpdateProfile)
	})

	return r
}
