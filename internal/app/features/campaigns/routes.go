// internal/app/features/campaigns/routes.go
package campaigns

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/unityvolunteers/unityhub/internal/app/system/auth"
)

// Routes mounts all Campaign routes under the base path (typically
// "/api/campaigns" from bootstrap).
func Routes(h *Handler, tm *sysauth.TokenManager) chi.Router {
	r := chi.NewRouter()

	// Public: the campaign directory.
	r.Get("/", h.ServeList)

	// Volunteer routes
	r.Group(func(pr chi.Router) {
		pr.Use(tm.Require(sysauth.KindVolunteer))
		pr.Post("/{id}/register", h.HandleRegister)
	})

	// NGO routes
	r.Group(func(pr chi.Router) {
		pr.Use(tm.Require(sysauth.KindNGO))
		pr.Get("/my-campaigns", h.ServeMyCampaigns)
		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
	})

	return r
}
