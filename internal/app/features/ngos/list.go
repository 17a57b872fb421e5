// internal/app/features/ngos/list.go
package ngos

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/unityvolunteers/unityhub/internal/app/system/httperr"
	"github.com/unityvolunteers/unityhub/internal/app/system/httpjson"
	"github.com/unityvolunteers/unityhub/internal/app/system/timeouts"
	"github.com/unityvolunteers/unityhub/internal/domain/models"
)

// ServeList handles GET /api/ngos: the public directory, sorted by name,
// with each NGO's campaign list expanded into full campaign documents.
// All referenced campaigns are loaded in one query and joined in memory.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ngos, err := h.NGOs.List(ctx)
	if err != nil {
		h.Log.Error("ngo list failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}

	seen := make(map[primitive.ObjectID]struct{})
	ids := make([]primitive.ObjectID, 0)
	for _, n := range ngos {
		for _, id := range n.Campaigns {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	campaigns, err := h.Campaigns.GetByIDs(ctx, ids)
	if err != nil {
		h.Log.Error("campaign expansion failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}
	byID := make(map[primitive.ObjectID]models.Campaign, len(campaigns))
	for _, c := range campaigns {
		byID[c.ID] = c
	}

	views := make([]profileView, 0, len(ngos))
	for _, n := range ngos {
		views = append(views, expand(n, byID))
	}
	httpjson.Write(w, http.StatusOK, views)
}

// expand replaces an NGO's campaign id list with the matching documents.
// Ids with no matching campaign (a torn dual write or a deleted campaign)
// are dropped rather than surfaced as zero-valued records.
func expand(n models.NGO, byID map[primitive.ObjectID]models.Campaign) profileView {
	expanded := make([]models.Campaign, 0, len(n.Campaigns))
	for _, id := range n.Campaigns {
		if c, ok := byID[id]; ok {
			expanded = append(expanded, c)
		}
	}
	return profileView{NGO: n, Campaigns: expanded}
}
