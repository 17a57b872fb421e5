// internal/app/features/campaigns/list.go
package campaigns

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	sysauth "github.com/unityvolunteers/unityhub/internal/app/system/auth"
	"github.com/unityvolunteers/unityhub/internal/app/system/httperr"
	"github.com/unityvolunteers/unityhub/internal/app/system/httpjson"
	"github.com/unityvolunteers/unityhub/internal/app/system/timeouts"
)

// ServeList handles GET /api/campaigns: the public, unfiltered directory.
// Each campaign carries its owner's name so the client never needs the
// full NGO record to render a card.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	campaigns, err := h.Campaigns.ListAll(ctx)
	if err != nil {
		h.Log.Error("campaign list failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}

	// Collect the distinct owner ids, then resolve names in one query.
	seen := make(map[primitive.ObjectID]struct{}, len(campaigns))
	ids := make([]primitive.ObjectID, 0, len(campaigns))
	for _, c := range campaigns {
		if _, ok := seen[c.NGOID]; !ok {
			seen[c.NGOID] = struct{}{}
			ids = append(ids, c.NGOID)
		}
	}
	names, err := h.NGOs.NamesByIDs(ctx, ids)
	if err != nil {
		h.Log.Error("ngo name lookup failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}

	items := make([]listItem, 0, len(campaigns))
	for _, c := range campaigns {
		items = append(items, listItem{Campaign: c, NGOName: names[c.NGOID]})
	}
	httpjson.Write(w, http.StatusOK, items)
}

// ServeMyCampaigns handles GET /api/campaigns/my-campaigns: the campaigns
// owned by the authenticated NGO, queried by the campaign's owner field.
func (h *Handler) ServeMyCampaigns(w http.ResponseWriter, r *http.Request) {
	subject, ok := sysauth.CurrentSubject(r)
	if !ok {
		httperr.Write(w, httperr.New(httperr.Unauthorized, "Not authorized"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	campaigns, err := h.Campaigns.ListByNGO(ctx, subject.ID)
	if err != nil {
		h.Log.Error("my-campaigns list failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, campaigns)
}
