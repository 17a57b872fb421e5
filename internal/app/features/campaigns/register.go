// internal/app/features/campaigns/register.go
package campaigns

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	campaignstore "github.com/unityvolunteers/unityhub/internal/app/store/campaigns"
	sysauth "github.com/unityvolunteers/unityhub/internal/app/system/auth"
	"github.com/unityvolunteers/unityhub/internal/app/system/httperr"
	"github.com/unityvolunteers/unityhub/internal/app/system/httpjson"
	"github.com/unityvolunteers/unityhub/internal/app/system/timeouts"
)

// HandleRegister handles POST /api/campaigns/{id}/register.
//
// Registering twice is rejected with a conflict, not silently deduplicated:
// the store's conditional update performs the membership check and the
// append as one step. The volunteer's back-reference is the second half of
// a non-transactional dual write; the campaign's registered set is
// authoritative.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	subject, ok := sysauth.CurrentSubject(r)
	if !ok {
		httperr.Write(w, httperr.New(httperr.Unauthorized, "Not authorized"))
		return
	}

	campaignID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, httperr.New(httperr.NotFound, "Campaign not found"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Campaigns.RegisterVolunteer(ctx, campaignID, subject.ID); err != nil {
		switch err {
		case mongo.ErrNoDocuments:
			httperr.Write(w, httperr.New(httperr.NotFound, "Campaign not found"))
		case campaignstore.ErrAlreadyRegistered:
			httperr.Write(w, httperr.New(httperr.Conflict, "You are already registered for this campaign"))
		default:
			h.Log.Error("campaign registration failed", zap.Error(err))
			httperr.Write(w, err)
		}
		return
	}

	if err := h.Volunteers.AppendCampaign(ctx, subject.ID, campaignID); err != nil {
		h.Log.Error("volunteer campaign-list append failed",
			zap.String("volunteer_id", subject.ID.Hex()),
			zap.String("campaign_id", campaignID.Hex()),
			zap.Error(err))
	}

	httpjson.Write(w, http.StatusOK, ack{Message: "Successfully registered for the campaign"})
}
