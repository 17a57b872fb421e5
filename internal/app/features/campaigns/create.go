// internal/app/features/campaigns/create.go
package campaigns

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	sysauth "github.com/unityvolunteers/unityhub/internal/app/system/auth"
	"github.com/unityvolunteers/unityhub/internal/app/system/htmlsanitize"
	"github.com/unityvolunteers/unityhub/internal/app/system/httperr"
	"github.com/unityvolunteers/unityhub/internal/app/system/httpjson"
	"github.com/unityvolunteers/unityhub/internal/app/system/normalize"
	"github.com/unityvolunteers/unityhub/internal/app/system/timeouts"
	"github.com/unityvolunteers/unityhub/internal/domain/models"
)

// HandleCreate handles POST /api/campaigns. All fields are required; the
// owner comes from the authenticated subject, never from the body.
//
// Two writes happen: the campaign insert, then the append onto the owner's
// denormalized campaign list. They are not transactional; if the append
// fails the campaign stands as valid (its owner field is authoritative and
// my-campaigns queries by it) and the failure is logged for repair.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	subject, ok := sysauth.CurrentSubject(r)
	if !ok {
		httperr.Write(w, httperr.New(httperr.Unauthorized, "Not authorized"))
		return
	}

	var req campaignRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	req.Title = normalize.Name(req.Title)
	req.Location = normalize.Name(req.Location)
	req.Description = normalize.Name(req.Description)
	req.FullDescription = normalize.Name(req.FullDescription)
	req.Category = normalize.Name(req.Category)
	req.TimeRequired = normalize.Name(req.TimeRequired)

	if req.Title == "" || req.Date == "" || req.Location == "" || req.Description == "" ||
		req.FullDescription == "" || req.Category == "" || req.TimeRequired == "" {
		httperr.Write(w, httperr.New(httperr.Validation, "Please fill in all required fields"))
		return
	}
	date, err := httpjson.ParseDate(req.Date)
	if err != nil {
		httperr.Write(w, httperr.New(httperr.Validation, "Please provide a valid date"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	campaign, err := h.Campaigns.Create(ctx, models.Campaign{
		Title:           req.Title,
		NGOID:           subject.ID,
		Date:            date,
		Location:        req.Location,
		Description:     req.Description,
		FullDescription: htmlsanitize.Sanitize(req.FullDescription),
		Category:        req.Category,
		TimeRequired:    req.TimeRequired,
	})
	if err != nil {
		h.Log.Error("campaign create failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}

	// Second half of the dual write. A failure here leaves an owned-but-
	// unlisted campaign; reads do not depend on the list, so log and move on.
	if err := h.NGOs.AppendCampaign(ctx, subject.ID, campaign.ID); err != nil {
		h.Log.Error("ngo campaign-list append failed",
			zap.String("ngo_id", subject.ID.Hex()),
			zap.String("campaign_id", campaign.ID.Hex()),
			zap.Error(err))
	}

	httpjson.Write(w, http.StatusCreated, campaign)
}
