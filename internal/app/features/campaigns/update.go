// internal/app/features/campaigns/update.go
package campaigns

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	sysauth "github.com/unityvolunteers/unityhub/internal/app/system/auth"
	"github.com/unityvolunteers/unityhub/internal/app/system/htmlsanitize"
	"github.com/unityvolunteers/unityhub/internal/app/system/httperr"
	"github.com/unityvolunteers/unityhub/internal/app/system/httpjson"
	"github.com/unityvolunteers/unityhub/internal/app/system/normalize"
	"github.com/unityvolunteers/unityhub/internal/app/system/timeouts"
	"github.com/unityvolunteers/unityhub/internal/domain/models"
)

// HandleUpdate handles PUT /api/campaigns/{id}.
//
// Only the owning NGO may update, and only the fields present in the
// request are overwritten — absent or empty fields keep their prior
// values, so this path cannot clear a field to empty. The owner reference
// and the registered set are never writable.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	subject, ok := sysauth.CurrentSubject(r)
	if !ok {
		httperr.Write(w, httperr.New(httperr.Unauthorized, "Not authorized"))
		return
	}

	// A malformed id cannot name any campaign: same answer as unknown.
	campaignID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, httperr.New(httperr.NotFound, "Campaign not found"))
		return
	}

	var req campaignRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.Campaigns.GetByID(ctx, campaignID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httperr.Write(w, httperr.New(httperr.NotFound, "Campaign not found"))
			return
		}
		h.Log.Error("campaign fetch failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}
	if existing.NGOID != subject.ID {
		httperr.Write(w, httperr.New(httperr.Forbidden, "Not authorized to modify this campaign"))
		return
	}

	var date = existing.Date
	if req.Date != "" {
		if date, err = httpjson.ParseDate(req.Date); err != nil {
			httperr.Write(w, httperr.New(httperr.Validation, "Please provide a valid date"))
			return
		}
	}

	updated, err := h.Campaigns.Update(ctx, campaignID, models.Campaign{
		Title:           normalize.Name(req.Title),
		Date:            date,
		Location:        normalize.Name(req.Location),
		Description:     normalize.Name(req.Description),
		FullDescription: htmlsanitize.Sanitize(normalize.Name(req.FullDescription)),
		Category:        normalize.Name(req.Category),
		TimeRequired:    normalize.Name(req.TimeRequired),
	})
	if err != nil {
		h.Log.Error("campaign update failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, updated)
}
