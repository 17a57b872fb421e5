// internal/app/features/ngos/profile.go
package ngos

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	ngostore "github.com/unityvolunteers/unityhub/internal/app/store/ngos"
	sysauth "github.com/unityvolunteers/unityhub/internal/app/system/auth"
	"github.com/unityvolunteers/unityhub/internal/app/system/htmlsanitize"
	"github.com/unityvolunteers/unityhub/internal/app/system/httperr"
	"github.com/unityvolunteers/unityhub/internal/app/system/httpjson"
	"github.com/unityvolunteers/unityhub/internal/app/system/normalize"
	"github.com/unityvolunteers/unityhub/internal/app/system/timeouts"
	"github.com/unityvolunteers/unityhub/internal/domain/models"
)

// ServeProfile handles GET /api/ngos/me: the authenticated NGO's own
// record with its campaigns expanded. A token whose subject no longer
// resolves to a stored NGO gets a not-found, not a server error.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	subject, ok := sysauth.CurrentSubject(r)
	if !ok {
		httperr.Write(w, httperr.New(httperr.Unauthorized, "Not authorized"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ngo, err := h.NGOs.GetByID(ctx, subject.ID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httperr.Write(w, httperr.New(httperr.NotFound, "NGO not found"))
			return
		}
		h.Log.Error("ngo profile fetch failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}

	view, err := h.expandOne(ctx, ngo)
	if err != nil {
		h.Log.Error("campaign expansion failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, view)
}

// HandleUpdateProfile handles PUT /api/ngos/me. Only the fields present
// in the request are overwritten; absent or empty fields keep their
// prior values. Email, password, and the campaign list are not editable
// through this endpoint.
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	subject, ok := sysauth.CurrentSubject(r)
	if !ok {
		httperr.Write(w, httperr.New(httperr.Unauthorized, "Not authorized"))
		return
	}

	var req profileUpdateRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.NGOs.UpdateProfile(ctx, subject.ID, models.NGO{
		Name:         normalize.Name(req.Name),
		Logo:         normalize.Name(req.Logo),
		ShortInfo:    normalize.Name(req.ShortInfo),
		Founded:      normalize.Name(req.Founded),
		Founder:      normalize.Name(req.Founder),
		Aim:          htmlsanitize.Sanitize(normalize.Name(req.Aim)),
		Location:     normalize.Name(req.Location),
		Website:      normalize.Name(req.Website),
		Achievements: normalize.List(req.Achievements),
		Categories:   normalize.List(req.Categories),
	})
	if err != nil {
		switch err {
		case ngostore.ErrDuplicateName:
			httperr.Write(w, httperr.New(httperr.Conflict, "NGO with this name already exists"))
		case mongo.ErrNoDocuments:
			httperr.Write(w, httperr.New(httperr.NotFound, "NGO not found"))
		default:
			h.Log.Error("ngo profile update failed", zap.Error(err))
			httperr.Write(w, err)
		}
		return
	}

	view, err := h.expandOne(ctx, updated)
	if err != nil {
		h.Log.Error("campaign expansion failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, view)
}

func (h *Handler) expandOne(ctx context.Context, ngo models.NGO) (profileView, error) {
	campaigns, err := h.Campaigns.GetByIDs(ctx, ngo.Campaigns)
	if err != nil {
		return profileView{}, err
	}
	byID := make(map[primitive.ObjectID]models.Campaign, len(campaigns))
	for _, c := range campaigns {
		byID[c.ID] = c
	}
	return expand(ngo, byID), nil
}
