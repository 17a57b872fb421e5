// internal/app/features/auth/login.go
package auth

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	sysauth "github.com/unityvolunteers/unityhub/internal/app/system/auth"
	"github.com/unityvolunteers/unityhub/internal/app/system/authutil"
	"github.com/unityvolunteers/unityhub/internal/app/system/httperr"
	"github.com/unityvolunteers/unityhub/internal/app/system/httpjson"
	"github.com/unityvolunteers/unityhub/internal/app/system/normalize"
	"github.com/unityvolunteers/unityhub/internal/app/system/timeouts"
)

// invalidCredentials is the single message for every authentication
// failure. Unknown email and wrong password are indistinguishable on the
// wire so logins cannot be used to probe which emails exist.
var invalidCredentials = httperr.New(httperr.Unauthorized, "Invalid credentials")

// HandleVolunteerLogin handles POST /api/auth/login.
func (h *Handler) HandleVolunteerLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httperr.Write(w, err)
		return
	}
	req.Email = normalize.Email(req.Email)
	if req.Email == "" || req.Password == "" {
		httperr.Write(w, httperr.New(httperr.Validation, "Please provide email and password"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	volunteer, err := h.Volunteers.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httperr.Write(w, invalidCredentials)
			return
		}
		h.Log.Error("volunteer lookup failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}
	if !authutil.CheckPassword(req.Password, volunteer.Password) {
		httperr.Write(w, invalidCredentials)
		return
	}

	token, err := h.Tokens.Issue(volunteer.ID, sysauth.KindVolunteer)
	if err != nil {
		h.Log.Error("token issue failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, volunteerAuthResponse{
		Token:     token,
		Volunteer: toPublicVolunteer(volunteer),
	})
}

// HandleNGOLogin handles POST /api/auth/ngo/login.
func (h *Handler) HandleNGOLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httperr.Write(w, err)
		return
	}
	req.Email = normalize.Email(req.Email)
	if req.Email == "" || req.Password == "" {
		httperr.Write(w, httperr.New(httperr.Validation, "Please provide email and password"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ngo, err := h.NGOs.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httperr.Write(w, invalidCredentials)
			return
		}
		h.Log.Error("ngo lookup failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}
	if !authutil.CheckPassword(req.Password, ngo.Password) {
		httperr.Write(w, invalidCredentials)
		return
	}

	token, err := h.Tokens.Issue(ngo.ID, sysauth.KindNGO)
	if err != nil {
		h.Log.Error("token issue failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, ngoAuthResponse{
		Token: token,
		NGO:   toPublicNGO(ngo),
	})
}
