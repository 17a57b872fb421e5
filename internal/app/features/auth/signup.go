// internal/app/features/auth/signup.go
package auth

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	ngostore "github.com/unityvolunteers/unityhub/internal/app/store/ngos"
	volunteerstore "github.com/unityvolunteers/unityhub/internal/app/store/volunteers"
	sysauth "github.com/unityvolunteers/unityhub/internal/app/system/auth"
	"github.com/unityvolunteers/unityhub/internal/app/system/authutil"
	"github.com/unityvolunteers/unityhub/internal/app/system/htmlsanitize"
	"github.com/unityvolunteers/unityhub/internal/app/system/httperr"
	"github.com/unityvolunteers/unityhub/internal/app/system/httpjson"
	"github.com/unityvolunteers/unityhub/internal/app/system/inputval"
	"github.com/unityvolunteers/unityhub/internal/app/system/normalize"
	"github.com/unityvolunteers/unityhub/internal/app/system/timeouts"
	"github.com/unityvolunteers/unityhub/internal/domain/models"
)

// HandleVolunteerSignup handles POST /api/auth/signup.
//
// On success: 201 with {token, volunteer}. Duplicate email answers 409 and
// leaves the existing record untouched.
func (h *Handler) HandleVolunteerSignup(w http.ResponseWriter, r *http.Request) {
	var req volunteerSignupRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	req.FullName = normalize.Name(req.FullName)
	req.Email = normalize.Email(req.Email)
	req.MobileNumber = normalize.Name(req.MobileNumber)

	if req.FullName == "" || req.Email == "" || req.Password == "" || req.DateOfBirth == "" || req.MobileNumber == "" {
		httperr.Write(w, httperr.New(httperr.Validation, "Please fill in all required fields"))
		return
	}
	if !inputval.IsValidEmail(req.Email) {
		httperr.Write(w, httperr.New(httperr.Validation, "Please provide a valid email address"))
		return
	}
	if req.Age <= 0 {
		httperr.Write(w, httperr.New(httperr.Validation, "Please provide a valid age"))
		return
	}
	if !inputval.IsValidMobile(req.MobileNumber) {
		httperr.Write(w, httperr.New(httperr.Validation, "Please provide a valid mobile number"))
		return
	}
	dob, err := httpjson.ParseDate(req.DateOfBirth)
	if err != nil {
		httperr.Write(w, httperr.New(httperr.Validation, "Please provide a valid date of birth"))
		return
	}

	hash, err := authutil.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		h.Log.Error("password hash failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	volunteer, err := h.Volunteers.Create(ctx, models.Volunteer{
		FullName:         req.FullName,
		Email:            req.Email,
		Password:         hash,
		Age:              req.Age,
		DateOfBirth:      dob,
		CompanyOrCollege: normalize.Name(req.CompanyOrCollege),
		MobileNumber:     req.MobileNumber,
	})
	if err != nil {
		if err == volunteerstore.ErrDuplicateEmail {
			httperr.Write(w, httperr.New(httperr.Conflict, "A volunteer with this email already exists"))
			return
		}
		h.Log.Error("volunteer create failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}

	token, err := h.Tokens.Issue(volunteer.ID, sysauth.KindVolunteer)
	if err != nil {
		h.Log.Error("token issue failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}

	httpjson.Write(w, http.StatusCreated, volunteerAuthResponse{
		Token:     token,
		Volunteer: toPublicVolunteer(volunteer),
	})
}

// HandleNGOSignup handles POST /api/auth/ngo/signup.
//
// Both the email and the (case-folded) name must be unused; either
// collision answers 409.
func (h *Handler) HandleNGOSignup(w http.ResponseWriter, r *http.Request) {
	var req ngoSignupRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	req.Name = normalize.Name(req.Name)
	req.Email = normalize.Email(req.Email)

	if req.Name == "" || req.Email == "" || req.Password == "" || req.ShortInfo == "" ||
		req.Founded == "" || req.Founder == "" || req.Aim == "" || req.Location == "" {
		httperr.Write(w, httperr.New(httperr.Validation, "Please fill in all required fields"))
		return
	}
	if !inputval.IsValidEmail(req.Email) {
		httperr.Write(w, httperr.New(httperr.Validation, "Please provide a valid email address"))
		return
	}

	hash, err := authutil.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		h.Log.Error("password hash failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ngo, err := h.NGOs.Create(ctx, models.NGO{
		Name:         req.Name,
		Email:        req.Email,
		Password:     hash,
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
		case ngostore.ErrDuplicateEmail:
			httperr.Write(w, httperr.New(httperr.Conflict, "NGO with this email already exists"))
		case ngostore.ErrDuplicateName:
			httperr.Write(w, httperr.New(httperr.Conflict, "NGO with this name already exists"))
		default:
			h.Log.Error("ngo create failed", zap.Error(err))
			httperr.Write(w, err)
		}
		return
	}

	token, err := h.Tokens.Issue(ngo.ID, sysauth.KindNGO)
	if err != nil {
		h.Log.Error("token issue failed", zap.Error(err))
		httperr.Write(w, err)
		return
	}

	httpjson.Write(w, http.StatusCreated, ngoAuthResponse{
		Token: token,
		NGO:   toPublicNGO(ngo),
	})
}
