// internal/app/features/auth/types.go
package auth

import (
	"github.com/unityvolunteers/unityhub/internal/app/system/httpjson"
	"github.com/unityvolunteers/unityhub/internal/domain/models"
)

// volunteerSignupRequest carries the volunteer registration fields. Date of
// birth is a string because clients send either RFC 3339 or a bare date.
type volunteerSignupRequest struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Age              int    `json:"age"`
	DateOfBirth      string `json:"dateOfBirth"`
	CompanyOrCollege string `json:"companyOrCollege"`
	MobileNumber     string `json:"mobileNumber"`
}

// ngoSignupRequest carries the NGO registration fields. Achievements and
// categories accept either a JSON array or a comma-separated string.
type ngoSignupRequest struct {
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Password     string              `json:"password"`
	Logo         string              `json:"logo"`
	ShortInfo    string              `json:"shortInfo"`
	Founded      string              `json:"founded"`
	Founder      string              `json:"founder"`
	Aim          string              `json:"aim"`
	Location     string              `json:"location"`
	Website      string              `json:"website"`
	Achievements httpjson.StringList `json:"achievements"`
	Categories   httpjson.StringList `json:"categories"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// publicVolunteer is the minimal projection returned with a token; the full
// record is available through authenticated endpoints.
type publicVolunteer struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type publicNGO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type volunteerAuthResponse struct {
	Token     string          `json:"token"`
	Volunteer publicVolunteer `json:"volunteer"`
}

type ngoAuthResponse struct {
	Token string    `json:"token"`
	NGO   publicNGO `json:"ngo"`
}

func toPublicVolunteer(v models.Volunteer) publicVolunteer {
	return publicVolunteer{
		ID:       v.ID.Hex(),
		FullName: v.FullName,
		Email:    v.Email,
	}
}

func toPublicNGO(n models.NGO) publicNGO {
	return publicNGO{
		ID:    n.ID.Hex(),
		Name:  n.Name,
		Email: n.Email,
	}
}
