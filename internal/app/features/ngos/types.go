// internal/app/features/ngos/types.go
package ngos

import (
	"github.com/unityvolunteers/unityhub/internal/app/system/httpjson"
	"github.com/unityvolunteers/unityhub/internal/domain/models"
)

// profileUpdateRequest carries the editable profile fields. Absent or
// empty fields are left untouched; achievements and categories replace
// the stored lists wholesale when present.
type profileUpdateRequest struct {
	Name         string              `json:"name"`
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

// profileView is an NGO with its campaign id list expanded into full
// campaign documents. The outer Campaigns field shadows the embedded one
// when marshaling.
type profileView struct {
	models.NGO
	Campaigns []models.Campaign `json:"campaigns"`
}
