// internal/app/features/campaigns/types.go
package campaigns

import (
	"github.com/unityvolunteers/unityhub/internal/domain/models"
)

// campaignRequest carries the writable campaign fields for create and
// update. On create all fields are required; on update, absent or empty
// fields keep their prior values.
type campaignRequest struct {
	Title           string `json:"title"`
	Date            string `json:"date"`
	Location        string `json:"location"`
	Description     string `json:"description"`
	FullDescription string `json:"fullDescription"`
	Category        string `json:"category"`
	TimeRequired    string `json:"timeRequired"`
}

// listItem is a campaign in the public directory, enriched with the owning
// NGO's display name only — not the full NGO record.
type listItem struct {
	models.Campaign
	NGOName string `json:"ngoName"`
}

// ack is the body for operations whose only payload is a confirmation.
type ack struct {
	Message string `json:"message"`
}
