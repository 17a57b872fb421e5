// internal/app/features/campaigns/handler.go
package campaigns

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	campaignstore "github.com/unityvolunteers/unityhub/internal/app/store/campaigns"
	ngostore "github.com/unityvolunteers/unityhub/internal/app/store/ngos"
	volunteerstore "github.com/unityvolunteers/unityhub/internal/app/store/volunteers"
)

// Handler is the feature-level entry point for Campaigns.
type Handler struct {
	Campaigns  *campaignstore.Store
	NGOs       *ngostore.Store
	Volunteers *volunteerstore.Store
	Log        *zap.Logger
}

// NewHandler constructs a Campaigns handler bound to the entity stores.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Campaigns:  campaignstore.New(db),
		NGOs:       ngostore.New(db),
		Volunteers: volunteerstore.New(db),
		Log:        logger,
	}
}
