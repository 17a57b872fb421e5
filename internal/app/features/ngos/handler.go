// internal/app/features/ngos/handler.go
package ngos

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	campaignstore "github.com/unityvolunteers/unityhub/internal/app/store/campaigns"
	ngostore "github.com/unityvolunteers/unityhub/internal/app/store/ngos"
)

// Handler is the feature-level entry point for the NGO directory and the
// NGO self-profile.
type Handler struct {
	NGOs      *ngostore.Store
	Campaigns *campaignstore.Store
	Log       *zap.Logger
}

// NewHandler constructs an NGOs handler bound to the entity stores.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		NGOs:      ngostore.New(db),
		Campaigns: campaignstore.New(db),
		Log:       logger,
	}
}
