// internal/app/features/auth/handler.go
package auth

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	ngostore "github.com/unityvolunteers/unityhub/internal/app/store/ngos"
	volunteerstore "github.com/unityvolunteers/unityhub/internal/app/store/volunteers"
	sysauth "github.com/unityvolunteers/unityhub/internal/app/system/auth"
)

// Handler is the feature-level entry point for signup and login, covering
// both subject kinds.
type Handler struct {
	Volunteers *volunteerstore.Store
	NGOs       *ngostore.Store
	Tokens     *sysauth.TokenManager
	BcryptCost int
	Log        *zap.Logger
}

// NewHandler constructs an auth handler bound to the entity stores, the
// token issuer, and the configured bcrypt cost.
func NewHandler(db *mongo.Database, tokens *sysauth.TokenManager, bcryptCost int, logger *zap.Logger) *Handler {
	return &Handler{
		Volunteers: volunteerstore.New(db),
		NGOs:       ngostore.New(db),
		Tokens:     tokens,
		BcryptCost: bcryptCost,
		Log:        logger,
	}
}
