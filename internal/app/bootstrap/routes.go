// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	authfeature "github.com/unityvolunteers/unityhub/internal/app/features/auth"
	campaignsfeature "github.com/unityvolunteers/unityhub/internal/app/features/campaigns"
	healthfeature "github.com/unityvolunteers/unityhub/internal/app/features/health"
	ngosfeature "github.com/unityvolunteers/unityhub/internal/app/features/ngos"
	sysauth "github.com/unityvolunteers/unityhub/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// UnityHub creates the token manager, then mounts the API feature routers:
// auth (signup/login for both account kinds), campaigns, and the NGO
// directory/profile, plus the health endpoint for load balancers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens, err := sysauth.NewTokenManager(appCfg.JWTSecret, appCfg.JWTExpiry, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Signup and login for volunteers and NGOs
	authHandler := authfeature.NewHandler(deps.MongoDatabase, tokens, appCfg.BcryptCost, logger)
	r.Mount("/api/auth", authfeature.Routes(authHandler))

	// Campaign directory, creation, updates, and registration
	campaignsHandler := campaignsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/campaigns", campaignsfeature.Routes(campaignsHandler, tokens))

	// NGO directory and self-profile
	ngosHandler := ngosfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/ngos", ngosfeature.Routes(ngosHandler, tokens))

	return r, nil
}
