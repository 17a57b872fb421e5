package bootstrap

import (
	"testing"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "unity_hub",
		JWTSecret:     "a-strong-production-secret",
		JWTExpiry:     120 * time.Hour,
		BcryptCost:    10,
	}
}

func TestValidateConfig_Accepts(t *testing.T) {
	coreCfg := &config.CoreConfig{Env: "dev"}
	if err := ValidateConfig(coreCfg, validAppConfig(), zap.NewNop()); err != nil {
		t.Errorf("expected valid config to pass, got %v", err)
	}
}

func TestValidateConfig_RejectsBadMongoURI(t *testing.T) {
	appCfg := validAppConfig()
	appCfg.MongoURI = "not-a-mongo-uri"
	if err := ValidateConfig(&config.CoreConfig{Env: "dev"}, appCfg, zap.NewNop()); err == nil {
		t.Error("expected error for invalid Mongo URI")
	}
}

func TestValidateConfig_RejectsDevSecretInProd(t *testing.T) {
	appCfg := validAppConfig()
	appCfg.JWTSecret = "dev-only-change-me-please-0123456789ABCDEF"

	if err := ValidateConfig(&config.CoreConfig{Env: "prod"}, appCfg, zap.NewNop()); err == nil {
		t.Error("expected error for dev secret in prod")
	}
	// The same secret is tolerated in dev.
	if err := ValidateConfig(&config.CoreConfig{Env: "dev"}, appCfg, zap.NewNop()); err != nil {
		t.Errorf("expected dev secret to pass in dev, got %v", err)
	}
}

func TestValidateConfig_RejectsBadExpiryAndCost(t *testing.T) {
	appCfg := validAppConfig()
	appCfg.JWTExpiry = 0
	if err := ValidateConfig(&config.CoreConfig{Env: "dev"}, appCfg, zap.NewNop()); err == nil {
		t.Error("expected error for zero expiry")
	}

	appCfg = validAppConfig()
	appCfg.BcryptCost = 50
	if err := ValidateConfig(&config.CoreConfig{Env: "dev"}, appCfg, zap.NewNop()); err == nil {
		t.Error("expected error for out-of-range bcrypt cost")
	}
}
