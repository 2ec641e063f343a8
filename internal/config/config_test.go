package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("BCRYPT_COST", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "secret-dev", cfg.SecretKey)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Contains(t, cfg.DatabaseURL, "dbname=jobly")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "3001")
	t.Setenv("DATABASE_URL", "host=db user=app dbname=jobly_test")
	t.Setenv("SECRET_KEY", "prod-secret")
	t.Setenv("BCRYPT_COST", "4")

	cfg := Load()
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "host=db user=app dbname=jobly_test", cfg.DatabaseURL)
	assert.Equal(t, "prod-secret", cfg.SecretKey)
	assert.Equal(t, 4, cfg.BcryptCost)
}

func TestLoadIgnoresBadBcryptCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "not-a-number")

	assert.Equal(t, 12, Load().BcryptCost)
}
