package config

import (
	"os"
	"strconv"
)

// Config carries the runtime settings read from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	SecretKey   string
	BcryptCost  int
}

const (
	defaultPort        = "8080"
	defaultDatabaseURL = "host=localhost user=postgres password=password dbname=jobly port=5432 sslmode=disable"
	defaultSecretKey   = "secret-dev"
	defaultBcryptCost  = 12
)

// Load reads configuration from environment variables, falling back to
// development defaults. Production deployments must set SECRET_KEY and
// DATABASE_URL.
func Load() Config {
	return Config{
		Port:        getenv("PORT", defaultPort),
		DatabaseURL: getenv("DATABASE_URL", defaultDatabaseURL),
		SecretKey:   getenv("SECRET_KEY", defaultSecretKey),
		BcryptCost:  getenvInt("BCRYPT_COST", defaultBcryptCost),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
