package db

import (
	"os"
	"strconv"
)

type PostgresConfig struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	SSLMode           string
	MigrationsDirPath string
}

// LoadPostgresConfig reads the connection settings from the environment,
// with defaults suitable for local development.
func LoadPostgresConfig() PostgresConfig {
	port := 5432
	if v := os.Getenv("DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	return PostgresConfig{
		Host:              envOr("DB_HOST", "localhost"),
		Port:              port,
		User:              envOr("DB_USER", "postgres"),
		Password:          envOr("DB_PASSWORD", "postgres"),
		DBName:            envOr("DB_NAME", "storefront"),
		SSLMode:           envOr("DB_SSLMODE", "disable"),
		MigrationsDirPath: envOr("MIGRATIONS_PATH", "./migrations"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
