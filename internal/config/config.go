// Package config loads the service configuration from the environment.
package config

import (
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every externally supplied setting. MONGO_URL and DB_NAME
// have no sane defaults; the process must not start without them.
type Config struct {
	MongoURL string `envconfig:"MONGO_URL" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`

	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`

	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"*"`
	Port        string `envconfig:"PORT" default:"8080"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Origins returns the configured CORS origins as a list.
func (c Config) Origins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
