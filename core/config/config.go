package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	OTel    OTelConfig
	Embed   EmbedConfig
	Session SessionConfig
	Env     string
	Port    string
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

// EmbedConfig controls the Zendesk signed-request shim. Zendesk always
// delivers the sidebar iframe as a POST carrying the token; the shim
// replays it as a same-origin GET against the forwarded host.
type EmbedConfig struct {
	ProxyScheme         string
	ForwardedHostHeader string
	FrameWidth          string
	FrameHeight         string
}

// SessionConfig tunes the per-ticket session lifecycle.
type SessionConfig struct {
	// RegisteredFetchDelay is how long to wait after app.registered
	// before the first ticket fetch. The Apps Framework reports
	// registration slightly before ticket data is readable.
	RegisteredFetchDelay time.Duration
}

// Load loads configuration from environment variables. In development it
// first loads a .env file if one is present.
func Load() (Config, error) {
	if getEnv("BRIDGE_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Env:  getEnv("BRIDGE_ENV", "development"),
		Port: getEnv("PORT", "8080"),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "copilot-bridge"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		Embed: EmbedConfig{
			ProxyScheme:         getEnv("EMBED_PROXY_SCHEME", "https"),
			ForwardedHostHeader: getEnv("EMBED_FORWARDED_HOST_HEADER", "X-Forwarded-Host"),
			FrameWidth:          getEnv("EMBED_FRAME_WIDTH", "100%"),
			FrameHeight:         getEnv("EMBED_FRAME_HEIGHT", "575px"),
		},
		Session: SessionConfig{
			RegisteredFetchDelay: getEnvDuration("SESSION_REGISTERED_FETCH_DELAY", 500*time.Millisecond),
		},
	}

	if cfg.Embed.ProxyScheme != "http" && cfg.Embed.ProxyScheme != "https" {
		return Config{}, fmt.Errorf("EMBED_PROXY_SCHEME must be http or https, got %q", cfg.Embed.ProxyScheme)
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if ms, err := strconv.Atoi(value); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return fallback
}
