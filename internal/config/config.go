package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Map provider names selecting the mapping/directions backend.
const (
	ProviderKakao  = "kakao"
	ProviderGoogle = "google"
)

// ServiceConfig holds all configuration for the trip-planning service.
type ServiceConfig struct {
	Port   string
	AppEnv string

	// MapProvider is "kakao" (default) or "google".
	MapProvider string

	KakaoRESTAPIKey  string
	GBISAPIKey       string
	GoogleMapsAPIKey string

	// UpstreamTimeout bounds the provider call chain of one search.
	UpstreamTimeout time.Duration

	// DemoMode substitutes illustrative mock data when a provider fails.
	// Off, provider failures surface as upstream errors instead.
	DemoMode bool

	// SessionTTL is how long a search result set stays addressable.
	SessionTTL time.Duration

	// PaymentDelay is the simulated payment processing time.
	PaymentDelay time.Duration

	MetricsEnabled bool
}

// Load reads configuration from the environment, with .env support.
func Load() (*ServiceConfig, error) {
	_ = godotenv.Load()

	cfg := &ServiceConfig{
		Port:             ":" + getenvDefault("TRIPPLAN_SERVICE_PORT", "8080"),
		AppEnv:           getenvDefault("APP_ENV", "development"),
		MapProvider:      getenvDefault("MAP_PROVIDER", ProviderKakao),
		KakaoRESTAPIKey:  os.Getenv("KAKAO_REST_API_KEY"),
		GBISAPIKey:       os.Getenv("GBIS_API_KEY"),
		GoogleMapsAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
		DemoMode:         getenvBool("DEMO_MODE", true),
		MetricsEnabled:   getenvBool("METRICS_ENABLED", true),
	}

	var err error
	if cfg.UpstreamTimeout, err = getenvDuration("UPSTREAM_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getenvDuration("SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.PaymentDelay, err = getenvDuration("PAYMENT_DELAY", 500*time.Millisecond); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment returns true for development builds.
func (c *ServiceConfig) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// MissingKeys lists the API keys the selected providers need but that are
// not set. Missing keys are a warning in development, never fatal.
func (c *ServiceConfig) MissingKeys() []string {
	var missing []string
	switch c.MapProvider {
	case ProviderGoogle:
		if c.GoogleMapsAPIKey == "" {
			missing = append(missing, "GOOGLE_MAPS_API_KEY")
		}
	default:
		if c.KakaoRESTAPIKey == "" {
			missing = append(missing, "KAKAO_REST_API_KEY")
		}
	}
	if c.GBISAPIKey == "" {
		missing = append(missing, "GBIS_API_KEY")
	}
	return missing
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(v)
}
