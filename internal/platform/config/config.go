package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backend names the collaborator set the record store is wired to.
type Backend string

const (
	BackendRemote Backend = "remote"
	BackendPgsql  Backend = "pgsql"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	Backend       Backend
	DatabaseURL   string
	EnableDBCheck bool

	RemoteBaseURL     string
	HTTPClientTimeout time.Duration

	SeedSampleItems    bool
	SubmitRateLimit    string
	CORSAllowedOrigins []string
	CompanyName        string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("BACKEND", string(BackendRemote))
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("REMOTE_BASE_URL", "http://5.189.180.8:8010")
	v.SetDefault("HTTP_CLIENT_TIMEOUT", "30s")
	v.SetDefault("SEED_SAMPLE_ITEMS", true)
	v.SetDefault("SUBMIT_RATE_LIMIT", "30-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("COMPANY_NAME", "Your Company Name")
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		Backend:         Backend(strings.ToLower(strings.TrimSpace(v.GetString("BACKEND")))),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		RemoteBaseURL:   strings.TrimRight(v.GetString("REMOTE_BASE_URL"), "/"),
		SeedSampleItems: v.GetBool("SEED_SAMPLE_ITEMS"),
		SubmitRateLimit: v.GetString("SUBMIT_RATE_LIMIT"),
		CompanyName:     v.GetString("COMPANY_NAME"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	timeoutStr := v.GetString("HTTP_CLIENT_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 30 * time.Second
		log.Printf("Warning: Invalid value for HTTP_CLIENT_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.HTTPClientTimeout = timeout

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	switch cfg.Backend {
	case BackendRemote:
		if cfg.RemoteBaseURL == "" {
			return nil, fmt.Errorf("REMOTE_BASE_URL is required for the %s backend", cfg.Backend)
		}
	case BackendPgsql:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required for the %s backend", cfg.Backend)
		}
	default:
		return nil, fmt.Errorf("unknown BACKEND %q (want %q or %q)", cfg.Backend, BackendRemote, BackendPgsql)
	}

	return cfg, nil
}

// AllowsAnyOrigin reports whether CORS is open to every origin.
func (c *Config) AllowsAnyOrigin() bool {
	for _, o := range c.CORSAllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}
