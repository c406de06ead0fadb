package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config is the service configuration, loaded from the environment.
type Config struct {
	ListenAddr     string        `envconfig:"LISTEN_ADDR" default:":8080"`
	TokenSecret    string        `envconfig:"TOKEN_SECRET" required:"true"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"168h"`
	WhatsAppNumber string        `envconfig:"WHATSAPP_NUMBER" default:"1234567890"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment. A missing or weak token
// secret fails here so the service never starts with forgeable sessions.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "process environment")
	}
	if len(cfg.TokenSecret) < 32 {
		return nil, errors.New("TOKEN_SECRET must be at least 32 characters long")
	}
	return &cfg, nil
}
