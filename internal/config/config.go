package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is accepted in front of every key, e.g. PORTFOLIO_PORT or PORT.
const Prefix = "PORTFOLIO"

// Settings holds the runtime configuration read from the environment.
type Settings struct {
	Port          string        `envconfig:"PORT" default:"8080"`
	DatabasePath  string        `envconfig:"DATABASE_PATH" default:"portfolio.db"`
	AdminUsername string        `envconfig:"ADMIN_USERNAME" default:""`
	AdminPassword string        `envconfig:"ADMIN_PASSWORD" default:""`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	FocusDelay    time.Duration `envconfig:"FOCUS_DELAY" default:"500ms"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load decodes Settings from the environment.
func Load() (Settings, error) {
	var s Settings
	if err := envconfig.Process(Prefix, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	return s, nil
}

// Addr is the listen address for Port.
func (s Settings) Addr() string {
	return ":" + s.Port
}
