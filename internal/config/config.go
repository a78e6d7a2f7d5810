package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Admin    AdminConfig    `yaml:"admin"`
	Poll     PollConfig     `yaml:"poll"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HOST" env-default:"127.0.0.1"`
	Port            int           `yaml:"port" env:"PORT" env-default:"8000"`
	StaticDir       string        `yaml:"static_dir" env:"STATIC_DIR" env-default:"web"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"30s"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver" env:"DATABASE_DRIVER" env-default:"sqlite"`
	URL    string `yaml:"url" env:"DATABASE_URL" env-default:"school_meals.db"`
}

type AdminConfig struct {
	// Password is the shared secret for the admin endpoints. Empty disables
	// them.
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
}

type PollConfig struct {
	RecentSuggestions int `yaml:"recent_suggestions" env:"RECENT_SUGGESTIONS_LIMIT" env-default:"8"`
}

func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads a .env file when present, then the YAML file named by
// CONFIG_PATH if set, and finally the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read config from environment: %w", err)
	}
	return &cfg, nil
}
