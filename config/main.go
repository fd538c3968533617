package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds everything the server reads from its environment.
type Config struct {
	Port             int      `env:"PORT"               envDefault:"3001"`
	DatabaseURL      string   `env:"DATABASE_URL"       envDefault:"postgresql:///jobly?sslmode=disable"`
	SecretKey        string   `env:"SECRET_KEY"         envDefault:"secret-dev"`
	BcryptWorkFactor int      `env:"BCRYPT_WORK_FACTOR" envDefault:"12"`
	AllowedOrigins   []string `env:"ALLOWED_ORIGINS"    envDefault:"*"     envSeparator:","`
	Debug            bool     `env:"DEBUG"              envDefault:"false"`
	MaxOpenConns     int      `env:"DB_MAX_OPEN_CONNS"  envDefault:"10"`
	MaxIdleConns     int      `env:"DB_MAX_IDLE_CONNS"  envDefault:"5"`
}

// Load reads an optional .env file (ENV_FILE, defaulting to ./.env) and then the
// process environment. Variables already set in the environment win over the file.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("SECRET_KEY must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT %d is out of range", c.Port)
	}
	if c.BcryptWorkFactor < bcrypt.MinCost || c.BcryptWorkFactor > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_WORK_FACTOR must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL must not be empty")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
