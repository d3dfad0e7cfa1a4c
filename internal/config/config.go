package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds process-level configuration for the Nimbus server.
// Completion client configuration lives in the llm package.
type Config struct {
	Addr    string
	DBPath  string
	Verbose bool
}

// Load reads configuration from the environment, after loading an
// optional .env file from the working directory.
func Load() (Config, error) {
	// Missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	cfg := Config{
		Addr: ":8080",
	}

	if v := os.Getenv("NIMBUS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("NIMBUS_VERBOSE"); v != "" {
		cfg.Verbose, _ = strconv.ParseBool(v)
	}

	cfg.DBPath = os.Getenv("NIMBUS_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".nimbus", "nimbus.db")
	}

	return cfg, nil
}
