package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// DBPath overrides the snapshot database location. Empty means the
	// default path in the user's home directory.
	DBPath string
	// ProfileName seeds the hamster profile's name on first run.
	ProfileName string
}

// Load reads .env (if present) and then the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:      os.Getenv("HAMSTER_DB"),
		ProfileName: os.Getenv("HAMSTER_PROFILE_NAME"),
	}
}
