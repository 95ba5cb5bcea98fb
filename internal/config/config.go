package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	DataDir     string // directory holding recipes.json / skills.json
	SavePath    string // file path for save snapshots
	DatabaseURL string // optional: postgres snapshot store when set
	APIKey      string // optional: when set, mutating endpoints require it
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		DataDir:     getEnv("DATA_DIR", DefaultDataDir),
		SavePath:    getEnv("SAVE_PATH", DefaultSavePath),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		APIKey:      getEnv("API_KEY", ""),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.DataDir == "" {
		return nil, fmt.Errorf("DATA_DIR must not be empty")
	}

	return cfg, nil
}

// UsePostgres reports whether saves should go to postgres instead of a file
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

// RecipesPath returns the path of the recipe catalog config file
func (c *Config) RecipesPath() string {
	return c.DataDir + "/" + RecipesFileName
}

// SkillsPath returns the path of the skill catalog config file
func (c *Config) SkillsPath() string {
	return c.DataDir + "/" + SkillsFileName
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
