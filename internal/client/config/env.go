package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/shivua6263/policy/internal/flagx"
)

// EnvPrefix prefixes every environment variable the client reads.
const EnvPrefix = "POLICY_"

// parseEnv loads the dotenv file (the -e/-env flag, or ./.env when present)
// and overlays POLICY_* variables. Variables already set in the process
// environment win over the dotenv file.
func parseEnv(cfg *Config, args []string) error {
	if path := flagx.EnvFileFlag(args); path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg.APIBaseURL = getEnv("API_URL", cfg.APIBaseURL)
	cfg.MediaBaseURL = getEnv("MEDIA_URL", cfg.MediaBaseURL)
	cfg.MediaBackend = getEnv("MEDIA_BACKEND", cfg.MediaBackend)
	cfg.S3Bucket = getEnv("S3_BUCKET", cfg.S3Bucket)
	cfg.S3Region = getEnv("S3_REGION", cfg.S3Region)
	cfg.S3BaseEndpoint = getEnv("S3_ENDPOINT", cfg.S3BaseEndpoint)
	cfg.S3AccessKey = getEnv("S3_ACCESS_KEY", cfg.S3AccessKey)
	cfg.S3SecretKey = getEnv("S3_SECRET_KEY", cfg.S3SecretKey)
	cfg.S3Prefix = getEnv("S3_PREFIX", cfg.S3Prefix)
	cfg.DataDir = getEnv("DATA_DIR", cfg.DataDir)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogBackend = getEnv("LOG_BACKEND", cfg.LogBackend)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)

	var err error
	if cfg.RequestTimeout, err = getEnvAsDuration("REQUEST_TIMEOUT", cfg.RequestTimeout); err != nil {
		return err
	}
	if cfg.MessageTTL, err = getEnvAsDuration("MESSAGE_TTL", cfg.MessageTTL); err != nil {
		return err
	}
	if cfg.NoColor, err = getEnvAsBool("NO_COLOR", cfg.NoColor); err != nil {
		return err
	}
	// NO_COLOR is honoured without the prefix as well.
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(EnvPrefix + key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err)
	}
	return d, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err)
	}
	return b, nil
}
