package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/shivua6263/policy/internal/flagx"
	"github.com/shivua6263/policy/internal/timex"
)

// FileConfig is the DTO decoded from JSON or TOML config files. Durations
// use timex.Duration, so files may write "3s" or integer nanoseconds (JSON
// only). Zero values leave the current setting untouched.
type FileConfig struct {
	APIBaseURL     string         `json:"api_base_url" toml:"api_base_url"`
	MediaBaseURL   string         `json:"media_base_url" toml:"media_base_url"`
	MediaBackend   string         `json:"media_backend" toml:"media_backend"`
	S3             S3FileConfig   `json:"s3" toml:"s3"`
	DataDir        string         `json:"data_dir" toml:"data_dir"`
	RequestTimeout timex.Duration `json:"request_timeout" toml:"request_timeout"`
	MessageTTL     timex.Duration `json:"message_ttl" toml:"message_ttl"`
	Log            LogFileConfig  `json:"log" toml:"log"`
}

type S3FileConfig struct {
	Bucket    string `json:"bucket" toml:"bucket"`
	Region    string `json:"region" toml:"region"`
	Endpoint  string `json:"endpoint" toml:"endpoint"`
	AccessKey string `json:"access_key" toml:"access_key"`
	SecretKey string `json:"secret_key" toml:"secret_key"`
	Prefix    string `json:"prefix" toml:"prefix"`
}

type LogFileConfig struct {
	Level   string `json:"level" toml:"level"`
	Backend string `json:"backend" toml:"backend"`
	File    string `json:"file" toml:"file"`
	NoColor *bool  `json:"no_color" toml:"no_color"`
}

// parseFile overlays cfg with the file named by -c/-config. The format is
// chosen by extension: .toml is decoded as TOML after ${VAR} expansion,
// anything else as JSON. Without the flag nothing happens.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(expandEnvVars(string(data)), &fc); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc FileConfig) apply(cfg *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.APIBaseURL, fc.APIBaseURL)
	set(&cfg.MediaBaseURL, fc.MediaBaseURL)
	set(&cfg.MediaBackend, fc.MediaBackend)
	set(&cfg.S3Bucket, fc.S3.Bucket)
	set(&cfg.S3Region, fc.S3.Region)
	set(&cfg.S3BaseEndpoint, fc.S3.Endpoint)
	set(&cfg.S3AccessKey, fc.S3.AccessKey)
	set(&cfg.S3SecretKey, fc.S3.SecretKey)
	set(&cfg.S3Prefix, fc.S3.Prefix)
	set(&cfg.DataDir, fc.DataDir)
	set(&cfg.LogLevel, fc.Log.Level)
	set(&cfg.LogBackend, fc.Log.Backend)
	set(&cfg.LogFile, fc.Log.File)

	if fc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.MessageTTL.Duration != 0 {
		cfg.MessageTTL = fc.MessageTTL.Duration
	}
	if fc.Log.NoColor != nil {
		cfg.NoColor = *fc.Log.NoColor
	}
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} with the variable's value, or "" when unset.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
}
