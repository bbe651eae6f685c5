package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/shivua6263/policy/internal/filex"
)

// Media backends.
const (
	MediaHTTP = "http"
	MediaS3   = "s3"
)

// Config holds runtime settings for the policy client.
//
// Units: all durations are time.Duration values.
type Config struct {
	APIBaseURL   string
	MediaBaseURL string
	MediaBackend string

	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
	S3Prefix       string

	DataDir        string
	RequestTimeout time.Duration

	MessageTTL         time.Duration
	LoginRedirectDelay time.Duration
	SignupResetDelay   time.Duration

	LogLevel   string
	LogBackend string
	LogFile    string
	NoColor    bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api"
	c.MediaBaseURL = "http://127.0.0.1:8000/media/profile_images/"
	c.MediaBackend = MediaHTTP
	c.S3Region = "us-east-1"
	c.S3Prefix = "profile_images/"
	c.DataDir = filex.DefaultDataDir()
	c.RequestTimeout = 30 * time.Second
	c.MessageTTL = 3 * time.Second
	c.LoginRedirectDelay = 1500 * time.Millisecond
	c.SignupResetDelay = 2 * time.Second
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.LogFile = "stderr"
}

// LoadConfig builds a Config from os.Args and the environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load applies, in order: defaults, the dotenv file and POLICY_* variables,
// the config file named by -c/-config, then command-line flags. Later
// sources override earlier ones. The result is validated.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks URLs, the media backend and durations.
func (c *Config) Validate() error {
	var errs []error

	if err := absoluteURL("api base url", c.APIBaseURL); err != nil {
		errs = append(errs, err)
	}

	switch strings.ToLower(c.MediaBackend) {
	case MediaHTTP:
		if err := absoluteURL("media base url", c.MediaBaseURL); err != nil {
			errs = append(errs, err)
		}
	case MediaS3:
		if c.S3Bucket == "" {
			errs = append(errs, errors.New("s3 bucket is required for the s3 media backend"))
		}
		if (c.S3AccessKey == "") != (c.S3SecretKey == "") {
			errs = append(errs, errors.New("s3 access key and secret key must be set together"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown media backend %q", c.MediaBackend))
	}

	if c.DataDir == "" {
		errs = append(errs, errors.New("data dir is required"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("request timeout must be positive"))
	}
	for name, d := range map[string]time.Duration{
		"message ttl":          c.MessageTTL,
		"login redirect delay": c.LoginRedirectDelay,
		"signup reset delay":   c.SignupResetDelay,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative", name))
		}
	}

	return errors.Join(errs...)
}

func absoluteURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s %q must be an absolute http(s) url", name, raw)
	}
	return nil
}
