package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/shivua6263/policy/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
// Supported flags:
//
//	-a string   REST API base URL
//	-m string   media base URL for profile images
//	-d string   local data directory
//	-t int      request timeout (in seconds)
//	-l string   log level (debug, info, warn, error)
//
// Other arguments are filtered out with flagx.FilterArgs so that the config
// file and env file flags do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-m", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("policy", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "REST API base URL")
	fs.StringVar(&cfg.MediaBaseURL, "m", cfg.MediaBaseURL, "media base URL")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "local data directory")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
