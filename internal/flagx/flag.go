// Package flagx holds small helpers for parsing a subset of command-line
// flags, so that several loaders (config file, env file, main flags) can each
// parse only the flags they own.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns only the arguments in args that belong to allowedFlags,
// together with their values.
//
// Supported formats:
//
//	-c conf.toml      flag and value as separate arguments
//	--config=x.json   flag and value joined with '='
//
// A flag followed by another flag-looking argument is kept without a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigFileFlag extracts the config file path given via -c or -config.
// Returns "" when neither flag is present.
func ConfigFileFlag(args []string) string {
	return stringFlag(args, "config", "c", "path to config file (.json or .toml)")
}

// EnvFileFlag extracts the dotenv file path given via -e or -env.
// Returns "" when neither flag is present.
func EnvFileFlag(args []string) string {
	return stringFlag(args, "env", "e", "path to .env file")
}

func stringFlag(args []string, long, short, usage string) string {
	var v string

	filtered := FilterArgs(args, []string{"-" + short, "-" + long, "--" + short, "--" + long})

	fs := flag.NewFlagSet(long, flag.ContinueOnError)
	fs.SetOutput(discard{})
	fs.StringVar(&v, long, "", usage)
	fs.StringVar(&v, short, "", usage+" (short)")
	_ = fs.Parse(filtered)

	return v
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
