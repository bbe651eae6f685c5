// Package filex contains filesystem helpers for the client data directory.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDirName is the directory created under the user config dir when no
// data directory is configured.
const DataDirName = "policybridge"

var userConfigDir = os.UserConfigDir

// EnsureDir creates dir (and parents) with owner-only permissions and returns
// its absolute path. A relative dir is resolved against the working directory.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

// DefaultDataDir returns <user config dir>/policybridge, or ./.policybridge
// when the platform has no config dir.
func DefaultDataDir() string {
	base, err := userConfigDir()
	if err != nil || base == "" {
		return "." + DataDirName
	}
	return filepath.Join(base, DataDirName)
}

// ReadLimited returns the size of the file at path and, when the size does
// not exceed max, its contents. Oversized files yield nil data and no error.
func ReadLimited(path string, max int64) ([]byte, int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, 0, err
	}
	if fi.IsDir() {
		return nil, 0, fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() > max {
		return nil, fi.Size(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	return data, int64(len(data)), nil
}
