// Package buildinfo carries version data stamped at link time and prints the
// startup banner.
//
//	go build -ldflags "-X github.com/shivua6263/policy/internal/buildinfo.Version=v1.2.0"
package buildinfo

import (
	"fmt"
	"io"

	figure "github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

const AppName = "policy"

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// String returns "version (commit, date)".
func String() string {
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, BuildDate)
}

// PrintBanner writes the ASCII-art app name and the version line to w.
func PrintBanner(w io.Writer) {
	fig := figure.NewFigure(AppName, "cybermedium", true)
	fmt.Fprintln(w, color.CyanString(fig.String()))
	fmt.Fprintln(w, color.New(color.Faint).Sprintf("version %s", String()))
	fmt.Fprintln(w)
}
