package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/shivua6263/policy/internal/client/controllers"
	"github.com/shivua6263/policy/internal/common"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgCyan)
	faintColor   = color.New(color.FgHiBlack)
)

func (a *App) println(args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

// printMessage shows a controller status line, if any.
func (a *App) printMessage(m controllers.Message) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	switch m.Kind {
	case controllers.MessageSuccess:
		successColor.Fprintln(a.out, "✓ "+m.Text)
	case controllers.MessageError:
		errorColor.Fprintln(a.out, "✗ "+m.Text)
	}
}

// Navigate implements controllers.Navigator.
func (a *App) Navigate(page string) {
	a.mu.Lock()
	a.page = page
	if page == common.PageLogin {
		a.userLabel = ""
		a.current = nil
	}
	a.mu.Unlock()

	a.outMu.Lock()
	infoColor.Fprintf(a.out, "→ %s\n", page)
	a.outMu.Unlock()

	if page == common.PageLanding {
		// the landing page is protected; entering it refreshes the user slot
		a.gate.Enter(context.Background())
	}
}

// Confirm implements controllers.Confirmer with a y/N prompt.
func (a *App) Confirm(prompt string) bool {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	ok, err := GetYesNo(a.reader, prompt, a.out)
	return err == nil && ok
}

// ScrollToTop implements controllers.Viewport.
func (a *App) ScrollToTop() {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	faintColor.Fprintln(a.out, strings.Repeat("─", 40))
}

// ShowUser implements controllers.UserSlot.
func (a *App) ShowUser(name, role string) {
	label := name
	if role != "" {
		label = fmt.Sprintf("%s [%s]", name, role)
	}
	a.mu.Lock()
	a.userLabel = label
	a.page = common.PageLanding
	a.mu.Unlock()
}

// ShowImage implements controllers.ImageView.
func (a *App) ShowImage(url string) {
	if url == controllers.DefaultAvatar {
		a.println("Profile image: (default avatar)")
		return
	}
	a.println("Profile image:", url)
}

// ClearSelection implements controllers.ImageView. The terminal keeps no
// file selection between commands.
func (a *App) ClearSelection() {}

// SetUploadEnabled implements controllers.ImageView.
func (a *App) SetUploadEnabled(enabled bool) {
	a.mu.Lock()
	a.uploadEnabled = enabled
	a.mu.Unlock()
}
