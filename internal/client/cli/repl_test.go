package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(parts ...string) error {
	f.calls = append(f.calls, strings.Join(parts, " "))
	return nil
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) Login(_ context.Context, tabScoped bool) error {
	f.loggedIn = true
	if tabScoped {
		return f.record("login --tab")
	}
	return f.record("login")
}
func (f *fakeExec) Signup(context.Context) error             { return f.record("signup") }
func (f *fakeExec) Role(_ context.Context, r string) error   { return f.record("role", r) }
func (f *fakeExec) Whoami(context.Context) error             { return f.record("whoami") }
func (f *fakeExec) Entities(context.Context) error           { return f.record("entities") }
func (f *fakeExec) List(_ context.Context, e string) error   { return f.record("list", e) }
func (f *fakeExec) New(_ context.Context, e string) error    { return f.record("new", e) }
func (f *fakeExec) Set(_ context.Context, k, v string) error { return f.record("set", k, v) }
func (f *fakeExec) Draft(context.Context) error              { return f.record("draft") }
func (f *fakeExec) Save(context.Context) error               { return f.record("save") }
func (f *fakeExec) Cancel(context.Context) error             { return f.record("cancel") }
func (f *fakeExec) Profile(context.Context) error            { return f.record("profile") }
func (f *fakeExec) Upload(_ context.Context, p string) error { return f.record("upload", p) }
func (f *fakeExec) Quote(context.Context) error              { return f.record("quote") }
func (f *fakeExec) Edit(_ context.Context, e, id string) error {
	return f.record("edit", e, id)
}
func (f *fakeExec) Delete(_ context.Context, e, id string) error {
	return f.record("delete", e, id)
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func stubPrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	stubPrintln(t)

	input := strings.Join([]string{
		"help",
		"role agent",
		"login",
		"login --tab",
		"list plan",
		"new customer",
		"set name Asha  Rao",
		"set email",
		"draft",
		"save",
		"edit policy 12",
		"cancel",
		"delete agent 4",
		"upload /tmp/my photo.png",
		"profile",
		"quote",
		"entities",
		"whoami",
		"logout",
		"exit",
		"list user",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"role agent",
		"login",
		"login --tab",
		"list plan",
		"new customer",
		"set name Asha Rao",
		"set email ",
		"draft",
		"save",
		"edit policy 12",
		"cancel",
		"delete agent 4",
		"upload /tmp/my photo.png",
		"profile",
		"quote",
		"entities",
		"whoami",
		"logout",
	}, exec.calls, "commands after exit are not run")
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	lines := stubPrintln(t)

	input := "list\nedit plan\ndelete\nrole\nlogin --keep\nfoobar\nquit\n"
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader(input)))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Usage: list <entity>")
	assert.Contains(t, *lines, "Usage: edit <entity> <id>")
	assert.Contains(t, *lines, "Usage: delete <entity> <id>")
	assert.Contains(t, *lines, "Usage: role <customer|agent>")
	assert.Contains(t, *lines, "Usage: login [--tab]")
	assert.Contains(t, *lines, "Unknown command: foobar")
	assert.Contains(t, *lines, "Bye!")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := stubPrintln(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, bufio.NewReader(strings.NewReader("help")))
	assert.Contains(t, *lines, helpLoggedOut)

	*lines = nil
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "" }, bufio.NewReader(strings.NewReader("help\n")))
	assert.Contains(t, *lines, helpLoggedIn)
}
