package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context, tabScoped bool) error
	Signup(ctx context.Context) error
	Role(ctx context.Context, role string) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Entities(ctx context.Context) error
	List(ctx context.Context, entity string) error
	New(ctx context.Context, entity string) error
	Edit(ctx context.Context, entity, id string) error
	Set(ctx context.Context, field, value string) error
	Draft(ctx context.Context) error
	Save(ctx context.Context) error
	Cancel(ctx context.Context) error
	Delete(ctx context.Context, entity, id string) error
	Profile(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	Quote(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login [--tab], signup, role <customer|agent>, quote, exit"
	helpLoggedIn  = "Available commands: whoami, entities, list <entity>, new <entity>, edit <entity> <id>, " +
		"set <field> <value>, draft, save, cancel, delete <entity> <id>, profile, upload <path>, quote, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the policy console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands and missing arguments are
// reported back to the user. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("policy %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			if len(args) > 1 || (len(args) == 1 && args[0] != "--tab") {
				printlnFn("Usage: login [--tab]")
				continue
			}
			_ = a.Login(ctx, len(args) == 1)

		case "signup", "register":
			_ = a.Signup(ctx)

		case "role":
			if len(args) != 1 {
				printlnFn("Usage: role <customer|agent>")
				continue
			}
			_ = a.Role(ctx, args[0])

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "entities":
			_ = a.Entities(ctx)

		case "l", "list":
			if len(args) != 1 {
				printlnFn("Usage: list <entity>")
				continue
			}
			_ = a.List(ctx, args[0])

		case "new":
			if len(args) != 1 {
				printlnFn("Usage: new <entity>")
				continue
			}
			_ = a.New(ctx, args[0])

		case "edit":
			if len(args) != 2 {
				printlnFn("Usage: edit <entity> <id>")
				continue
			}
			_ = a.Edit(ctx, args[0], args[1])

		case "set":
			if len(args) < 1 {
				printlnFn("Usage: set <field> <value>")
				continue
			}
			_ = a.Set(ctx, args[0], strings.Join(args[1:], " "))

		case "draft":
			_ = a.Draft(ctx)

		case "save":
			_ = a.Save(ctx)

		case "cancel":
			_ = a.Cancel(ctx)

		case "delete":
			if len(args) != 2 {
				printlnFn("Usage: delete <entity> <id>")
				continue
			}
			_ = a.Delete(ctx, args[0], args[1])

		case "profile":
			_ = a.Profile(ctx)

		case "upload":
			if len(args) < 1 {
				printlnFn("Usage: upload <path>")
				continue
			}
			_ = a.Upload(ctx, strings.Join(args, " "))

		case "quote":
			_ = a.Quote(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
