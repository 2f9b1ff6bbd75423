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
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Recommendations(ctx context.Context) error
	Prescriptions(ctx context.Context) error
}

func (a *App) getStatus() string {
	s := ""
	if st := a.session.State(); st.User != nil {
		s = st.User.Username + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", strings.TrimSpace(s))
	}
	return s
}

// runREPL starts a simple read–eval–print loop for the healthmate CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands run to completion before the next line is read, so no two session
// mutations are ever in flight at once.
//
//	Not signed in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - login          — sign in
//	  - exit | quit    — leave the program
//
//	Signed in:
//	  - help             — show available commands
//	  - whoami           — show the current account
//	  - recommendations  — list doctor recommendations
//	  - prescriptions    — list analyzed prescriptions
//	  - logout           — sign out
//	  - exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	_, _ = printlnFn("Welcome to healthmate CLI (type 'help' for commands)")

	for {
		fmt.Printf("healthmate %s> ", statusFn())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				_, _ = printlnFn("Available commands: whoami, recommendations, prescriptions, logout, exit")
			} else {
				_, _ = printlnFn("Available commands: signup, login, exit")
			}
		case "signup":
			_ = a.Signup(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "recommendations", "recs":
			_ = a.Recommendations(ctx)
		case "prescriptions":
			_ = a.Prescriptions(ctx)
		case "exit", "quit":
			_, _ = printlnFn("Bye!")
			return
		default:
			_, _ = printlnFn("Unknown command:", cmd)
		}
	}
}
