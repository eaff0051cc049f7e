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
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Accounts(ctx context.Context) error
	AddAccount(ctx context.Context) error
	SetStatus(ctx context.Context) error
	SetAvatar(ctx context.Context) error
	Profile(ctx context.Context) error
	Support(ctx context.Context) error
	Faq(ctx context.Context) error
	Requests(ctx context.Context) error
	Users(ctx context.Context) error
	EditUser(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the storefront client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Anonymous:
//	  - help             - show available commands
//	  - accounts         - browse the rental catalog
//	  - register         - create an account
//	  - login            - authenticate
//	  - support          - send a support request
//	  - faq              - show frequently asked questions
//	  - exit | quit      - leave the program
//
//	Logged in, additionally:
//	  - profile          - show the current user's card
//	  - logout           - log out
//
//	Admin, additionally:
//	  - add              - add a catalog account
//	  - setstatus        - change a catalog account's status
//	  - setavatar        - change a catalog account's avatar
//	  - users            - list user records
//	  - edituser         - edit a user's points and status
//	  - requests         - show recent support requests
//	  - stats            - show collection sizes
//
// Any errors returned by command handlers are ignored here; handlers print
// their own notifications. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rmw> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				printlnFn("Available commands: accounts, add, setstatus, setavatar, profile, users, edituser, requests, stats, support, faq, logout, exit")
			case a.isLoggedIn():
				printlnFn("Available commands: accounts, profile, support, faq, logout, exit")
			default:
				printlnFn("Available commands: accounts, register, login, support, faq, exit")
			}

		case "accounts":
			_ = a.Accounts(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "support":
			_ = a.Support(ctx)

		case "faq":
			_ = a.Faq(ctx)

		case "add":
			_ = a.AddAccount(ctx)

		case "setstatus":
			_ = a.SetStatus(ctx)

		case "setavatar":
			_ = a.SetAvatar(ctx)

		case "users":
			_ = a.Users(ctx)

		case "edituser":
			_ = a.EditUser(ctx)

		case "requests":
			_ = a.Requests(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
