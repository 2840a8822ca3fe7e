package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Session(ctx context.Context) error
	Notifications(ctx context.Context) error
	Read(ctx context.Context, args []string) error
	Posts(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from in until EOF, "exit" or "quit".
//
//	Not logged in:
//	  help, login, posts [status], notifications, read <id>, exit
//
//	Logged in, additionally:
//	  whoami, logout
//
// Command errors are reported by the handlers themselves and ignored here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("blog %s> ", statusFn()))
		line, err := readLine(in)
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
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, (p)osts [status], (n)otifications, read <id>, logout, exit")
			} else {
				printlnFn("Available commands: login, (p)osts [status], (n)otifications, read <id>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "whoami", "session":
			if !a.isLoggedIn() {
				printlnFn("Not logged in")
				continue
			}
			_ = a.Session(ctx)

		case "n", "notifications":
			_ = a.Notifications(ctx)

		case "read":
			_ = a.Read(ctx, args)

		case "p", "posts":
			_ = a.Posts(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
