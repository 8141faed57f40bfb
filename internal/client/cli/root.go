package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Poll(ctx context.Context) error
	Vote(ctx context.Context) error
	Unvote(ctx context.Context) error
	Analyze(ctx context.Context) error
}

// Root starts the interactive loop on stdin.
func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to PartyPlan CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are printed here so the loop stays
// alive regardless of what a single command did.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pp %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, poll, vote, unvote, analyze, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, poll, vote, unvote, analyze, exit")
			}

		case "signup", "register":
			err = a.Signup(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami", "me":
			err = a.WhoAmI(ctx)

		case "poll", "results":
			err = a.Poll(ctx)

		case "vote":
			err = a.Vote(ctx)

		case "unvote":
			err = a.Unvote(ctx)

		case "analyze":
			err = a.Analyze(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
