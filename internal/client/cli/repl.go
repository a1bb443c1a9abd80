package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Info(ctx context.Context) error
	Markbook(ctx context.Context, semester string) error
	Group(ctx context.Context) error
	Remember(ctx context.Context) error
	Restore(ctx context.Context) error
	Forget(ctx context.Context) error
}

// runREPL reads one line at a time from reader, treats the first token as
// the command and dispatches to a. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  help             show available commands
//	  status           show the session state
//	  exit | quit      leave the program
//
//	Not logged in:
//	  login            authenticate with student number and password
//	  restore          resume a remembered session
//	  forget           drop the remembered session
//
//	Logged in:
//	  info             personal information
//	  markbook [N]     markbook, optionally a single semester
//	  group            group, curator and roster
//	  remember         remember this session under a PIN
//	  forget           drop the remembered session
//	  logout           end the session
//
// Errors returned by command handlers are printed and the loop continues.
// The reader is shared with the handlers so interactive prompts see the
// lines that follow the command.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("iis> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: info, markbook [semester], group, status, remember, forget, logout, exit")
			} else {
				printlnFn("Available commands: login, restore, forget, status, exit")
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "status":
			cmdErr = a.Status(ctx)

		case "info":
			cmdErr = a.Info(ctx)

		case "markbook", "mb":
			semester := ""
			if len(args) > 0 {
				semester = args[0]
			}
			cmdErr = a.Markbook(ctx, semester)

		case "group":
			cmdErr = a.Group(ctx)

		case "remember":
			cmdErr = a.Remember(ctx)

		case "restore":
			cmdErr = a.Restore(ctx)

		case "forget":
			cmdErr = a.Forget(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", describeError(cmdErr))
		}
		if err != nil {
			return
		}
	}
}
