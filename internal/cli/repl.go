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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	AddPhotos(ctx context.Context, paths []string) error
	AddVideos(ctx context.Context, paths []string) error
	List(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	Save(ctx context.Context, args []string) error
	ClearAll(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Not logged in:
//   - help | register | login | resetpw | exit | quit
//
// Logged in:
//   - help
//   - addphotos <file...>  upload images
//   - addvideos <file...>  upload videos
//   - list | l             list stored media
//   - delete <index>       delete one record
//   - save <index> <path>  write a record back to disk
//   - clear                delete everything (asks for confirmation)
//   - resetpw | logout | exit | quit
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mv> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: addphotos <file...>, addvideos <file...>, (l)ist, delete <index>, save <index> <path>, clear, resetpw, logout, exit")
			} else {
				printlnFn("Available commands: register, login, resetpw, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "resetpw":
			_ = a.ResetPassword(ctx)

		case "addphotos":
			_ = a.AddPhotos(ctx, args)

		case "addvideos":
			_ = a.AddVideos(ctx, args)

		case "l", "list":
			_ = a.List(ctx)

		case "delete":
			_ = a.Delete(ctx, args)

		case "save":
			_ = a.Save(ctx, args)

		case "clear":
			_ = a.ClearAll(ctx)

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
