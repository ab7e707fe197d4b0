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
	Translate(ctx context.Context) error
	History(ctx context.Context) error
	ToggleFavorite(ctx context.Context) error
	SaveToFolder(ctx context.Context) error
	Folders(ctx context.Context) error
	NewFolder(ctx context.Context) error
	RenameFolder(ctx context.Context) error
	DeleteFolder(ctx context.Context) error
	Saved(ctx context.Context) error
	Favorites(ctx context.Context) error
	Delete(ctx context.Context) error
	Refresh(ctx context.Context) error
	Clear(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Rosetta CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - translate      — record a translation (cached, synced in background)
//	  - history        — list the local history cache
//	  - fav            — toggle a record's favorite flag
//	  - save           — file a record into a folder
//	  - folders        — list folders
//	  - newfolder      — create a folder
//	  - renamefolder   — rename a folder
//	  - delfolder      — delete a folder and its saved items
//	  - saved          — list saved items (optionally by folder)
//	  - favorites      — list favorite items
//	  - del            — delete a record from history or saved
//	  - refresh        — pull server-side history into the cache
//	  - clear          — wipe the local history cache
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rosetta %s> ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: (t)ranslate, (h)istory, fav, save, folders, newfolder, renamefolder, delfolder, saved, favorites, del, refresh, clear, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "t", "translate":
			_ = a.Translate(ctx)

		case "h", "history":
			_ = a.History(ctx)

		case "fav":
			_ = a.ToggleFavorite(ctx)

		case "save":
			_ = a.SaveToFolder(ctx)

		case "folders":
			_ = a.Folders(ctx)

		case "newfolder":
			_ = a.NewFolder(ctx)

		case "renamefolder":
			_ = a.RenameFolder(ctx)

		case "delfolder":
			_ = a.DeleteFolder(ctx)

		case "saved":
			_ = a.Saved(ctx)

		case "favorites":
			_ = a.Favorites(ctx)

		case "del":
			_ = a.Delete(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "clear":
			_ = a.Clear(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
