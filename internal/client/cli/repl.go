package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Page(ctx context.Context, arg string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	More(ctx context.Context) error
	Refresh(ctx context.Context) error
	Show(ctx context.Context, arg string) error
	Authors(ctx context.Context) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
	Profile(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
}

// report prints a handler error for the user. Handlers return plain errors;
// the REPL is the single place deciding how they look.
func report(err error) {
	if err != nil {
		printlnFn("Error:", err.Error())
	}
}

// runREPL starts a read–eval–print loop for the Blogify CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Browsing commands work without a login; anything that mutates requires
// one:
//
//	Always available:
//	  - help                — show available commands
//	  - list | l            — show the current window of blogs
//	  - search <term>       — filter the loaded page (empty term clears)
//	  - page <n>            — jump to page n
//	  - next | prev         — step between pages
//	  - more                — reveal more of the current page
//	  - retry               — re-fetch after a failed load
//	  - show <id>           — display one blog
//	  - authors             — list registered authors
//	  - exit | quit         — leave the program
//
//	Not logged in:
//	  - register            — create an account
//	  - login               — authenticate
//
//	Logged in:
//	  - create              — publish a new blog
//	  - edit <id>           — rewrite a blog
//	  - delete <id>         — remove a blog
//	  - profile             — update name/e-mail/password
//	  - unregister          — delete the account
//	  - logout              — log out
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("blogify %s> ", statusFn()))
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
		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		switch cmd {
		case "help":
			printlnFn("Browse: (l)ist, search <term>, page <n>, next, prev, more, retry, show <id>, authors, exit")
			if a.isLoggedIn() {
				printlnFn("Write:  create, edit <id>, delete <id>, profile, unregister, logout")
			} else {
				printlnFn("Account: register, login")
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "l", "list":
			report(a.List(ctx))

		case "search":
			report(a.Search(ctx, strings.Join(args, " ")))

		case "page":
			report(a.Page(ctx, arg))

		case "next":
			report(a.Next(ctx))

		case "prev":
			report(a.Prev(ctx))

		case "more":
			report(a.More(ctx))

		case "retry", "refresh":
			report(a.Refresh(ctx))

		case "show":
			report(a.Show(ctx, arg))

		case "authors":
			report(a.Authors(ctx))

		case "create":
			report(a.Create(ctx))

		case "edit":
			report(a.Edit(ctx, arg))

		case "delete":
			report(a.Delete(ctx, arg))

		case "profile":
			report(a.Profile(ctx))

		case "unregister":
			report(a.DeleteAccount(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
