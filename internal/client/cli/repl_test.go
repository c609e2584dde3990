package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeExec records which handlers the REPL dispatched to.
type fakeExec struct {
	loggedIn bool
	calls    []string
	errs     map[string]error
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	if f.errs != nil {
		return f.errs[name]
	}
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }
func (f *fakeExec) Login(ctx context.Context) error    { return f.record("login") }
func (f *fakeExec) Logout(ctx context.Context) error   { return f.record("logout") }
func (f *fakeExec) List(ctx context.Context) error     { return f.record("list") }
func (f *fakeExec) Search(ctx context.Context, term string) error {
	return f.record("search:" + term)
}
func (f *fakeExec) Page(ctx context.Context, arg string) error { return f.record("page:" + arg) }
func (f *fakeExec) Next(ctx context.Context) error             { return f.record("next") }
func (f *fakeExec) Prev(ctx context.Context) error             { return f.record("prev") }
func (f *fakeExec) More(ctx context.Context) error             { return f.record("more") }
func (f *fakeExec) Refresh(ctx context.Context) error          { return f.record("refresh") }
func (f *fakeExec) Show(ctx context.Context, arg string) error { return f.record("show:" + arg) }
func (f *fakeExec) Authors(ctx context.Context) error          { return f.record("authors") }
func (f *fakeExec) Create(ctx context.Context) error           { return f.record("create") }
func (f *fakeExec) Edit(ctx context.Context, arg string) error { return f.record("edit:" + arg) }
func (f *fakeExec) Delete(ctx context.Context, arg string) error {
	return f.record("delete:" + arg)
}
func (f *fakeExec) Profile(ctx context.Context) error       { return f.record("profile") }
func (f *fakeExec) DeleteAccount(ctx context.Context) error { return f.record("unregister") }

// runScript feeds the REPL a scripted session and captures its output.
func runScript(t *testing.T, exec *fakeExec, lines ...string) []string {
	t.Helper()

	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, fmt.Sprintln(a...))
		return 0, nil
	}
	defer func() { printlnFn = orig }()

	scanner := newScanner(strings.Join(lines, "\n"))
	runREPL(context.Background(), exec, func() string { return "guest" }, scanner)
	return out
}

func newScanner(input string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(input))
}

func TestREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec,
		"list",
		"l",
		"search garden tips",
		"page 2",
		"next",
		"prev",
		"more",
		"retry",
		"show 5",
		"authors",
		"exit",
	)

	require.Equal(t, []string{
		"list", "list", "search:garden tips", "page:2",
		"next", "prev", "more", "refresh", "show:5", "authors",
	}, exec.calls)
}

func TestREPL_AccountCommands(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runScript(t, exec,
		"register",
		"login",
		"create",
		"edit 3",
		"delete 4",
		"profile",
		"unregister",
		"logout",
		"quit",
	)

	require.Equal(t, []string{
		"register", "login", "create", "edit:3", "delete:4",
		"profile", "unregister", "logout",
	}, exec.calls)
}

func TestREPL_UnknownCommandIsReported(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(t, exec, "frobnicate", "exit")

	require.Empty(t, exec.calls)
	require.Contains(t, strings.Join(out, ""), "Unknown command: frobnicate")
}

func TestREPL_HandlerErrorIsPrintedAndLoopContinues(t *testing.T) {
	exec := &fakeExec{errs: map[string]error{"list": errors.New("backend down")}}
	out := runScript(t, exec, "list", "next", "exit")

	require.Equal(t, []string{"list", "next"}, exec.calls)
	require.Contains(t, strings.Join(out, ""), "Error: backend down")
}

func TestREPL_BlankLinesAreIgnored(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec, "", "   ", "list", "exit")

	require.Equal(t, []string{"list"}, exec.calls)
}

func TestREPL_EOFEndsLoop(t *testing.T) {
	exec := &fakeExec{}
	// No exit command; the scanner simply runs dry.
	runScript(t, exec, "list")

	require.Equal(t, []string{"list"}, exec.calls)
}

func TestREPL_HelpReflectsLoginState(t *testing.T) {
	out := strings.Join(runScript(t, &fakeExec{}, "help", "exit"), "")
	require.Contains(t, out, "register, login")
	require.NotContains(t, out, "unregister")

	out = strings.Join(runScript(t, &fakeExec{loggedIn: true}, "help", "exit"), "")
	require.Contains(t, out, "unregister")
}
