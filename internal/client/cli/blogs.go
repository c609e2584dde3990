package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"blogify/internal/client/feed"
)

// printWindow renders the revealed portion of the current page.
func (a *App) printWindow() {
	if a.feed.LoadFailed() {
		printlnFn("Failed to load blogs. Type 'retry' to try again.")
		return
	}

	visible := a.feed.Visible()
	if len(visible) == 0 {
		if a.feed.SearchTerm() != "" {
			printlnFn("No blogs match your search.")
		} else {
			printlnFn("No blogs on this page.")
		}
		return
	}

	for _, b := range visible {
		printlnFn(fmt.Sprintf("[%d] %s — %s <%s>", b.ID, b.Title, b.AuthorName, a.feed.AuthorEmail(b.AuthorID)))
	}

	filtered := len(a.feed.Filtered())
	printlnFn(fmt.Sprintf("Showing %d of %d on page %d/%d.",
		a.feed.VisibleCount(), filtered, a.feed.Page()+1, a.feed.TotalPages()))
	if remaining := a.feed.Remaining(); remaining > 0 {
		printlnFn(fmt.Sprintf("Type 'more' to reveal %d remaining.", remaining))
	}
}

// ensureLoaded fetches the first page the first time the list is used.
func (a *App) ensureLoaded(ctx context.Context) {
	if a.feed.State() == feed.Idle {
		a.feed.SetPage(ctx, 0)
	}
}

func (a *App) List(ctx context.Context) error {
	a.ensureLoaded(ctx)
	a.printWindow()
	return nil
}

// Search filters the already-fetched page locally; it never refetches.
func (a *App) Search(ctx context.Context, term string) error {
	a.ensureLoaded(ctx)
	a.feed.SetSearchTerm(term)
	a.printWindow()
	return nil
}

func (a *App) Page(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		printlnFn("Usage: page <n>")
		return nil
	}
	if total := a.feed.TotalPages(); total > 0 && n > total {
		printlnFn(fmt.Sprintf("There are only %d pages.", total))
		return nil
	}
	a.feed.SetPage(ctx, n-1)
	a.printWindow()
	return nil
}

func (a *App) Next(ctx context.Context) error {
	a.ensureLoaded(ctx)
	if a.feed.Page()+1 >= a.feed.TotalPages() {
		printlnFn("Already on the last page.")
		return nil
	}
	a.feed.SetPage(ctx, a.feed.Page()+1)
	a.printWindow()
	return nil
}

func (a *App) Prev(ctx context.Context) error {
	if a.feed.Page() == 0 {
		printlnFn("Already on the first page.")
		return nil
	}
	a.feed.SetPage(ctx, a.feed.Page()-1)
	a.printWindow()
	return nil
}

// More simulates the end-of-viewport signal: the notifier delivers it to
// the feed's current subscription, which advances the watermark.
func (a *App) More(ctx context.Context) error {
	before := a.feed.VisibleCount()
	a.signal.Fire()
	if a.feed.VisibleCount() == before {
		printlnFn("Nothing more to show on this page.")
		return nil
	}
	a.printWindow()
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	a.feed.Refresh(ctx)
	a.printWindow()
	return nil
}

// promptID resolves a blog id from the command argument or interactively.
func (a *App) promptID(arg, prompt string) (int64, error) {
	if arg == "" {
		var err error
		arg, err = getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return 0, err
		}
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid blog id %q", arg)
	}
	return id, nil
}

func (a *App) Show(ctx context.Context, arg string) error {
	id, err := a.promptID(arg, "Enter blog id")
	if err != nil {
		return err
	}

	blog, err := a.blogs.Get(ctx, id)
	if err != nil {
		return err
	}

	printlnFn(blog.Title)
	printlnFn(fmt.Sprintf("by %s <%s>, updated %s", blog.AuthorName,
		a.feed.AuthorEmail(blog.AuthorID), blog.UpdatedAt.Format("2006-01-02 15:04")))
	printlnFn("")
	printlnFn(blog.Content)
	return nil
}

func (a *App) Create(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter content:", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.blogs.Create(ctx, title, content); err != nil {
		return err
	}
	printlnFn("Published.")
	// The backend owns the collection; re-fetch to observe the change.
	a.feed.Refresh(ctx)
	return nil
}

func (a *App) Edit(ctx context.Context, arg string) error {
	id, err := a.promptID(arg, "Enter blog id to edit")
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Enter new title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter new content:", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.blogs.Update(ctx, id, title, content); err != nil {
		return err
	}
	printlnFn("Updated.")
	a.feed.Refresh(ctx)
	return nil
}

func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := a.promptID(arg, "Enter blog id to delete")
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete blog %d? (yes/no)", id), os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.blogs.Delete(ctx, id); err != nil {
		return err
	}
	printlnFn("Deleted.")
	a.feed.Refresh(ctx)
	return nil
}
