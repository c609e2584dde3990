// Package feed drives incremental rendering of the blog collection.
//
// Pagination is two-level: a coarse server page (fetched through a Loader)
// and a fine reveal window within it (the visible watermark, advanced by
// end-proximity signals or explicit requests). A client-side search filter
// sits between the two. Fetches are tagged with a generation number; a
// superseded fetch that settles late is discarded instead of overwriting
// newer state, which is the only form of cancellation the remote offers.
package feed

import (
	"context"
	"strings"
	"sync"

	"blogify/internal/client/models"
	"blogify/internal/client/services"
	"blogify/internal/logging"
)

const (
	// PageSize is the server-page size.
	PageSize = 12

	// InitialVisible is the watermark floor after a page or term change.
	InitialVisible = 6

	// RevealBatch is how many more items each advance uncovers.
	RevealBatch = 6
)

// State of the controller.
type State int

const (
	Idle State = iota
	LoadingPage
	Ready
)

func (s State) String() string {
	switch s {
	case LoadingPage:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "idle"
	}
}

// Loader produces one server page. services.BlogService satisfies it.
type Loader interface {
	ListPage(ctx context.Context, page, size int) services.Page
}

// Resolver annotates fetched blogs with author e-mails.
// services.AuthorDirectory satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, blogs []models.Blog, emails map[int64]string) map[int64]string
}

// Feed holds the render state for the blog list. Methods are safe for
// concurrent use; fetches may settle on other goroutines.
type Feed struct {
	loader   Loader
	resolver Resolver
	log      logging.Logger

	mu         sync.Mutex
	state      State
	page       int
	totalPages int
	totalBlogs int
	blogs      []models.Blog
	emails     map[int64]string
	term       string
	watermark  int
	loadFailed bool
	gen        uint64

	notifier Notifier
	cancel   func()
}

func New(loader Loader, resolver Resolver, log logging.Logger) *Feed {
	return &Feed{
		loader:    loader,
		resolver:  resolver,
		log:       log.With("component", "feed"),
		emails:    make(map[int64]string),
		watermark: InitialVisible,
	}
}

// SetPage loads the given server page, resetting the watermark to its
// floor. The call blocks until the fetch settles; if another SetPage was
// issued meanwhile, this fetch's result is discarded (resolved e-mails are
// still merged, since the author cache is append-only for the session).
func (f *Feed) SetPage(ctx context.Context, page int) {
	if page < 0 {
		page = 0
	}

	f.mu.Lock()
	f.state = LoadingPage
	f.page = page
	f.watermark = InitialVisible
	f.gen++
	gen := f.gen
	snapshot := f.emailsLocked()
	f.rearmLocked()
	f.mu.Unlock()

	result := f.loader.ListPage(ctx, page, PageSize)
	resolved := f.resolver.Resolve(ctx, result.Blogs, snapshot)

	f.mu.Lock()
	defer f.mu.Unlock()

	for id, email := range resolved {
		f.emails[id] = email
	}
	if gen != f.gen {
		f.log.Info(ctx, "discarding stale page load", "page", page)
		return
	}

	f.blogs = result.Blogs
	f.totalPages = result.TotalPages
	f.totalBlogs = result.TotalBlogs
	f.loadFailed = result.LoadFailed
	f.state = Ready
	f.rearmLocked()
}

// Refresh re-fetches the current page, e.g. after a mutation settled or
// when the user retries a failed load.
func (f *Feed) Refresh(ctx context.Context) {
	f.mu.Lock()
	page := f.page
	f.mu.Unlock()
	f.SetPage(ctx, page)
}

// SetSearchTerm changes the local filter. The watermark drops back to its
// floor because the candidate set changed; no remote fetch is triggered.
func (f *Feed) SetSearchTerm(term string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if term == f.term {
		return
	}
	f.term = term
	f.watermark = InitialVisible
	f.rearmLocked()
}

func (f *Feed) SearchTerm() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.term
}

// matches reports whether b survives the filter: the term must be a
// case-insensitive substring of the title, the content, or the author name.
// An empty term matches everything.
func matches(b models.Blog, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(b.Title), needle) ||
		strings.Contains(strings.ToLower(b.Content), needle) ||
		strings.Contains(strings.ToLower(b.AuthorName), needle)
}

func (f *Feed) filteredLocked() []models.Blog {
	if f.term == "" {
		return f.blogs
	}
	out := make([]models.Blog, 0, len(f.blogs))
	for _, b := range f.blogs {
		if matches(b, f.term) {
			out = append(out, b)
		}
	}
	return out
}

// Filtered returns the full filtered candidate set for the current page.
func (f *Feed) Filtered() []models.Blog {
	f.mu.Lock()
	defer f.mu.Unlock()
	candidates := f.filteredLocked()
	out := make([]models.Blog, len(candidates))
	copy(out, candidates)
	return out
}

// Visible returns the currently revealed window of the filtered set.
func (f *Feed) Visible() []models.Blog {
	f.mu.Lock()
	defer f.mu.Unlock()
	candidates := f.filteredLocked()
	n := f.watermark
	if n > len(candidates) {
		n = len(candidates)
	}
	out := make([]models.Blog, n)
	copy(out, candidates[:n])
	return out
}

// VisibleCount is the number of currently revealed items.
func (f *Feed) VisibleCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.filteredLocked())
	if f.watermark < n {
		return f.watermark
	}
	return n
}

// Remaining is how many filtered items are still hidden below the watermark.
func (f *Feed) Remaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.filteredLocked())
	if f.watermark >= n {
		return 0
	}
	return n - f.watermark
}

// advanceLocked raises the watermark by one batch, capped at the filtered
// candidate count. It never triggers a page fetch: exhausting the window
// only ever reveals what is already loaded.
func (f *Feed) advanceLocked() bool {
	n := len(f.filteredLocked())
	if f.watermark >= n {
		return false
	}
	f.watermark += RevealBatch
	if f.watermark > n {
		f.watermark = n
	}
	if f.watermark < InitialVisible {
		f.watermark = InitialVisible
	}
	return true
}

// Reveal advances the watermark on explicit user request. It reports
// whether anything new became visible.
func (f *Feed) Reveal() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	advanced := f.advanceLocked()
	if advanced {
		f.rearmLocked()
	}
	return advanced
}

func (f *Feed) Page() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page
}

func (f *Feed) TotalPages() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.totalPages
}

func (f *Feed) TotalBlogs() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.totalBlogs
}

func (f *Feed) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// LoadFailed reports whether the last settled fetch for the current page
// failed; the UI offers a retry in that case.
func (f *Feed) LoadFailed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loadFailed
}

func (f *Feed) emailsLocked() map[int64]string {
	out := make(map[int64]string, len(f.emails))
	for id, email := range f.emails {
		out[id] = email
	}
	return out
}

// Emails returns a copy of the session's author e-mail cache.
func (f *Feed) Emails() map[int64]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.emailsLocked()
}

// AuthorEmail returns the cached e-mail for an author id, or UnknownAuthor
// when the id has not been resolved.
func (f *Feed) AuthorEmail(id int64) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if email, ok := f.emails[id]; ok {
		return email
	}
	return services.UnknownAuthor
}
