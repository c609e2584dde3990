package services

import (
	"context"

	"blogify/internal/client/api"
	"blogify/internal/client/models"
	"blogify/internal/logging"
)

// UnknownAuthor is the sentinel shown when an author's e-mail could not be
// resolved. A failed lookup degrades to this value instead of failing the
// list.
const UnknownAuthor = "Unknown"

// AuthorDirectory resolves author e-mails for fetched blogs.
type AuthorDirectory interface {
	// Resolve returns a new map containing everything in emails plus one
	// entry per distinct author id found in blogs. Ids already present are
	// never re-fetched; unresolved ids are looked up concurrently, and each
	// failure contributes UnknownAuthor. The input map is not mutated.
	Resolve(ctx context.Context, blogs []models.Blog, emails map[int64]string) map[int64]string

	// Users returns the full account listing.
	Users(ctx context.Context) ([]models.User, error)
}

type authorDirectory struct {
	client api.Client
	log    logging.Logger
}

func NewAuthorDirectory(client api.Client, log logging.Logger) AuthorDirectory {
	return &authorDirectory{client: client, log: log.With("component", "authors")}
}

func (d *authorDirectory) Users(ctx context.Context) ([]models.User, error) {
	return d.client.Users(ctx)
}

func (d *authorDirectory) Resolve(ctx context.Context, blogs []models.Blog, emails map[int64]string) map[int64]string {
	merged := make(map[int64]string, len(emails)+len(blogs))
	for id, email := range emails {
		merged[id] = email
	}

	seen := make(map[int64]struct{}, len(blogs))
	var pending []int64
	for _, b := range blogs {
		if _, ok := seen[b.AuthorID]; ok {
			continue
		}
		seen[b.AuthorID] = struct{}{}
		if _, ok := merged[b.AuthorID]; !ok {
			pending = append(pending, b.AuthorID)
		}
	}
	if len(pending) == 0 {
		return merged
	}

	// Fan out one lookup per unresolved id. Lookups run concurrently so
	// rendering latency does not grow with the number of distinct authors;
	// a single failure must neither block nor fail the others, so each
	// goroutine always reports a result.
	type lookup struct {
		id    int64
		email string
	}
	results := make(chan lookup, len(pending))
	for _, id := range pending {
		go func(id int64) {
			user, err := d.client.UserByID(ctx, id)
			if err != nil {
				d.log.Warn(ctx, "author lookup failed", "authorId", id, "error", err)
				results <- lookup{id: id, email: UnknownAuthor}
				return
			}
			results <- lookup{id: id, email: user.Email}
		}(id)
	}
	for range pending {
		r := <-results
		merged[r.id] = r.email
	}
	return merged
}
