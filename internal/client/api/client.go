// Package api implements the typed client for the Blogify REST backend.
//
// The backend's contract is fixed: JSON bodies, Basic credentials on every
// mutating request, and an unpaginated /blogs collection. This package only
// translates between Go types and that contract; policy (validation,
// identity gating, pagination) lives in the service layer.
package api

import (
	"context"

	"blogify/internal/client/models"
)

// Client is the remote API surface consumed by the services.
type Client interface {
	// Login verifies the credential pair. The backend answers with a plain
	// text body on success; only the status matters to the client.
	Login(ctx context.Context, email, password string) error

	// Register creates a new account.
	Register(ctx context.Context, name, email, password string) error

	// Logout notifies the backend. Best effort; callers ignore failures.
	Logout(ctx context.Context) error

	// Users returns every account record.
	Users(ctx context.Context) ([]models.User, error)

	// UserByID returns a single account record.
	UserByID(ctx context.Context, id int64) (*models.User, error)

	// UpdateUser sends an authenticated profile update for the account the
	// credentials belong to.
	UpdateUser(ctx context.Context, creds models.Identity, patch models.User) error

	// DeleteUser removes the account with the given id.
	DeleteUser(ctx context.Context, creds models.Identity, id int64) error

	// Blogs returns the full, unpaginated post collection.
	Blogs(ctx context.Context) ([]models.Blog, error)

	// BlogByID returns a single post.
	BlogByID(ctx context.Context, id int64) (*models.Blog, error)

	// CreateBlog publishes a new post. Timestamps are set client-side, as
	// the backend expects them in the request body.
	CreateBlog(ctx context.Context, creds models.Identity, title, content string) error

	// UpdateBlog rewrites title and content of an existing post.
	UpdateBlog(ctx context.Context, creds models.Identity, id int64, title, content string) error

	// DeleteBlog removes a post.
	DeleteBlog(ctx context.Context, creds models.Identity, id int64) error
}
