package services

import (
	"context"
	"fmt"
	"strings"

	"blogify/internal/client/api"
	"blogify/internal/client/models"
	"blogify/internal/common"
	"blogify/internal/logging"
)

// Page is one server page of the blog collection. The backend does not
// paginate /blogs, so pages are produced by slicing the full listing
// client-side; TotalPages is recomputed on every fetch and may shrink or
// grow between fetches.
type Page struct {
	Blogs      []models.Blog
	TotalPages int
	TotalBlogs int

	// LoadFailed marks a fetch that could not complete. The page is then
	// empty with zero totals; callers show a retry affordance instead of
	// crashing the render path.
	LoadFailed bool
}

// identitySource yields the identity mutations authenticate as. AuthService
// satisfies it; tests substitute a stub.
type identitySource interface {
	Current() *models.Identity
}

// BlogService fetches pages of the collection and performs identity-gated
// mutations. Mutations never touch local collection state; after a
// successful create/update/delete the caller re-fetches the affected page.
type BlogService interface {
	ListPage(ctx context.Context, page, size int) Page
	Get(ctx context.Context, id int64) (*models.Blog, error)
	Create(ctx context.Context, title, content string) error
	Update(ctx context.Context, id int64, title, content string) error
	Delete(ctx context.Context, id int64) error
}

type blogService struct {
	client api.Client
	ids    identitySource
	log    logging.Logger
}

func NewBlogService(client api.Client, ids identitySource, log logging.Logger) BlogService {
	return &blogService{client: client, ids: ids, log: log.With("component", "blogs")}
}

// ListPage fetches the collection and cuts out the requested page. Any
// failure yields an empty page flagged LoadFailed rather than an error.
func (s *blogService) ListPage(ctx context.Context, page, size int) Page {
	if page < 0 || size <= 0 {
		return Page{Blogs: []models.Blog{}}
	}

	blogs, err := s.client.Blogs(ctx)
	if err != nil {
		s.log.Error(ctx, "page load failed", "page", page, "error", err)
		return Page{Blogs: []models.Blog{}, LoadFailed: true}
	}

	total := len(blogs)
	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	// Server ordering within the slice is preserved as-is.
	items := make([]models.Blog, end-start)
	copy(items, blogs[start:end])

	return Page{
		Blogs:      items,
		TotalPages: (total + size - 1) / size,
		TotalBlogs: total,
	}
}

func (s *blogService) Get(ctx context.Context, id int64) (*models.Blog, error) {
	return s.client.BlogByID(ctx, id)
}

// requireIdentity gates mutations. Without a live identity no request is
// attempted at all.
func (s *blogService) requireIdentity() (*models.Identity, error) {
	ident := s.ids.Current()
	if ident == nil {
		return nil, common.ErrNoIdentity
	}
	return ident, nil
}

func validateDraft(title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return fmt.Errorf("title and content are required: %w", common.ErrorValidation)
	}
	return nil
}

func (s *blogService) Create(ctx context.Context, title, content string) error {
	ident, err := s.requireIdentity()
	if err != nil {
		return err
	}
	if err := validateDraft(title, content); err != nil {
		return err
	}
	if err := s.client.CreateBlog(ctx, *ident, title, content); err != nil {
		return fmt.Errorf("create blog: %w", err)
	}
	return nil
}

func (s *blogService) Update(ctx context.Context, id int64, title, content string) error {
	ident, err := s.requireIdentity()
	if err != nil {
		return err
	}
	if err := validateDraft(title, content); err != nil {
		return err
	}
	if err := s.client.UpdateBlog(ctx, *ident, id, title, content); err != nil {
		return fmt.Errorf("update blog %d: %w", id, err)
	}
	return nil
}

func (s *blogService) Delete(ctx context.Context, id int64) error {
	ident, err := s.requireIdentity()
	if err != nil {
		return err
	}
	if err := s.client.DeleteBlog(ctx, *ident, id); err != nil {
		return fmt.Errorf("delete blog %d: %w", id, err)
	}
	return nil
}
