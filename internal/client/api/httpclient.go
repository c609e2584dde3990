package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"blogify/internal/client/models"
	"blogify/internal/common"
)

// HTTPClient talks to the Blogify backend over plain HTTP. All paths are
// relative to baseURL; every request carries a client-generated request id.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	now     func() time.Time
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the backend at baseURL. A zero timeout
// disables the per-request deadline.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createBlogRequest struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type updateBlogRequest struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// newRequest builds a JSON request. body may be nil. creds may be nil for
// unauthenticated calls; otherwise the Basic header is attached, which is
// the only authentication scheme the backend understands.
func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body any, creds *models.Identity) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if creds != nil {
		req.SetBasicAuth(creds.Email, creds.Password)
	}
	return req, nil
}

// do executes the request and maps any failure into the shared error
// taxonomy. On success the response body is returned for decoding.
func (c *HTTPClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %v: %w", req.Method, req.URL.Path, err, common.ErrUnavailable)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %v: %w", req.Method, req.URL.Path, err, common.ErrUnavailable)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}
	return nil, c.mapError(req, resp.StatusCode, data)
}

// mapError classifies a non-2xx response. The status code is authoritative
// where the backend sends a meaningful one; some mutation endpoints answer
// with a generic status and a free-text body, so as a fallback the body is
// matched for "unauthorized". That substring match mirrors the backend's
// actual behavior and is a known-fragile part of its contract.
func (c *HTTPClient) mapError(req *http.Request, status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, common.ErrorUnauthorized)
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, common.ErrorNotFound)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%s %s: %s: %w", req.Method, req.URL.Path, strings.TrimSpace(string(body)), common.ErrorValidation)
	}
	if strings.Contains(strings.ToLower(string(body)), "unauthorized") {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, common.ErrorUnauthorized)
	}
	return fmt.Errorf("%s %s: status %d: %w", req.Method, req.URL.Path, status, common.ErrUnavailable)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/user/login", loginRequest{Email: email, Password: password}, nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/user/newUser", registerRequest{Name: name, Email: email, Password: password}, nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/user/logout", nil, nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

func (c *HTTPClient) Users(ctx context.Context) ([]models.User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/user", nil, nil)
	if err != nil {
		return nil, err
	}
	data, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode users: %v: %w", err, common.ErrUnavailable)
	}
	return users, nil
}

func (c *HTTPClient) UserByID(ctx context.Context, id int64) (*models.User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/user/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	data, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode user: %v: %w", err, common.ErrUnavailable)
	}
	return &user, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, creds models.Identity, patch models.User) error {
	req, err := c.newRequest(ctx, http.MethodPut, "/user", patch, &creds)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

func (c *HTTPClient) DeleteUser(ctx context.Context, creds models.Identity, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/user/%d", id), nil, &creds)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

func (c *HTTPClient) Blogs(ctx context.Context) ([]models.Blog, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/blogs", nil, nil)
	if err != nil {
		return nil, err
	}
	data, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var blogs []models.Blog
	if err := json.Unmarshal(data, &blogs); err != nil {
		return nil, fmt.Errorf("decode blogs: %v: %w", err, common.ErrUnavailable)
	}
	return blogs, nil
}

func (c *HTTPClient) BlogByID(ctx context.Context, id int64) (*models.Blog, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/blogs/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	data, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var blog models.Blog
	if err := json.Unmarshal(data, &blog); err != nil {
		return nil, fmt.Errorf("decode blog: %v: %w", err, common.ErrUnavailable)
	}
	return &blog, nil
}

func (c *HTTPClient) CreateBlog(ctx context.Context, creds models.Identity, title, content string) error {
	now := c.now().UTC()
	body := createBlogRequest{Title: title, Content: content, CreatedAt: now, UpdatedAt: now}
	req, err := c.newRequest(ctx, http.MethodPost, "/blogs/create", body, &creds)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

func (c *HTTPClient) UpdateBlog(ctx context.Context, creds models.Identity, id int64, title, content string) error {
	body := updateBlogRequest{Title: title, Content: content, UpdatedAt: c.now().UTC()}
	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/blogs/update/%d", id), body, &creds)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

func (c *HTTPClient) DeleteBlog(ctx context.Context, creds models.Identity, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/blogs/delete/%d", id), nil, &creds)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}
