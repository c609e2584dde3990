package services

import (
	"context"
	"sync"

	"blogify/internal/client/models"
)

// fakeClient implements api.Client for unit tests. Counters are guarded by
// a mutex because the author directory issues lookups concurrently.
type fakeClient struct {
	mu sync.Mutex

	LoginErr    error
	RegisterErr error
	LogoutErr   error

	UsersRet []models.User
	UsersErr error

	UserByIDErr map[int64]error

	BlogsRet []models.Blog
	BlogsErr error

	BlogByIDRet *models.Blog
	BlogByIDErr error

	CreateErr error
	UpdateErr error
	DeleteErr error

	UpdateUserErr error
	DeleteUserErr error

	// call records
	LoginCalls      int
	LogoutCalls     int
	LookupCalls     int
	LookedUp        []int64
	BlogsCalls      int
	CreateCalls     int
	UpdateCalls     int
	DeleteCalls     int
	DeleteUserCalls int

	LastCreds      models.Identity
	LastUserPatch  models.User
	LastTitle      string
	LastContent    string
	LastBlogID     int64
	LastDeletedUID int64
}

func (f *fakeClient) Login(ctx context.Context, email, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	return f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, name, email, password string) error {
	return f.RegisterErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeClient) Users(ctx context.Context) ([]models.User, error) {
	return append([]models.User(nil), f.UsersRet...), f.UsersErr
}

func (f *fakeClient) UserByID(ctx context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	f.LookupCalls++
	f.LookedUp = append(f.LookedUp, id)
	f.mu.Unlock()

	if err, ok := f.UserByIDErr[id]; ok {
		return nil, err
	}
	for _, u := range f.UsersRet {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return &models.User{ID: id}, nil
}

func (f *fakeClient) UpdateUser(ctx context.Context, creds models.Identity, patch models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastCreds = creds
	f.LastUserPatch = patch
	return f.UpdateUserErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, creds models.Identity, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteUserCalls++
	f.LastCreds = creds
	f.LastDeletedUID = id
	return f.DeleteUserErr
}

func (f *fakeClient) Blogs(ctx context.Context) ([]models.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.BlogsCalls++
	return append([]models.Blog(nil), f.BlogsRet...), f.BlogsErr
}

func (f *fakeClient) BlogByID(ctx context.Context, id int64) (*models.Blog, error) {
	return f.BlogByIDRet, f.BlogByIDErr
}

func (f *fakeClient) CreateBlog(ctx context.Context, creds models.Identity, title, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	f.LastCreds = creds
	f.LastTitle = title
	f.LastContent = content
	return f.CreateErr
}

func (f *fakeClient) UpdateBlog(ctx context.Context, creds models.Identity, id int64, title, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	f.LastCreds = creds
	f.LastBlogID = id
	f.LastTitle = title
	f.LastContent = content
	return f.UpdateErr
}

func (f *fakeClient) DeleteBlog(ctx context.Context, creds models.Identity, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	f.LastCreds = creds
	f.LastBlogID = id
	return f.DeleteErr
}
