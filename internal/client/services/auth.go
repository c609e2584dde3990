// Package services contains the application services of the Blogify client.
// This file defines the credential store: login, signup, logout, profile
// update, account deletion, and session restore at startup.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"blogify/internal/client/api"
	"blogify/internal/client/models"
	"blogify/internal/client/session"
	"blogify/internal/common"
	"blogify/internal/dbx"
	"blogify/internal/logging"
)

// ProfilePatch carries the fields a profile update may change. Empty fields
// are left untouched.
type ProfilePatch struct {
	Name     string
	Email    string
	Password string
}

// AuthService owns the session identity.
//
// Contract:
//   - Restore: load a previously persisted identity; absence or corruption
//     is non-fatal and simply yields no identity.
//   - Login/Signup: authenticate (or create) the account; on success the
//     in-memory identity and the persisted copy update together. On any
//     failure neither changes.
//   - Logout: always clears both copies; a failing remote notification is
//     logged, never surfaced.
//   - UpdateProfile: authenticated update using the current credential;
//     merges the patch locally on success.
//   - DeleteAccount: removes the account whose id matches the current
//     identity, then performs an implicit logout.
//   - Current: the live identity, or nil.
//
// The service assumes a single owner (the REPL loop); it is not safe for
// concurrent mutation.
type AuthService interface {
	Restore(ctx context.Context)
	Current() *models.Identity
	Login(ctx context.Context, email, password string) (*models.Identity, error)
	Signup(ctx context.Context, name, email, password string) (*models.Identity, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, patch ProfilePatch) error
	DeleteAccount(ctx context.Context, id int64) error
}

type authService struct {
	client   api.Client
	db       *sql.DB
	log      logging.Logger
	identity *models.Identity
}

// NewAuthService constructs an AuthService bound to the given API client
// and session database.
func NewAuthService(client api.Client, db *sql.DB, log logging.Logger) AuthService {
	return &authService{client: client, db: db, log: log.With("component", "auth")}
}

func (a *authService) store() session.Store {
	return session.NewSQLiteStore(a.db)
}

func (a *authService) Current() *models.Identity {
	return a.identity
}

// Restore loads the persisted identity, if any. Corrupt or missing data is
// treated as "not logged in", never as an error.
func (a *authService) Restore(ctx context.Context) {
	data, err := a.store().Get(ctx, common.SessionIdentityKey)
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
		return
	}
	if data == nil {
		return
	}
	var ident models.Identity
	if err := json.Unmarshal(data, &ident); err != nil {
		a.log.Warn(ctx, "discarding corrupt session record", "error", err)
		return
	}
	a.identity = &ident
	a.log.Info(ctx, "session restored", "email", ident.Email)
}

// persist writes the identity under the well-known key. It runs inside a
// transaction so a half-written record can never be restored later.
func (a *authService) persist(ctx context.Context, ident *models.Identity) error {
	data, err := json.Marshal(ident)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return session.NewSQLiteStore(tx).Set(ctx, common.SessionIdentityKey, data)
	})
}

// hydrate fills in id and name for a credential pair the backend has just
// accepted. The login endpoint only returns a text acknowledgment, so the
// profile comes from the user listing. A failed lookup is not fatal: the
// credential is already proven valid.
func (a *authService) hydrate(ctx context.Context, ident *models.Identity) {
	users, err := a.client.Users(ctx)
	if err != nil {
		a.log.Warn(ctx, "profile lookup failed after login", "error", err)
		return
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, ident.Email) {
			ident.ID = u.ID
			ident.Name = u.Name
			return
		}
	}
	a.log.Warn(ctx, "account missing from user listing", "email", ident.Email)
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", common.ErrorValidation)
	}

	if err := a.client.Login(ctx, email, password); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	ident := &models.Identity{Email: email, Password: password}
	a.hydrate(ctx, ident)

	if err := a.persist(ctx, ident); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	a.identity = ident
	return ident, nil
}

func (a *authService) Signup(ctx context.Context, name, email, password string) (*models.Identity, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required: %w", common.ErrorValidation)
	}

	if err := a.client.Register(ctx, name, email, password); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	ident := &models.Identity{Name: name, Email: email, Password: password}
	a.hydrate(ctx, ident)

	if err := a.persist(ctx, ident); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	a.identity = ident
	return ident, nil
}

// Logout clears the session unconditionally. The remote notification is
// best effort per the backend contract.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "remote logout failed", "error", err)
	}
	a.identity = nil
	if err := a.store().Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (a *authService) UpdateProfile(ctx context.Context, patch ProfilePatch) error {
	if a.identity == nil {
		return common.ErrNoIdentity
	}
	if patch.Name == "" && patch.Email == "" && patch.Password == "" {
		return fmt.Errorf("nothing to update: %w", common.ErrorValidation)
	}

	updated := *a.identity
	if patch.Name != "" {
		updated.Name = patch.Name
	}
	if patch.Email != "" {
		updated.Email = patch.Email
	}
	if patch.Password != "" {
		updated.Password = patch.Password
	}

	record := models.User{ID: updated.ID, Name: updated.Name, Email: updated.Email, Password: updated.Password}
	if err := a.client.UpdateUser(ctx, *a.identity, record); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	if err := a.persist(ctx, &updated); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	a.identity = &updated
	return nil
}

func (a *authService) DeleteAccount(ctx context.Context, id int64) error {
	if a.identity == nil {
		return common.ErrNoIdentity
	}
	if id != a.identity.ID {
		return fmt.Errorf("account id mismatch: %w", common.ErrorUnauthorized)
	}

	if err := a.client.DeleteUser(ctx, *a.identity, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return a.Logout(ctx)
}
