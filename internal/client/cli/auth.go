package cli

import (
	"context"
	"fmt"
	"os"

	"blogify/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, e-mail and password and creates an account.
// On success the new identity is logged in and persisted.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	ident, err := a.auth.Signup(ctx, name, email, password)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Welcome, %s!", ident.Name))
	return nil
}

// Login prompts for credentials and authenticates. The session persists
// across restarts until logout.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	ident, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Logged in as %s", ident.Email))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Profile shows the current identity and collects an update. Empty answers
// keep the existing value.
func (a *App) Profile(ctx context.Context) error {
	ident := a.auth.Current()
	if ident == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(fmt.Sprintf("Name: %s", ident.Name))
	printlnFn(fmt.Sprintf("Email: %s", ident.Email))

	name, err := getSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getSimpleText(a.reader, "New password (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	patch := services.ProfilePatch{Name: name, Email: email, Password: password}
	if err := a.auth.UpdateProfile(ctx, patch); err != nil {
		return err
	}
	printlnFn("Profile updated.")
	return nil
}

// Authors lists every registered account, name and e-mail.
func (a *App) Authors(ctx context.Context) error {
	users, err := a.authors.Users(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		printlnFn("No registered authors.")
		return nil
	}
	for _, u := range users {
		printlnFn(fmt.Sprintf("%s <%s>", u.Name, u.Email))
	}
	return nil
}

// DeleteAccount removes the current account after confirmation and logs
// the session out.
func (a *App) DeleteAccount(ctx context.Context) error {
	ident := a.auth.Current()
	if ident == nil {
		printlnFn("Not logged in.")
		return nil
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete account %s? (yes/no)", ident.Email), os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.auth.DeleteAccount(ctx, ident.ID); err != nil {
		return err
	}
	printlnFn("Account deleted.")
	return nil
}
