// Package models holds the data types exchanged with the Blogify backend
// and kept in the local session.
package models

// User is an account record as the backend returns it from /user endpoints.
// The backend includes the raw password in user listings; that is part of
// its contract, not a choice made here.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Identity is the authenticated account for the current session: profile
// fields plus the raw secret needed to authenticate subsequent requests.
// At most one Identity is live per session, owned by the auth service;
// its presence gates every mutating operation.
type Identity struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
