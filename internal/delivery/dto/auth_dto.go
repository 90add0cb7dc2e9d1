package dto

import "time"

// CurrentUser is the authenticated principal resolved from the session cookie.
type CurrentUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResult is the outcome of a completed Google login.
type LoginResult struct {
	SessionID string
	ExpiresAt time.Time
	IsNewUser bool
	Role      string
}
