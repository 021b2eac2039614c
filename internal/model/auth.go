package model

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionUser is the identity shape returned by login and session checks.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResult carries the session token alongside the merged profile.
type LoginResult struct {
	User        SessionUser `json:"user"`
	AccessToken string      `json:"accessToken"`
}

// TokenClaims is the validated identity attached to a request.
type TokenClaims struct {
	UserID    string
	Email     string
	SessionID string
}
