package models

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// TokenPair is what the backend returns from a successful login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Identity is the reduced projection of the access token payload that we
// persist alongside the tokens. Role gating reads only from here.
type Identity struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// Session is the client-held proof of authentication: token pair plus the
// identity decoded from the access token.
type Session struct {
	Identity
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    int64  `json:"exp"` // seconds since epoch, from the token payload
}

// Expired reports whether the access token expiry has passed.
func (s *Session) Expired(now time.Time) bool {
	return time.Unix(s.ExpiresAt, 0).Before(now)
}
