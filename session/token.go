package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	"github.com/bctDaGithub/orchid-storefront/models"
)

// ErrMalformedToken means the access token payload could not be decoded.
// Decoding fails closed: callers treat the session as absent.
var ErrMalformedToken = errors.New("malformed access token")

// Claims is the identity projection carried in the access token payload.
type Claims struct {
	UserID    int64
	Email     string
	Role      models.Role
	ExpiresAt int64
}

// DecodeAccessToken extracts the claims from a bearer token without verifying
// the signature. Signature verification is the backend's job; the client only
// needs the identity projection and expiry.
func DecodeAccessToken(tokenStr string) (*Claims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	userID, ok := claimInt64(claims, "userId")
	if !ok {
		return nil, fmt.Errorf("%w: missing userId claim", ErrMalformedToken)
	}
	email, _ := claims["email"].(string)
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return nil, fmt.Errorf("%w: missing role claim", ErrMalformedToken)
	}
	exp, ok := claimInt64(claims, "exp")
	if !ok {
		return nil, fmt.Errorf("%w: missing exp claim", ErrMalformedToken)
	}

	return &Claims{
		UserID:    userID,
		Email:     email,
		Role:      models.Role(role),
		ExpiresAt: exp,
	}, nil
}

// Numeric claims arrive as float64 from JSON decoding.
func claimInt64(claims jwt.MapClaims, key string) (int64, bool) {
	switch v := claims[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}
