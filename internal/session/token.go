package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/teamupapp/teamup/internal/errors"
)

// TokenInfo is display metadata decoded from the bearer token's payload.
// The claims are NOT verified: the backend is the only party that validates
// signatures, the client decodes purely to show expiry in `auth status`.
type TokenInfo struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim lies in the past.
// Tokens without an exp claim are never considered expired locally.
func (t TokenInfo) Expired() bool {
	return !t.ExpiresAt.IsZero() && time.Now().After(t.ExpiresAt)
}

// ParseTokenInfo decodes a JWT payload without verifying its signature
func ParseTokenInfo(token string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAuthTokenExpired, "token is not a decodable JWT", err)
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
