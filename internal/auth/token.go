// Package auth verifies the bearer tokens issued by the account service.
// Tokens are HS256 JWTs carrying the user id and role; this backend never
// issues tokens, it only verifies them.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload shared with the account service.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ErrInvalidToken covers malformed, badly signed, or expired tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// Verifier validates bearer tokens against a shared HS256 secret.
type Verifier struct {
	secret []byte
}

// NewVerifier returns a Verifier for the given shared secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Parse validates the token string and returns its claims.
// Any parse, signature, or expiry failure maps to ErrInvalidToken.
func (v *Verifier) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Sign creates a token for the given identity. Production tokens come from
// the account service; this helper exists for tests and local tooling.
func (v *Verifier) Sign(userID int64, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
