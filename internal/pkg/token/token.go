// Package token issues and verifies the signed bearer tokens that carry a
// user's identity between requests. Tokens are HS256 JWTs over a
// process-wide secret; nothing is stored server-side.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed        = errors.New("token malformed")
	ErrSignatureInvalid = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
)

// Claims is the identity payload embedded in every token.
type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies tokens with a fixed secret. A zero TTL issues
// tokens without an expiry claim.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given identity. The issued-at claim is always
// set; the expiry claim only when the codec has a TTL.
func (c *Codec) Issue(id, username, role string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:   id,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if c.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(c.ttl))
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses and validates a token string, returning the embedded claims.
// All failures map onto one of the three sentinel errors above.
func (c *Codec) Verify(tok string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		default:
			return nil, ErrMalformed
		}
	}
	if !parsed.Valid {
		return nil, ErrSignatureInvalid
	}
	return claims, nil
}
