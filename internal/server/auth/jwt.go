// Package auth verifies bearer tokens for the HTTP API. Tokens are
// HMAC-signed JWTs carrying the subject id, email and an admin role in one
// of two accepted claim shapes: a "role" string equal to "admin", or a
// boolean "admin" flag.
package auth

import (
	"strings"
	"time"

	"github.com/folderforge/folderforge/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

// Claims includes the registered claims plus the identity fields the
// server inspects.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	Admin bool   `json:"admin,omitempty"`
}

// Identity is the verified result of a token check.
type Identity struct {
	UID   string
	Email string
	Role  string
	Admin bool
}

// IsAdmin reports whether either accepted admin claim shape is present.
func (i *Identity) IsAdmin() bool {
	return i.Role == "admin" || i.Admin
}

// ExtractBearer returns the token portion of an Authorization header.
// A missing header or one without the "Bearer " prefix fails closed.
func ExtractBearer(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", common.ErrorInvalidAuthheaderFormat
	}
	token := strings.TrimPrefix(header, bearerPrefix)
	if token == "" {
		return "", common.ErrorInvalidAuthheaderFormat
	}
	return token, nil
}

// GenerateToken mints a signed token for the given identity. Used by
// tooling and tests; the production issuer lives outside this server.
func GenerateToken(identity *Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Email: identity.Email,
		Role:  identity.Role,
		Admin: identity.Admin,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken parses and validates a bearer token and returns the identity
// it asserts. Every call re-validates the signature; no session state is
// kept.
func VerifyToken(tokenString string, secretKey []byte) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return &Identity{
		UID:   claims.Subject,
		Email: claims.Email,
		Role:  claims.Role,
		Admin: claims.Admin,
	}, nil
}
