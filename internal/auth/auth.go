// Package auth validates tokens and carries the caller's identity through
// the request context.
package auth

import (
	"crypto/rsa"
	"net/http"
	"os"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"workforce/backend/foundation/web"
)

const (
	RoleAdmin    = "ADMIN"
	RoleManager  = "MANAGER"
	RoleEmployee = "EMPLOYEE"
)

type ctxKey int

// Key is how claims are stored and retrieved from a context.Context.
const Key ctxKey = 1

// Claims is the payload of both access and refresh tokens. Type
// distinguishes the two.
type Claims struct {
	UserId int    `json:"user_id"`
	Role   string `json:"role"`
	Type   string `json:"type"`
	jwt.StandardClaims
}

// Authorized reports whether the claim's role is in the allowed set. An
// empty set allows every authenticated caller.
func (c Claims) Authorized(roles ...string) bool {
	if len(roles) == 0 {
		return true
	}
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}

// Auth verifies token signatures against the service key pair.
type Auth struct {
	privateKey *rsa.PrivateKey
}

// New loads the RSA private key used for signing and verification.
func New(privateKeyPath string) (*Auth, error) {
	pemBytes, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading private key")
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, errors.Wrap(err, "parsing private key")
	}

	return &Auth{privateKey: privateKey}, nil
}

// ValidateToken parses and verifies an access token and returns its claims.
func (a *Auth) ValidateToken(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return &a.privateKey.PublicKey, nil
	})
	if err != nil {
		return Claims{}, web.NewRequestError(errors.Wrap(err, "parsing token"), http.StatusUnauthorized)
	}
	if !token.Valid {
		return Claims{}, web.NewRequestError(errors.New("invalid token"), http.StatusUnauthorized)
	}

	return claims, nil
}
