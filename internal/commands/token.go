package commands

import (
	"crypto/rsa"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"workforce/backend/internal/auth"
)

const (
	accessTokenTTL  = 6 * time.Hour
	refreshTokenTTL = 72 * time.Hour
)

// Purposes for single-use action tokens mailed to the account owner.
const (
	PurposeVerifyEmail   = "verify-email"
	PurposeResetPassword = "reset-password"
)

// AuthClaims is the identity baked into a token pair.
type AuthClaims struct {
	ID   int
	Role string
}

func loadPrivateKey(path string) (*rsa.PrivateKey, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading private key")
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, errors.Wrap(err, "parsing private key")
	}

	return key, nil
}

// GenToken signs an access/refresh token pair for the given identity.
func GenToken(data AuthClaims, privateKeyPath string) (string, string, error) {
	key, err := loadPrivateKey(privateKeyPath)
	if err != nil {
		return "", "", err
	}

	now := time.Now()

	accessClaims := auth.Claims{
		UserId: data.ID,
		Role:   data.Role,
		Type:   "access",
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(accessTokenTTL).Unix(),
		},
	}

	refreshClaims := auth.Claims{
		UserId: data.ID,
		Role:   data.Role,
		Type:   "refresh",
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(refreshTokenTTL).Unix(),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodRS256, accessClaims).SignedString(key)
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodRS256, refreshClaims).SignedString(key)
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return accessToken, refreshToken, nil
}

// VerifyTokens checks a token pair for reissue. The refresh token must be
// valid and unexpired; the access token only needs a valid signature, it is
// allowed to be expired.
func VerifyTokens(accessToken, refreshToken, privateKeyPath string) (auth.Claims, auth.Claims, error) {
	key, err := loadPrivateKey(privateKeyPath)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, err
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return &key.PublicKey, nil
	}

	var accessClaims auth.Claims
	if _, err := jwt.ParseWithClaims(accessToken, &accessClaims, keyFunc); err != nil {
		validationErr, ok := err.(*jwt.ValidationError)
		if !ok || validationErr.Errors != jwt.ValidationErrorExpired {
			return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "parsing access token")
		}
	}
	if accessClaims.Type != "access" {
		return auth.Claims{}, auth.Claims{}, errors.New("token is not an access token")
	}

	var refreshClaims auth.Claims
	token, err := jwt.ParseWithClaims(refreshToken, &refreshClaims, keyFunc)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "parsing refresh token")
	}
	if !token.Valid {
		return auth.Claims{}, auth.Claims{}, errors.New("invalid refresh token")
	}
	if refreshClaims.Type != "refresh" {
		return auth.Claims{}, auth.Claims{}, errors.New("token is not a refresh token")
	}

	if accessClaims.UserId != refreshClaims.UserId {
		return auth.Claims{}, auth.Claims{}, errors.New("token pair mismatch")
	}

	return accessClaims, refreshClaims, nil
}

type actionClaims struct {
	UserID  int    `json:"user_id"`
	Purpose string `json:"purpose"`
	jwt.StandardClaims
}

// GenActionToken signs a short-lived token for a mailed action link.
func GenActionToken(userID int, purpose string, ttl time.Duration, privateKeyPath string) (string, error) {
	key, err := loadPrivateKey(privateKeyPath)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := actionClaims{
		UserID:  userID,
		Purpose: purpose,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", errors.Wrap(err, "signing action token")
	}

	return token, nil
}

// VerifyActionToken checks a mailed action token and returns the account it
// was issued for.
func VerifyActionToken(tokenStr, purpose, privateKeyPath string) (int, error) {
	key, err := loadPrivateKey(privateKeyPath)
	if err != nil {
		return 0, err
	}

	var claims actionClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return &key.PublicKey, nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "parsing action token")
	}
	if !token.Valid {
		return 0, errors.New("invalid action token")
	}
	if claims.Purpose != purpose {
		return 0, errors.Errorf("token purpose mismatch: %s", claims.Purpose)
	}

	return claims.UserID, nil
}
