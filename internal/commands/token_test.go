package commands

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"workforce/backend/internal/auth"
)

func writeTestKey(t *testing.T) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}

	block := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}

	path := filepath.Join(t.TempDir(), "private.pem")
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		t.Fatalf("writing key: %v", err)
	}

	return path
}

func TestGenAndVerifyTokens(t *testing.T) {
	path := writeTestKey(t)

	access, refresh, err := GenToken(AuthClaims{ID: 7, Role: auth.RoleManager}, path)
	if err != nil {
		t.Fatalf("GenToken: %v", err)
	}

	accessClaims, refreshClaims, err := VerifyTokens(access, refresh, path)
	if err != nil {
		t.Fatalf("VerifyTokens: %v", err)
	}

	if accessClaims.UserId != 7 || refreshClaims.UserId != 7 {
		t.Fatalf("user id mismatch: access %d, refresh %d", accessClaims.UserId, refreshClaims.UserId)
	}
	if accessClaims.Role != auth.RoleManager {
		t.Fatalf("role = %s, want %s", accessClaims.Role, auth.RoleManager)
	}
	if accessClaims.Type != "access" || refreshClaims.Type != "refresh" {
		t.Fatalf("token types = %s/%s", accessClaims.Type, refreshClaims.Type)
	}
}

func TestVerifyTokensRejectsMismatchedPair(t *testing.T) {
	path := writeTestKey(t)

	access, _, err := GenToken(AuthClaims{ID: 1, Role: auth.RoleEmployee}, path)
	if err != nil {
		t.Fatalf("GenToken: %v", err)
	}
	_, otherRefresh, err := GenToken(AuthClaims{ID: 2, Role: auth.RoleEmployee}, path)
	if err != nil {
		t.Fatalf("GenToken: %v", err)
	}

	if _, _, err := VerifyTokens(access, otherRefresh, path); err == nil {
		t.Fatal("expected error for mismatched token pair")
	}
}

func TestVerifyTokensRejectsSwappedRoles(t *testing.T) {
	path := writeTestKey(t)

	access, refresh, err := GenToken(AuthClaims{ID: 3, Role: auth.RoleEmployee}, path)
	if err != nil {
		t.Fatalf("GenToken: %v", err)
	}

	// Refresh token passed where the access token belongs.
	if _, _, err := VerifyTokens(refresh, access, path); err == nil {
		t.Fatal("expected error for swapped tokens")
	}
}

func TestActionTokenRoundTrip(t *testing.T) {
	path := writeTestKey(t)

	token, err := GenActionToken(11, PurposeVerifyEmail, time.Hour, path)
	if err != nil {
		t.Fatalf("GenActionToken: %v", err)
	}

	id, err := VerifyActionToken(token, PurposeVerifyEmail, path)
	if err != nil {
		t.Fatalf("VerifyActionToken: %v", err)
	}
	if id != 11 {
		t.Fatalf("id = %d, want 11", id)
	}

	if _, err := VerifyActionToken(token, PurposeResetPassword, path); err == nil {
		t.Fatal("expected purpose mismatch error")
	}
}

func TestVerifyActionTokenRejectsExpired(t *testing.T) {
	path := writeTestKey(t)

	token, err := GenActionToken(5, PurposeResetPassword, -time.Minute, path)
	if err != nil {
		t.Fatalf("GenActionToken: %v", err)
	}

	if _, err := VerifyActionToken(token, PurposeResetPassword, path); err == nil {
		t.Fatal("expected expiry error")
	}
}
