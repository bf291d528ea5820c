// Package hashing obfuscates media paths into expiring link tokens.
package hashing

import (
	"encoding/base64"
	"strings"
	"time"
)

const linkTimeLayout = "02.01.2006 15:04:05"

// Hash encodes a media path together with its expiry into a single opaque
// path segment.
func Hash(path string, expiry time.Time) string {
	plain := path + " " + expiry.UTC().Format(linkTimeLayout)
	return base64.RawURLEncoding.EncodeToString([]byte(plain))
}

// OpenHash decodes a token produced by Hash back into "path date time".
// Garbage input yields an empty string.
func OpenHash(token string) string {
	token = strings.TrimPrefix(token, "/")

	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return ""
	}
	return string(decoded)
}
