// Package cryptox implements password digest creation and verification.
//
// New digests use bcrypt. Digests written by the original client are plain
// unsalted MD5 hex; those still verify and are flagged so callers can
// re-hash them on the next successful login. MD5 is kept strictly as a
// compatibility format for existing users.json documents.
package cryptox

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt digests start with "$2a$", "$2b$" or "$2y$"; legacy MD5 hex never
// contains '$'.
const bcryptPrefix = "$2"

// LegacyDigest returns the hex MD5 digest the original client stores.
func LegacyDigest(password []byte) string {
	sum := md5.Sum(password)
	return hex.EncodeToString(sum[:])
}

// HashPassword derives a bcrypt digest for storage.
func HashPassword(password []byte) (string, error) {
	b, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether password matches the stored digest.
// legacy is true when the digest is in the old MD5 hex format, regardless
// of whether the password matched.
func VerifyPassword(digest string, password []byte) (ok, legacy bool) {
	if strings.HasPrefix(digest, bcryptPrefix) {
		return bcrypt.CompareHashAndPassword([]byte(digest), password) == nil, false
	}
	candidate := LegacyDigest(password)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1, true
}
