package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"booru/model"
)

// Hash revisions stored alongside the password hash. Verify accepts every
// revision; new hashes are always written at the current one.
const (
	RevisionLegacySHA256 = 1
	RevisionBcrypt       = 2
)

// CreatePassword generates a random url-safe secret, used both as a salt
// and as the plaintext for password resets.
func CreatePassword() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}

// PasswordHash derives a hash for the salt/plaintext pair and returns it
// together with the revision it was produced under.
func PasswordHash(salt, password string) (string, int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(salt+password), bcrypt.DefaultCost)
	if err != nil {
		return "", 0, err
	}
	return string(hash), RevisionBcrypt, nil
}

// VerifyPassword checks the plaintext against the user's stored hash,
// honoring the revision the hash was written under.
func VerifyPassword(user *model.User, password string) bool {
	switch user.PasswordRevision {
	case RevisionBcrypt:
		err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(user.PasswordSalt+password))
		return err == nil
	case RevisionLegacySHA256:
		sum := sha256.Sum256([]byte(user.PasswordSalt + password))
		digest := hex.EncodeToString(sum[:])
		return subtle.ConstantTimeCompare([]byte(digest), []byte(user.PasswordHash)) == 1
	default:
		return false
	}
}
