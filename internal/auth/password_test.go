package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booru/model"
)

func TestCreatePassword(t *testing.T) {
	a := CreatePassword()
	b := CreatePassword()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	assert.GreaterOrEqual(t, len(a), 24)
}

func TestPasswordHashAndVerify(t *testing.T) {
	salt := CreatePassword()
	hash, revision, err := PasswordHash(salt, "hunter2!")
	require.NoError(t, err)
	assert.Equal(t, RevisionBcrypt, revision)

	user := &model.User{
		PasswordSalt:     salt,
		PasswordHash:     hash,
		PasswordRevision: revision,
	}
	assert.True(t, VerifyPassword(user, "hunter2!"))
	assert.False(t, VerifyPassword(user, "hunter3!"))

	// a different salt must not verify even with the right plaintext
	user.PasswordSalt = CreatePassword()
	assert.False(t, VerifyPassword(user, "hunter2!"))
}

func TestVerifyLegacySHA256Revision(t *testing.T) {
	sum := sha256.Sum256([]byte("oldsalt" + "legacy pass"))
	user := &model.User{
		PasswordSalt:     "oldsalt",
		PasswordHash:     hex.EncodeToString(sum[:]),
		PasswordRevision: RevisionLegacySHA256,
	}

	assert.True(t, VerifyPassword(user, "legacy pass"))
	assert.False(t, VerifyPassword(user, "wrong pass"))
}

func TestVerifyUnknownRevision(t *testing.T) {
	user := &model.User{PasswordHash: "whatever", PasswordRevision: 99}
	assert.False(t, VerifyPassword(user, "whatever"))
}
