package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	salt1, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt1, SaltSize)

	salt2, err := GenerateSalt()
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2, "salts must be random")
}

func TestGenerateSaltBase64(t *testing.T) {
	saltB64, err := GenerateSaltBase64()
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(saltB64)
	require.NoError(t, err)
	assert.Len(t, decoded, SaltSize)
}

func TestDeriveKey(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	key, err := DeriveKey("correct horse battery staple", salt)
	require.NoError(t, err)
	assert.Len(t, key, Argon2KeyLen)
}

func TestDeriveKeyDeterministic(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	key1, err := DeriveKey("my-passphrase", salt)
	require.NoError(t, err)

	key2, err := DeriveKey("my-passphrase", salt)
	require.NoError(t, err)

	assert.Equal(t, key1, key2, "same passphrase and salt must derive the same key")
}

func TestDeriveKeyDifferentInputs(t *testing.T) {
	salt1, err := GenerateSalt()
	require.NoError(t, err)
	salt2, err := GenerateSalt()
	require.NoError(t, err)

	base, err := DeriveKey("my-passphrase", salt1)
	require.NoError(t, err)

	otherPass, err := DeriveKey("other-passphrase", salt1)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherPass)

	otherSalt, err := DeriveKey("my-passphrase", salt2)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherSalt)
}

func TestDeriveKeyEmptyPassphrase(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	_, err = DeriveKey("", salt)
	assert.Error(t, err)
}

func TestDeriveKeyEmptySalt(t *testing.T) {
	_, err := DeriveKey("my-passphrase", nil)
	assert.Error(t, err)
}

func TestDeriveConvergentKey(t *testing.T) {
	key1, err := DeriveConvergentKey("my-passphrase")
	require.NoError(t, err)
	assert.Len(t, key1, Argon2KeyLen)

	// Один и тот же ключ без внешней соли - условие кросс-девайсной
	// дедупликации
	key2, err := DeriveConvergentKey("my-passphrase")
	require.NoError(t, err)
	assert.Equal(t, key1, key2)

	other, err := DeriveConvergentKey("other-passphrase")
	require.NoError(t, err)
	assert.NotEqual(t, key1, other)

	_, err = DeriveConvergentKey("")
	assert.Error(t, err)
}

func TestDeriveKeyBase64(t *testing.T) {
	saltB64, err := GenerateSaltBase64()
	require.NoError(t, err)

	key, err := DeriveKeyBase64("my-passphrase", saltB64)
	require.NoError(t, err)
	assert.Len(t, key, Argon2KeyLen)

	key2, err := DeriveKeyBase64("my-passphrase", saltB64)
	require.NoError(t, err)
	assert.Equal(t, key, key2)

	_, err = DeriveKeyBase64("my-passphrase", "not-valid-base64!!!")
	assert.Error(t, err)
}
