package encryption

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt(t *testing.T) {
	salt := filepath.Join(t.TempDir(), "salt")
	enc, err := NewEncryptor("correct horse", salt)
	require.NoError(t, err)

	sealed, err := enc.Encrypt(`[{"date":"2026-10-19","mood":4}]`)
	require.NoError(t, err)
	assert.NotContains(t, sealed, "2026-10-19")

	plain, err := enc.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, `[{"date":"2026-10-19","mood":4}]`, plain)
}

func TestSaltIsReused(t *testing.T) {
	salt := filepath.Join(t.TempDir(), "nested", "salt")
	first, err := NewEncryptor("pw", salt)
	require.NoError(t, err)
	sealed, err := first.Encrypt("hello")
	require.NoError(t, err)

	info, err := os.Stat(salt)
	require.NoError(t, err)
	assert.Equal(t, int64(SaltSize), info.Size())

	second, err := NewEncryptor("pw", salt)
	require.NoError(t, err)
	plain, err := second.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "hello", plain)
}

func TestWrongPassphraseFails(t *testing.T) {
	salt := filepath.Join(t.TempDir(), "salt")
	enc, err := NewEncryptor("pw", salt)
	require.NoError(t, err)
	sealed, err := enc.Encrypt("hello")
	require.NoError(t, err)

	other, err := NewEncryptor("other", salt)
	require.NoError(t, err)
	_, err = other.Decrypt(sealed)
	assert.Error(t, err)

	_, err = enc.Decrypt("not base64!")
	assert.Error(t, err)
	_, err = enc.Decrypt("YQ==")
	assert.Error(t, err)
}

func TestEmptyPassphraseRejected(t *testing.T) {
	_, err := NewEncryptor("", filepath.Join(t.TempDir(), "salt"))
	assert.Error(t, err)
}
