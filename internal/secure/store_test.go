package secure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingCipher tags values so tests can observe which path they took.
type recordingCipher struct {
	encryptCalls int
	decryptCalls int
	failEncrypt  bool
	failDecrypt  bool
}

func (c *recordingCipher) Encrypt(plain string) (string, error) {
	c.encryptCalls++
	if c.failEncrypt {
		return "", errors.New("encrypt failed")
	}
	return "enc(" + plain + ")", nil
}

func (c *recordingCipher) Decrypt(opaque string) (string, error) {
	c.decryptCalls++
	if c.failDecrypt {
		return "", errors.New("decrypt failed")
	}
	return opaque[4 : len(opaque)-1], nil
}

func TestIsSensitiveField(t *testing.T) {
	tests := []struct {
		key       string
		sensitive bool
	}{
		{key: "name", sensitive: true},
		{key: "email", sensitive: true},
		{key: "phone", sensitive: true},
		{key: "location", sensitive: true},
		{key: "experience", sensitive: false},
		{key: "position", sensitive: false},
		{key: "tech_stack", sensitive: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.sensitive, IsSensitiveField(tt.key))
		})
	}
}

func TestFieldStoreSensitiveRoundTrip(t *testing.T) {
	cipher := &recordingCipher{}
	store := NewFieldStore(cipher)

	require.NoError(t, store.Put("email", "john@example.com"))
	require.NoError(t, store.Put("experience", "5"))

	email, err := store.Get("email")
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", email)

	experience, err := store.Get("experience")
	require.NoError(t, err)
	assert.Equal(t, "5", experience)

	// Only the sensitive key should touch the cipher.
	assert.Equal(t, 1, cipher.encryptCalls)
	assert.Equal(t, 1, cipher.decryptCalls)
}

func TestFieldStoreAEADRoundTrip(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	cipher, err := NewAEADCipher(key)
	require.NoError(t, err)
	store := NewFieldStore(cipher)

	require.NoError(t, store.Put("phone", "+44 20 7946 0958"))

	phone, err := store.Get("phone")
	require.NoError(t, err)
	assert.Equal(t, "+44 20 7946 0958", phone)
}

func TestFieldStoreMissingKey(t *testing.T) {
	store := NewFieldStore(EncodingCipher{})

	value, err := store.Get("email")
	require.NoError(t, err)
	assert.Empty(t, value)
	assert.False(t, store.Has("email"))
}

func TestFieldStoreOverwrite(t *testing.T) {
	store := NewFieldStore(EncodingCipher{})

	require.NoError(t, store.Put("name", "John Doe"))
	require.NoError(t, store.Put("name", "Jane Doe"))

	name, err := store.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", name)
}

func TestFieldStorePutEncryptFailure(t *testing.T) {
	store := NewFieldStore(&recordingCipher{failEncrypt: true})

	err := store.Put("email", "john@example.com")
	assert.Error(t, err)
	assert.False(t, store.Has("email"))
}

func TestFieldStoreGetDecryptFailure(t *testing.T) {
	cipher := &recordingCipher{}
	store := NewFieldStore(cipher)
	require.NoError(t, store.Put("email", "john@example.com"))

	cipher.failDecrypt = true
	_, err := store.Get("email")
	assert.Error(t, err)
}

func TestFieldStoreSnapshot(t *testing.T) {
	store := NewFieldStore(EncodingCipher{})

	require.NoError(t, store.Put("name", "John Doe"))
	require.NoError(t, store.Put("email", "john@example.com"))
	require.NoError(t, store.Put("tech_stack", "Python, React"))

	snapshot, err := store.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"name":       "John Doe",
		"email":      "john@example.com",
		"tech_stack": "Python, React",
	}, snapshot)

	assert.ElementsMatch(t, []string{"name", "email", "tech_stack"}, store.Keys())
}
