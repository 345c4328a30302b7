package secure

import "fmt"

// sensitiveFields are profile keys that must be encrypted at rest.
var sensitiveFields = map[string]bool{
	"name":     true,
	"email":    true,
	"phone":    true,
	"location": true,
}

// IsSensitiveField reports whether the profile key holds PII that
// requires encrypted storage.
func IsSensitiveField(key string) bool {
	return sensitiveFields[key]
}

type fieldRecord struct {
	value     string
	encrypted bool
}

// FieldStore is a key-value store for candidate profile fields.
// Sensitive keys pass through the injected Cipher transparently; callers
// always see plaintext.
type FieldStore struct {
	cipher Cipher
	fields map[string]fieldRecord
}

// NewFieldStore creates an empty store backed by the given cipher.
func NewFieldStore(cipher Cipher) *FieldStore {
	return &FieldStore{
		cipher: cipher,
		fields: make(map[string]fieldRecord),
	}
}

// Put stores a field value, encrypting it first when the key is
// sensitive. Keys written encrypted are always read back through the
// decrypt path.
func (s *FieldStore) Put(key, value string) error {
	if IsSensitiveField(key) {
		encrypted, err := s.cipher.Encrypt(value)
		if err != nil {
			return fmt.Errorf("failed to encrypt field %s: %w", key, err)
		}
		s.fields[key] = fieldRecord{value: encrypted, encrypted: true}
		return nil
	}
	s.fields[key] = fieldRecord{value: value}
	return nil
}

// Get returns the plaintext value for a key, or empty string if the key
// was never written.
func (s *FieldStore) Get(key string) (string, error) {
	record, ok := s.fields[key]
	if !ok {
		return "", nil
	}
	if record.encrypted {
		plain, err := s.cipher.Decrypt(record.value)
		if err != nil {
			return "", fmt.Errorf("failed to decrypt field %s: %w", key, err)
		}
		return plain, nil
	}
	return record.value, nil
}

// Has reports whether the key has an accepted value.
func (s *FieldStore) Has(key string) bool {
	_, ok := s.fields[key]
	return ok
}

// Keys returns the stored field keys in no particular order.
func (s *FieldStore) Keys() []string {
	keys := make([]string, 0, len(s.fields))
	for key := range s.fields {
		keys = append(keys, key)
	}
	return keys
}

// Snapshot decrypts every field and returns a plain map, used when
// handing the profile to persistence or reporting.
func (s *FieldStore) Snapshot() (map[string]string, error) {
	snapshot := make(map[string]string, len(s.fields))
	for key := range s.fields {
		value, err := s.Get(key)
		if err != nil {
			return nil, err
		}
		snapshot[key] = value
	}
	return snapshot, nil
}
