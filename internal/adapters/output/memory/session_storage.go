package memory

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Compile-time check to ensure SessionStorage implements fiber.Storage interface
var _ fiber.Storage = (*SessionStorage)(nil)

// entry holds a stored session blob and its expiry deadline.
// A zero deadline means the entry never expires.
type entry struct {
	value  []byte
	expiry time.Time
}

// SessionStorage struct - Output adapter backing the session middleware with
// in-memory storage. Uses sync.Map for thread-safe concurrent access; expired
// entries are removed lazily on read.
type SessionStorage struct {
	entries sync.Map
}

// NewSessionStorage creates a new in-memory session storage
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{}
}

// Get retrieves a session blob by key. Returns nil for a missing or expired
// entry (lazy cleanup), never an error.
func (s *SessionStorage) Get(key string) ([]byte, error) {
	value, exists := s.entries.Load(key)
	if !exists {
		return nil, nil
	}

	e, ok := value.(entry)
	if !ok {
		// If data is malformed, delete and return nil
		s.entries.Delete(key)
		return nil, nil
	}

	if !e.expiry.IsZero() && time.Now().After(e.expiry) {
		// Lazy cleanup: delete expired entry
		s.entries.Delete(key)
		return nil, nil
	}

	return e.value, nil
}

// Set stores a session blob under the given key with the given lifetime.
// An existing entry with the same key is overwritten.
func (s *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	e := entry{value: val}
	if exp > 0 {
		e.expiry = time.Now().Add(exp)
	}

	s.entries.Store(key, e)

	return nil
}

// Delete removes a session blob by key.
// This operation is idempotent - deleting a non-existent key does not return an error.
func (s *SessionStorage) Delete(key string) error {
	s.entries.Delete(key)
	return nil
}

// Reset removes all stored sessions
func (s *SessionStorage) Reset() error {
	s.entries.Range(func(key, _ interface{}) bool {
		s.entries.Delete(key)
		return true
	})
	return nil
}

// Close is a no-op for the in-memory storage
func (s *SessionStorage) Close() error {
	return nil
}
