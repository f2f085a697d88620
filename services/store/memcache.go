package store

import (
	"errors"

	"github.com/bradfitz/gomemcache/memcache"
)

// MemcacheStore implements Store using memcache
type MemcacheStore struct {
	client *memcache.Client
}

// NewMemcacheStore creates a new memcache-backed store
func NewMemcacheStore(serverAddr string) *MemcacheStore {
	return &MemcacheStore{
		client: memcache.New(serverAddr),
	}
}

// Get retrieves the values for the given keys. Missing keys are left out of
// the result map.
func (m *MemcacheStore) Get(keys ...string) (map[string][]byte, error) {
	items, err := m.client.GetMulti(keys)
	if err != nil {
		return nil, err
	}

	values := make(map[string][]byte, len(items))
	for key, item := range items {
		values[key] = item.Value
	}
	return values, nil
}

// Set stores all the given key-value pairs without expiration
func (m *MemcacheStore) Set(values map[string][]byte) error {
	for key, value := range values {
		if err := m.client.Set(&memcache.Item{Key: key, Value: value}); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes the given keys, treating absent keys as already removed
func (m *MemcacheStore) Remove(keys ...string) error {
	for _, key := range keys {
		if err := m.client.Delete(key); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	return nil
}
