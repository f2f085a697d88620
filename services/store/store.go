package store

// Store represents a flat key-value store. Get returns a partial record:
// keys that are not present are simply absent from the result, which is not
// an error. Write atomicity is the backend's concern, not this interface's.
type Store interface {
	// Get retrieves the values for the given keys
	Get(keys ...string) (map[string][]byte, error)

	// Set stores all the given key-value pairs
	Set(values map[string][]byte) error

	// Remove deletes the given keys; removing an absent key is a no-op
	Remove(keys ...string) error
}
