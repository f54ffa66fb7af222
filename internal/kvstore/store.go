package kvstore

// Store is a string-keyed persistent key-value store. Values are opaque to
// the store; callers persist JSON-encoded documents.
type Store interface {
	// Get returns the value for key and whether the key exists.
	Get(key string) (string, bool, error)

	// Set writes the value for key, creating or replacing it.
	Set(key, value string) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error

	// Close releases the underlying resources.
	Close() error
}
