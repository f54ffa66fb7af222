// Package repository implements the persisted stores. Every operation
// re-reads and re-writes the backing key-value document; there is no
// in-memory cache.
package repository

// Persisted state layout: string keys with JSON-encoded values, except
// currentUserKey which holds a plain username string.
const (
	usersKey       = "auth.users"
	currentUserKey = "auth.currentUser"
	postsKey       = "auth.posts"
	postsSeededKey = "auth.postsSeeded"
	followingKey   = "auth.following"
)

// Keys returns every key the stores persist under, for snapshot tooling
func Keys() []string {
	return []string{usersKey, currentUserKey, postsKey, postsSeededKey, followingKey}
}
