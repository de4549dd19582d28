package storage

import "context"

// Well-known keys. The durable store holds the full username→profile map as
// one JSON blob; the session store holds the active profile as another.
const (
	UsersKey   = "hikmah_users_v2"
	SessionKey = "hikmah_active_user"
)

// Port is a minimal key/value contract over a storage backend.
// Values are opaque JSON blobs; callers own serialization.
type Port interface {
	// Get returns the value stored under key. The second return is false
	// when the key has never been written (or has been deleted).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set writes value under key, replacing any prior value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
