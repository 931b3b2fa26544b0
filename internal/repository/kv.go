package repository

import "context"

// KeyValueStore is the persistence collaborator behind the mastery and quiz stores.
// Values are opaque strings (JSON documents in practice).
type KeyValueStore interface {
	// Get returns the value for key; found is false when the key was never set.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
