package domain

import "context"

// Database defines lifecycle operations for the underlying storage backend.
// Each implementation owns its own schema setup, so the in-memory store and
// the SQLite store are interchangeable behind the repository interfaces.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
