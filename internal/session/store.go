// Package session holds the per-caller login state. The caller only carries
// an opaque token in a signed cookie; the token resolves to a Marker through
// a Store that lives as long as the process does.
package session

import (
	"context"
	"errors"
)

var ErrSessionNotFound = errors.New("session not found")

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*RedisStore)(nil)
)

// Marker records who a session is authenticated as.
type Marker struct {
	Username string
}

//go:generate mockgen -source=store.go -destination=store_mock_test.go -package=session

// Store maps session tokens to markers.
type Store interface {
	// Get returns ErrSessionNotFound for unknown tokens.
	Get(ctx context.Context, token string) (Marker, error)
	Set(ctx context.Context, token string, marker Marker) error
	Delete(ctx context.Context, token string) error
	// Teardown drops every session held by the store. Called on shutdown.
	Teardown(ctx context.Context) error
}
