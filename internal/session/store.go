// Package session maps opaque client-held tokens to authenticated user IDs.
// The token carries no state of its own; everything lives server-side.
package session

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrNoSession is returned by Get when the token has no active binding.
var ErrNoSession = errors.New("no active session")

// Store binds opaque session tokens to user IDs.
type Store interface {
	// Create binds a fresh token to the given user ID and returns it.
	// Callers rotate sessions by calling Create again; old tokens are
	// left to expire.
	Create(ctx context.Context, userID uint) (string, error)

	// Get resolves a token to its bound user ID, or ErrNoSession.
	Get(ctx context.Context, token string) (uint, error)

	// Clear removes the binding. Clearing an unknown token is not an error.
	Clear(ctx context.Context, token string) error
}

// newToken generates an opaque session token with no embedded state.
func newToken() string {
	return strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")
}
