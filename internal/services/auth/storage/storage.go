package storage

import (
	"context"
	"time"

	"github.com/louisbranch/cyclingtracker/internal/platform/errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New(errors.CodeNotFound, "record not found")

// ErrAlreadyExists indicates a unique key is already taken.
var ErrAlreadyExists = errors.New(errors.CodeUserAlreadyExists, "user already exists")

// UserStore persists user credentials. Username uniqueness is enforced by the
// store, not by callers.
type UserStore interface {
	// CreateUser stores a new user. It returns ErrAlreadyExists when the
	// username is taken.
	CreateUser(ctx context.Context, username string, passwordHash string) error
	// GetPasswordHash returns the stored hash, or ErrNotFound.
	GetPasswordHash(ctx context.Context, username string) (string, error)
}

// TokenStore holds session tokens that expire on their own.
type TokenStore interface {
	// SetToken binds token to username for ttl.
	SetToken(ctx context.Context, token string, username string, ttl time.Duration) error
	// GetToken returns the username bound to token, or ErrNotFound once the
	// token is unknown or expired. It never extends the ttl.
	GetToken(ctx context.Context, token string) (string, error)
}
