// Package session issues and verifies short-lived session tokens.
//
// The manager keeps no state of its own: tokens live in the shared token
// store and expire through its TTL, so one Manager can serve every call.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	apperrors "github.com/louisbranch/cyclingtracker/internal/platform/errors"
	grpcmeta "github.com/louisbranch/cyclingtracker/internal/platform/grpc/metadata"
	"github.com/louisbranch/cyclingtracker/internal/platform/id"
	"github.com/louisbranch/cyclingtracker/internal/services/auth/storage"
	"google.golang.org/grpc/metadata"
)

// AuthorizationHeader is the metadata key carrying the session token.
const AuthorizationHeader = "authorization"

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 5 * time.Minute

var (
	// ErrTokenMissing is returned when a call carries no session token.
	ErrTokenMissing = apperrors.New(apperrors.CodeSessionTokenMissing, "session token not provided")
	// ErrTokenInvalid is returned for unknown or expired tokens.
	ErrTokenInvalid = apperrors.New(apperrors.CodeSessionTokenInvalid, "invalid session token")
)

// Manager issues and verifies session tokens.
type Manager struct {
	store       storage.TokenStore
	ttl         time.Duration
	idGenerator func() (string, error)
}

// NewManager returns a manager storing tokens in store. A non-positive ttl
// uses DefaultTTL.
func NewManager(store storage.TokenStore, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		store:       store,
		ttl:         ttl,
		idGenerator: id.NewID,
	}
}

// TTL returns the lifetime given to issued tokens.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a token bound to username.
func (m *Manager) Issue(ctx context.Context, username string) (string, error) {
	if m == nil || m.store == nil {
		return "", fmt.Errorf("session token store is not configured")
	}
	if strings.TrimSpace(username) == "" {
		return "", fmt.Errorf("username is required")
	}
	token, err := m.idGenerator()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	if err := m.store.SetToken(ctx, token, username, m.ttl); err != nil {
		return "", apperrors.Wrap(apperrors.CodeStorageFailure, "store session token", err)
	}
	log.Printf("session issued username=%s ttl=%s", username, m.ttl)
	return token, nil
}

// Verify returns the username bound to token. Lookups never extend the
// token's lifetime.
func (m *Manager) Verify(ctx context.Context, token string) (string, error) {
	if m == nil || m.store == nil {
		return "", fmt.Errorf("session token store is not configured")
	}
	if token == "" {
		return "", ErrTokenMissing
	}
	username, err := m.store.GetToken(ctx, token)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrTokenInvalid
	}
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeStorageFailure, "lookup session token", err)
	}
	return username, nil
}

// VerifyIncoming reads the token from the call's authorization metadata and
// verifies it. An optional "Bearer " prefix is accepted.
func (m *Manager) VerifyIncoming(ctx context.Context) (string, error) {
	token := TokenFromIncoming(ctx)
	if token == "" {
		return "", ErrTokenMissing
	}
	return m.Verify(ctx, token)
}

// TokenFromIncoming extracts the session token from incoming metadata.
func TokenFromIncoming(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	value := strings.TrimSpace(grpcmeta.FirstMetadataValue(md, AuthorizationHeader))
	if len(value) > len("bearer ") && strings.EqualFold(value[:len("bearer ")], "bearer ") {
		value = strings.TrimSpace(value[len("bearer "):])
	}
	return value
}

// WithToken returns an outgoing context carrying token in the authorization
// metadata.
func WithToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, AuthorizationHeader, token)
}
