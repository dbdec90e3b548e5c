// Package auth implements the cyclingtracker.SessionAuth gRPC API.
package auth

import (
	"context"
	"errors"
	"log"

	cyclingtrackerv1 "github.com/louisbranch/cyclingtracker/api/cyclingtracker/v1"
	apperrors "github.com/louisbranch/cyclingtracker/internal/platform/errors"
	"github.com/louisbranch/cyclingtracker/internal/services/auth/session"
	"github.com/louisbranch/cyclingtracker/internal/services/auth/storage"
	"github.com/louisbranch/cyclingtracker/internal/services/auth/user"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errInvalidCredentials is returned for unknown users and wrong passwords
// alike so callers cannot probe which usernames exist.
var errInvalidCredentials = apperrors.New(apperrors.CodeInvalidCredentials, "invalid credentials")

// Service implements the SessionAuth gRPC API.
type Service struct {
	cyclingtrackerv1.UnimplementedSessionAuthServer
	users    storage.UserStore
	sessions *session.Manager
	hashCost int
}

// NewService builds the auth service. hashCost zero uses the bcrypt default.
func NewService(users storage.UserStore, sessions *session.Manager, hashCost int) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		hashCost: hashCost,
	}
}

// SignUp creates a user with a hashed password.
func (s *Service) SignUp(ctx context.Context, in *cyclingtrackerv1.Credentials) (*cyclingtrackerv1.SignUpResult, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "credentials are required")
	}
	creds, err := user.NormalizeCredentials(user.Credentials{Username: in.GetUsername(), Password: in.GetPassword()})
	if err != nil {
		return nil, apperrors.HandleError(err)
	}
	hash, err := user.HashPassword(creds.Password, s.hashCost)
	if err != nil {
		return nil, apperrors.HandleError(err)
	}
	if err := s.users.CreateUser(ctx, creds.Username, hash); err != nil {
		return nil, apperrors.HandleError(err)
	}
	log.Printf("user created username=%s", creds.Username)
	return &cyclingtrackerv1.SignUpResult{Result: true}, nil
}

// Login checks credentials and issues a session token.
func (s *Service) Login(ctx context.Context, in *cyclingtrackerv1.Credentials) (*cyclingtrackerv1.SessionToken, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "credentials are required")
	}
	username := user.NormalizeUsername(in.GetUsername())
	if username == "" || in.GetPassword() == "" {
		return nil, apperrors.HandleError(errInvalidCredentials)
	}

	hash, err := s.users.GetPasswordHash(ctx, username)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.HandleError(errInvalidCredentials)
	}
	if err != nil {
		return nil, apperrors.HandleError(err)
	}
	ok, err := user.CheckPassword(hash, in.GetPassword())
	if err != nil {
		return nil, apperrors.HandleError(err)
	}
	if !ok {
		return nil, apperrors.HandleError(errInvalidCredentials)
	}

	token, err := s.sessions.Issue(ctx, username)
	if err != nil {
		return nil, apperrors.HandleError(err)
	}
	return &cyclingtrackerv1.SessionToken{Token: token}, nil
}
