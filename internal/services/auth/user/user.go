package user

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	apperrors "github.com/louisbranch/cyclingtracker/internal/platform/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmptyUsername indicates a missing username.
	ErrEmptyUsername = apperrors.New(apperrors.CodeUserEmptyUsername, "username is required")
	// ErrInvalidUsername indicates a username that does not match the required format.
	ErrInvalidUsername = apperrors.New(apperrors.CodeUserInvalidUsername, "username must be 3-32 lowercase alphanumeric, dot, dash, or underscore characters")
	// ErrEmptyPassword indicates a missing password.
	ErrEmptyPassword = apperrors.New(apperrors.CodeUserEmptyPassword, "password is required")

	usernamePattern = regexp.MustCompile(`^[a-z0-9_.\-]{3,32}$`)
)

// maxPasswordBytes is the longest password bcrypt accepts.
const maxPasswordBytes = 72

// Credentials is a username and password pair.
type Credentials struct {
	Username string
	Password string
}

// ValidateUsername enforces canonical username constraints.
func ValidateUsername(s string) error {
	if !usernamePattern.MatchString(s) {
		return ErrInvalidUsername
	}
	return nil
}

// NormalizeUsername trims and lowercases a username.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeCredentials normalizes the username and validates both fields.
// The password is kept byte for byte.
func NormalizeCredentials(in Credentials) (Credentials, error) {
	in.Username = NormalizeUsername(in.Username)
	if in.Username == "" {
		return Credentials{}, ErrEmptyUsername
	}
	if err := ValidateUsername(in.Username); err != nil {
		return Credentials{}, err
	}
	if in.Password == "" {
		return Credentials{}, ErrEmptyPassword
	}
	if len(in.Password) > maxPasswordBytes {
		return Credentials{}, apperrors.New(apperrors.CodeUserInvalidPassword,
			fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}
	return in, nil
}

// HashPassword returns a bcrypt hash of password.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash. A malformed hash is
// an error; a plain mismatch is not.
func CheckPassword(hash string, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("compare password hash: %w", err)
}
