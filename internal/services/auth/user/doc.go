// Package user validates sign-up credentials and hashes passwords.
//
// Usernames are normalized here before they reach storage so the store's
// uniqueness check sees one canonical spelling.
package user
