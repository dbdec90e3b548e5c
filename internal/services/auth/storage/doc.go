// Package storage defines persistence contracts for credentials and session
// tokens.
//
// Handlers and the session manager depend on these contracts so the SQLite
// user table and the Redis token keyspace can be swapped in tests.
package storage
