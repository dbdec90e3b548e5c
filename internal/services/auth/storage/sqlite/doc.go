// Package sqlite implements the auth user store over SQLite.
package sqlite
