// Package auth owns rider identity: accounts with hashed passwords and the
// short-lived session tokens that gate the tracker API.
//
// Subpackages:
//   - api/grpc/auth: SessionAuth handlers (SignUp, Login)
//   - session: token issue/verify and the server interceptors
//   - storage: user and token store contracts with SQLite and Redis backends
//   - user: credential validation and password hashing
package auth
