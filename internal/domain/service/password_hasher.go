// Package service declares the ports the usecases drive: change feed transports,
// the query cache, alert surfaces and the auth primitives.
package service

// PasswordHasher hashes and verifies login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
