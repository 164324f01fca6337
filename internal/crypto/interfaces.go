// Package crypto hashes and verifies account passwords.
//
// Only the bcrypt hash of a password is ever persisted. Verification is a
// constant-time comparison performed by bcrypt itself.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into storable hashes and checks
// candidate passwords against them.
type PasswordHasher interface {
	// Hash returns the bcrypt hash of password. Hashing the same password
	// twice yields different strings because every hash carries its own salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. It returns
	// [ErrPasswordMismatch] when they differ and a wrapped error when hash is
	// not a valid bcrypt string.
	Verify(hash, password string) error
}
