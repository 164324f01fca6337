package crypto

import "errors"

// ErrPasswordMismatch is returned by [PasswordHasher.Verify] when the
// candidate password does not produce the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")
