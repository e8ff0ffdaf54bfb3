package password

import (
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// maxBytes is the bcrypt input limit. Longer passwords are truncated
// before hashing rather than rejected.
const maxBytes = 72

// Hash returns the bcrypt hash of a password. Input longer than 72 UTF-8
// bytes is truncated without splitting a multi-byte code point.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncate(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the password matches the hash. It fails closed:
// a malformed hash, a mismatch, or any internal error all return false.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(password)) == nil
}

// truncate cuts the password to maxBytes, discarding any trailing bytes
// that would split a code point.
func truncate(password string) []byte {
	b := []byte(password)
	if len(b) <= maxBytes {
		return b
	}
	b = b[:maxBytes]
	for len(b) > 0 {
		r, size := utf8.DecodeLastRune(b)
		if r != utf8.RuneError || size != 1 {
			break
		}
		b = b[:len(b)-1]
	}
	return b
}
