// Package password hashes operator passwords for the users table.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidHash = errors.New("invalid password hash format")
	ErrMismatch    = errors.New("password does not match")
	ErrTooShort    = errors.New("password is too short")
	ErrTooLong     = errors.New("password exceeds 72 bytes")
)

var defaultConfig = DefaultConfig()

// Hash returns a bcrypt hash using DefaultConfig.
func Hash(password string) (string, error) {
	return HashWithConfig(password, defaultConfig)
}

func HashWithConfig(password string, c Config) (string, error) {
	if len(password) < c.MinLength {
		return "", ErrTooShort
	}
	// bcrypt silently ignores anything past 72 bytes.
	if len(password) > 72 {
		return "", ErrTooLong
	}

	b, err := bcrypt.GenerateFromPassword([]byte(password), c.cost())
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// Verify returns nil on match, ErrMismatch on a wrong password and
// ErrInvalidHash when hash is not a bcrypt hash.
func Verify(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	case errors.Is(err, bcrypt.ErrHashTooShort):
		return ErrInvalidHash
	}
	var verr bcrypt.InvalidHashPrefixError
	if errors.As(err, &verr) {
		return ErrInvalidHash
	}
	return fmt.Errorf("verify password: %w", err)
}
