package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor used for stored passwords.
const HashCost = 10

var ErrInvalidHashFormat = errors.New("invalid encoded hash format")

// HashPassword hashes a password with bcrypt. Every call uses a fresh random
// salt, so the same password produces a different digest each time.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks whether a password matches the given bcrypt digest.
// A mismatch is reported as false with a nil error.
func VerifyPassword(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	case errors.Is(err, bcrypt.ErrHashTooShort):
		return false, ErrInvalidHashFormat
	default:
		var versionErr bcrypt.HashVersionTooNewError
		var prefixErr bcrypt.InvalidHashPrefixError
		if errors.As(err, &versionErr) || errors.As(err, &prefixErr) {
			return false, ErrInvalidHashFormat
		}
		return false, err
	}
}
