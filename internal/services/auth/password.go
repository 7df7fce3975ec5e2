package auth

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/MyelinBots/stillalive-go/internal/faults"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	// bcrypt only accepts this many bytes of input
	maxPasswordBytes = 72
)

// HashPassword returns a salted bcrypt hash of password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", faults.Validation("password cannot be empty")
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", faults.Validation("password must be at most %d bytes long", maxPasswordBytes)
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash returns an auth fault when password does not match hash.
func CheckPasswordHash(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrHashTooShort) {
		return faults.Auth("invalid credentials")
	}
	return err
}

// ValidatePassword enforces the password policy: eight characters up to 72
// bytes, with at least one letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return faults.Validation("password must be at least %d characters long", minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return faults.Validation("password must be at most %d bytes long", maxPasswordBytes)
	}

	hasLetter := false
	hasNumber := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		} else if unicode.IsNumber(char) {
			hasNumber = true
		}
		if hasLetter && hasNumber {
			return nil
		}
	}
	return faults.Validation("password must contain at least one letter and one number")
}
