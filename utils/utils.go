package utils

import (
	"encoding/hex"
	"net/mail"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsValidEmail accepts a bare RFC 5322 address ("a@b.c"), not a display-name form.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(email[strings.LastIndex(email, "@"):], ".")
}

// RegistrationKey identifies one email address in one tournament. Email case
// and surrounding whitespace are ignored; the address itself is not recoverable.
func RegistrationKey(tournamentID int, email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := blake2b.Sum256([]byte(strconv.Itoa(tournamentID) + ":" + normalized))
	return hex.EncodeToString(sum[:])
}
