package utils

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

const (
	bookingCodePrefix  = "BK-"
	bookingCodeLength  = 8
	bookingCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var bookingCodePattern = regexp.MustCompile(`^BK-[A-Z0-9]{8}$`)

// GenerateBookingCode returns a fresh "BK-XXXXXXXX" reservation code.
// Uses crypto/rand with math/big to avoid modulo bias.
func GenerateBookingCode() (string, error) {
	var sb strings.Builder
	sb.WriteString(bookingCodePrefix)
	alphaLen := big.NewInt(int64(len(bookingCodeCharset)))
	for i := 0; i < bookingCodeLength; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(bookingCodeCharset[num.Int64()])
	}
	return sb.String(), nil
}

// IsValidBookingCode reports whether code matches the BK-XXXXXXXX format.
func IsValidBookingCode(code string) bool {
	return bookingCodePattern.MatchString(strings.TrimSpace(code))
}
