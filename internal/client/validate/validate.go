// Package validate contains the pure input checks run before any request
// leaves the client. A failing check means the submit is rejected locally.
package validate

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

var (
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters")
	ErrPasswordUppercase = errors.New("password must contain an uppercase letter")
	ErrPasswordDigit     = errors.New("password must contain a digit")

	ErrCardNumberLength = errors.New("card number must be 16 digits")
	ErrCVVLength        = errors.New("security code must be 3 or 4 digits")
	ErrExpiryMonth      = errors.New("expiry month must be between 1 and 12")
	ErrExpiryYear       = errors.New("expiry year is in the past")
)

// Email reports whether s looks like local@domain.tld: exactly one '@',
// a non-empty local part, no whitespace anywhere, and a dot inside the
// domain with non-empty parts on both sides of the last one.
func Email(s string) bool {
	if strings.ContainsFunc(s, unicode.IsSpace) {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}
	domain := s[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// Password checks password strength. The rules run in a fixed order and
// only the first failure is reported: minimum length 8, then at least one
// uppercase letter, then at least one digit.
func Password(s string) error {
	if len(s) < 8 {
		return ErrPasswordTooShort
	}
	if !strings.ContainsFunc(s, unicode.IsUpper) {
		return ErrPasswordUppercase
	}
	if !strings.ContainsFunc(s, unicode.IsDigit) {
		return ErrPasswordDigit
	}
	return nil
}

// StripNonDigits removes everything except ASCII digits, so numbers entered
// as "4111-1111-1111-1111" or with spaces compare equal to their plain form.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CardNumber checks that s contains exactly 16 digits once separators are
// stripped. Callers should submit the stripped form.
func CardNumber(s string) error {
	if len(StripNonDigits(s)) != 16 {
		return ErrCardNumberLength
	}
	return nil
}

// CVV checks that s is a 3- or 4-digit code.
func CVV(s string) error {
	digits := StripNonDigits(s)
	if digits != s || len(digits) < 3 || len(digits) > 4 {
		return ErrCVVLength
	}
	return nil
}

// ExpiryMonth checks m is a calendar month.
func ExpiryMonth(m int) error {
	if m < 1 || m > 12 {
		return ErrExpiryMonth
	}
	return nil
}

// ExpiryYear checks y is not before the current year.
func ExpiryYear(y int, now time.Time) error {
	if y < now.Year() {
		return ErrExpiryYear
	}
	return nil
}
