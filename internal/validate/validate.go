package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	rePhone = regexp.MustCompile(`^\+?[0-9 ().-]{7,20}$`)
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Phone accepts common digit/punctuation formats, 7-20 characters.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && rePhone.MatchString(s)
}

// DOB accepts YYYY-MM-DD dates in the past.
func DOB(s string) (string, bool) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", false
	}
	return s, t.Before(time.Now())
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 60 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// ID validates a simple resource identifier (product/order ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 40 {
		return "", false
	}
	return s, true
}

// Qty parses a quantity field, clamped to [0, 99].
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	if n > 99 {
		return 99
	}
	return n
}

// Password enforces the login length window plus character classes.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 40 {
		return false
	}
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}
