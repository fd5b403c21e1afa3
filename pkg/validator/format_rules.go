package validator

import (
	"net/url"
	"regexp"
	"strings"
)

// emailRegex accepts local@domain.tld without whitespace. Deliverability is
// not checked.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func checkEmail(value, _ any) bool {
	if isFalsy(value) {
		return true
	}
	return emailRegex.MatchString(toString(value))
}

// checkURL accepts absolute URLs: a scheme plus either a host or an opaque
// part (mailto:, tel:).
func checkURL(value, _ any) bool {
	if isFalsy(value) {
		return true
	}

	s := strings.TrimSpace(toString(value))
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != ""
}
