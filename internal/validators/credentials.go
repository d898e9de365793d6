// Package validators contains the credential-shape checks performed before
// any account state is mutated.
package validators

import "regexp"

// Username length bounds, inclusive.
const (
	UsernameMinLen = 3
	UsernameMaxLen = 20
)

// emailPattern matches local@domain.tld where the local part is one or more
// of [A-Za-z0-9._%+-], the domain is dot-separated alnum/hyphen labels, and
// the final label has at least two letters. No MX or network checks are done.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateUsername reports whether name is a legal account name:
// 3-20 characters, ASCII letters and digits only. Underscores and non-ASCII
// letters are rejected.
func ValidateUsername(name string) bool {
	if len(name) < UsernameMinLen || len(name) > UsernameMaxLen {
		return false
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'z' {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			continue
		}
		return false
	}

	return true
}

// ValidateEmail reports whether address has a plausible email shape.
func ValidateEmail(address string) bool {
	return emailPattern.MatchString(address)
}
