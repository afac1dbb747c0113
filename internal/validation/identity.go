// Package validation provides input format rules shared by the HTTP handlers.
package validation

import (
	"regexp"
)

var (
	usernameRegex = regexp.MustCompile(`^\w+$`)
	nameRegex     = regexp.MustCompile(`^\w+$`)
	ageRegex      = regexp.MustCompile(`^[1-9][0-9]*$`)
)

// ValidUsername reports whether the username is a nonempty alphanumeric string.
func ValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// ValidName reports whether the declared name is a nonempty alphanumeric string.
func ValidName(name string) bool {
	return nameRegex.MatchString(name)
}

// ValidAge reports whether the declared age is a positive number with no
// leading zero.
func ValidAge(age string) bool {
	return ageRegex.MatchString(age)
}

// MaxFreetLength is the character limit for freet content.
const MaxFreetLength = 140

// ValidFreetContent reports whether freet content is nonempty and within the
// length limit. Length is counted in runes so multi-byte characters are not
// penalized.
func ValidFreetContent(content string) bool {
	if content == "" {
		return false
	}
	return len([]rune(content)) <= MaxFreetLength
}
