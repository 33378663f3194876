package validators

import "regexp"

// emailPattern accepts a local part of letters, digits and ._%+- characters,
// an @, a domain with at least one dot, and a TLD of two or more letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether email matches the accepted address format.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
