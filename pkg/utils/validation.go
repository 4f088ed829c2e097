package utils

import "regexp"

// Registration format policy. Validation happens before hashing, always in
// the account service, never in a handler.
var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{6,16}$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

	passwordLetterRe = regexp.MustCompile(`[A-Za-z]`)
	passwordDigitRe  = regexp.MustCompile(`[0-9]`)
)

// ValidUsername reports whether the name is 6-16 chars of letters, digits,
// underscore or hyphen.
func ValidUsername(username string) bool {
	return usernameRe.MatchString(username)
}

func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidPassword requires 8-32 chars with at least one letter and one digit.
func ValidPassword(password string) bool {
	if len(password) < 8 || len(password) > 32 {
		return false
	}
	return passwordLetterRe.MatchString(password) && passwordDigitRe.MatchString(password)
}
