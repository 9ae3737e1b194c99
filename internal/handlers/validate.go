package handlers

import (
	"regexp"
	"strings"
)

var (
	usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)
	emailRegexp    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

const (
	minPasswordLength = 6
	maxFullNameLength = 100
	maxBioLength      = 500
)

func validUsername(username string) bool {
	return usernameRegexp.MatchString(username)
}

func validEmail(email string) bool {
	return emailRegexp.MatchString(strings.TrimSpace(email))
}

func validPassword(password string) bool {
	return len(password) >= minPasswordLength
}
