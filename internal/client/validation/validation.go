// Package validation checks sign-in/sign-up form input before it is
// submitted. Checks are pure: no network or storage access.
package validation

import (
	"strings"

	"github.com/dmitrijs2005/healthmate/internal/client/models"
)

// Mode selects which rule set applies.
type Mode string

const (
	ModeLogin  Mode = "login"
	ModeSignup Mode = "signup"
)

// Error is a pre-submission validation failure carrying a message suitable
// for direct display to the user.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Check validates credentials for the given mode. It returns nil when the
// input is acceptable, or the *Error for the first rule that fails. Rules are
// evaluated in a fixed order and only the first failure is reported.
func Check(mode Mode, c models.Credentials) error {
	if c.Username == "" || c.Password == "" {
		return &Error{Message: "Username and password are required"}
	}

	if mode != ModeSignup {
		return nil
	}

	if c.Email == "" || c.FullName == "" {
		return &Error{Message: "Email and full name are required"}
	}
	if len(c.Password) < 6 {
		return &Error{Message: "Password must be at least 6 characters"}
	}
	if c.Password != c.ConfirmPassword {
		return &Error{Message: "Passwords do not match"}
	}
	if !strings.Contains(c.Email, "@") {
		return &Error{Message: "Please enter a valid email address"}
	}

	return nil
}
