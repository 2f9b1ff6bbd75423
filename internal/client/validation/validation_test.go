package validation

import (
	"testing"

	"github.com/dmitrijs2005/healthmate/internal/client/models"
	"github.com/stretchr/testify/require"
)

func validSignup() models.Credentials {
	return models.Credentials{
		Username:        "asha",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Email:           "asha@example.com",
		FullName:        "Asha Rao",
	}
}

func checkMessage(t *testing.T, mode Mode, c models.Credentials, want string) {
	t.Helper()
	err := Check(mode, c)
	require.Error(t, err)
	var vErr *Error
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, want, vErr.Message)
}

func TestCheck_LoginValid(t *testing.T) {
	err := Check(ModeLogin, models.Credentials{Username: "asha", Password: "x"})
	require.NoError(t, err)
}

func TestCheck_LoginEmptyPassword(t *testing.T) {
	checkMessage(t, ModeLogin, models.Credentials{Username: "asha"},
		"Username and password are required")
}

func TestCheck_LoginEmptyUsername(t *testing.T) {
	checkMessage(t, ModeLogin, models.Credentials{Password: "x"},
		"Username and password are required")
}

func TestCheck_SignupValid(t *testing.T) {
	require.NoError(t, Check(ModeSignup, validSignup()))
}

func TestCheck_SignupMissingEmail(t *testing.T) {
	c := validSignup()
	c.Email = ""
	checkMessage(t, ModeSignup, c, "Email and full name are required")
}

func TestCheck_SignupMissingFullName(t *testing.T) {
	c := validSignup()
	c.FullName = ""
	checkMessage(t, ModeSignup, c, "Email and full name are required")
}

func TestCheck_SignupShortPassword(t *testing.T) {
	c := validSignup()
	c.Password = "abc12"
	c.ConfirmPassword = "different"
	// The length rule comes before the mismatch rule, even when both fail.
	checkMessage(t, ModeSignup, c, "Password must be at least 6 characters")
}

func TestCheck_SignupPasswordMismatch(t *testing.T) {
	c := validSignup()
	c.ConfirmPassword = "secret2"
	checkMessage(t, ModeSignup, c, "Passwords do not match")
}

func TestCheck_SignupInvalidEmail(t *testing.T) {
	c := validSignup()
	c.Email = "asha.example.com"
	checkMessage(t, ModeSignup, c, "Please enter a valid email address")
}

func TestCheck_SignupEmptyCredentialsFirstRuleWins(t *testing.T) {
	checkMessage(t, ModeSignup, models.Credentials{},
		"Username and password are required")
}
