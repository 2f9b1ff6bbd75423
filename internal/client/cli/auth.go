package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/healthmate/internal/client/api"
	"github.com/dmitrijs2005/healthmate/internal/client/locale"
	"github.com/dmitrijs2005/healthmate/internal/client/models"
	"github.com/dmitrijs2005/healthmate/internal/client/validation"
	"github.com/dmitrijs2005/healthmate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for username and password and tries to sign in. A failure is
// printed as a displayable message; the method itself returns prompt I/O
// errors only.
//
// The password bytes are wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	creds := models.Credentials{Username: userName, Password: string(password)}

	if err := a.session.Login(ctx, validation.ModeLogin, creds); err != nil {
		_, _ = printlnFn(a.displayError(err))
		return nil
	}

	_, _ = printlnFn("Signed in as " + userName)
	return nil
}

// Signup walks through the registration form and signs the user in on
// success. The age field accepts free text and is sent as null when it does
// not parse; an empty gender falls back to the default.
func (a *App) Signup(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	age, err := getSimpleText(a.reader, "Enter age (optional)", os.Stdout)
	if err != nil {
		return err
	}
	gender, err := getSimpleText(a.reader, "Enter gender (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	creds := models.Credentials{
		Username:        userName,
		Password:        string(password),
		ConfirmPassword: string(confirm),
		Email:           email,
		FullName:        fullName,
		Age:             age,
		Gender:          gender,
	}

	if err := a.session.Login(ctx, validation.ModeSignup, creds); err != nil {
		_, _ = printlnFn(a.displayError(err))
		return nil
	}

	_, _ = printlnFn("Welcome, " + userName + "!")
	return nil
}

// Logout clears the session and the saved copy. Signing out while already
// signed out is harmless.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	_, _ = printlnFn("Signed out")
	return nil
}

// WhoAmI prints the current account name.
func (a *App) WhoAmI(ctx context.Context) error {
	st := a.session.State()
	if st.User == nil {
		_, _ = printlnFn("Not signed in")
		return nil
	}
	_, _ = printlnFn("Signed in as " + st.User.Username)
	return nil
}

// displayError turns any sign-in failure into a single user-facing line.
func (a *App) displayError(err error) string {
	var vErr *validation.Error
	var rErr *api.RejectedError

	switch {
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.As(err, &rErr):
		return rErr.Message
	case errors.Is(err, common.ErrUnavailable):
		return locale.ServerUnreachable(a.config.Language)
	case errors.Is(err, common.ErrSessionSuperseded):
		// The user already moved on; nothing actionable to show.
		return "Sign-in no longer applies"
	default:
		return locale.AuthFailed(a.config.Language)
	}
}
