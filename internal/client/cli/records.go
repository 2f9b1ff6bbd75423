package cli

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/healthmate/internal/client/guard"
	"github.com/dmitrijs2005/healthmate/internal/client/locale"
	"github.com/dmitrijs2005/healthmate/internal/common"
)

// Recommendations shows the doctor recommendations for the signed-in user.
func (a *App) Recommendations(ctx context.Context) error {
	return a.showRecords(ctx, "Doctor recommendations", a.api.Recommendations)
}

// Prescriptions shows the user's analyzed prescription history.
func (a *App) Prescriptions(ctx context.Context) error {
	return a.showRecords(ctx, "Prescription history", a.api.Prescriptions)
}

// showRecords gates a protected view on the session and renders the fetched
// records. Each invocation consults a fresh guard, so a logout between
// commands is picked up immediately.
func (a *App) showRecords(ctx context.Context, title string, fetch func(context.Context, string) ([]json.RawMessage, error)) error {
	g := guard.New()

	switch g.Evaluate(a.session.State()) {
	case guard.Pending:
		_, _ = printlnFn("Loading your session, try again in a moment...")
		return nil
	case guard.Redirected:
		_, _ = printlnFn("Please sign in to view " + title + ".")
		return nil
	}

	records, err := fetch(ctx, a.session.State().Token)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			_, _ = printlnFn("Your session is no longer valid. Please sign in again.")
		case errors.Is(err, common.ErrUnavailable):
			_, _ = printlnFn(locale.ServerUnreachable(a.config.Language))
		default:
			_, _ = printlnFn("Could not load " + title + ": " + err.Error())
		}
		return err
	}

	_, _ = printlnFn(title + ":")
	if len(records) == 0 {
		_, _ = printlnFn("  (none yet)")
		return nil
	}
	for _, r := range records {
		_, _ = printlnFn("  " + string(r))
	}
	return nil
}
