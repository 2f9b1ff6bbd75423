// Package guard gates identity-restricted views on the session state.
package guard

import (
	"github.com/dmitrijs2005/healthmate/internal/client/session"
)

// Status is the guard's decision for one protected view instance.
type Status int

const (
	// Pending means the session is still loading; render a waiting state.
	Pending Status = iota
	// Authorized permits the protected view.
	Authorized
	// Redirected denies the view; send the user to the public entry point.
	Redirected
)

func (s Status) String() string {
	switch s {
	case Authorized:
		return "authorized"
	case Redirected:
		return "redirected"
	default:
		return "pending"
	}
}

// Guard makes a single authorize/redirect decision and latches it. While the
// session snapshot reports loading the guard stays Pending; the first
// snapshot with loading finished decides Authorized or Redirected, and the
// decision never reverts. A view reacting to a later logout must consult a
// fresh Guard, not this one.
//
// The guard never triggers the restore itself; the application lifecycle
// runs it before any guard is evaluated.
type Guard struct {
	status Status
}

func New() *Guard {
	return &Guard{status: Pending}
}

// Evaluate feeds a session snapshot to the guard and returns its decision.
func (g *Guard) Evaluate(st session.State) Status {
	if g.status != Pending {
		return g.status
	}
	if st.IsLoading {
		return Pending
	}
	if st.IsAuthenticated {
		g.status = Authorized
	} else {
		g.status = Redirected
	}
	return g.status
}

// Status returns the last decision without re-evaluating.
func (g *Guard) Status() Status {
	return g.status
}
