// Package guard gates access to protected navigations based on session state
// and a per-route required role. It never mutates session state and performs
// no I/O.
package guard

import (
	"github.com/papecode/nfc-card-demo/internal/identity"
	"github.com/papecode/nfc-card-demo/internal/session"
)

// LoginPath is the navigation target for unauthenticated viewers.
const LoginPath = "/login"

// Kind enumerates the possible guard outcomes.
type Kind int

const (
	// Allow renders the requested content.
	Allow Kind = iota
	// Loading defers the decision while an auth operation is in flight.
	Loading
	// RedirectLogin sends the viewer to the login view, remembering where
	// they were headed.
	RedirectLogin
	// RedirectHome sends the viewer to their role-appropriate default view.
	RedirectHome
)

// Decision is the outcome of evaluating a single navigation. Exactly one
// outcome is produced per evaluation; nothing is remembered between
// evaluations.
type Decision struct {
	Kind Kind
	// Target is the redirect destination for RedirectLogin and RedirectHome.
	Target string
	// From carries the originally requested path on login redirects, so the
	// login flow can send the viewer back after it succeeds.
	From string
}

// Evaluate gates a navigation. Precedence is fixed: a loading session always
// wins over redirects, authentication is checked before role, and an empty
// required role always passes.
func Evaluate(sess session.Session, required identity.Role, currentPath string) Decision {
	if sess.IsLoading {
		return Decision{Kind: Loading}
	}
	if !sess.IsAuthenticated {
		return Decision{Kind: RedirectLogin, Target: LoginPath, From: currentPath}
	}
	if required != "" && sess.Viewer.Role != required {
		return Decision{Kind: RedirectHome, Target: sess.Viewer.Role.HomePath()}
	}
	return Decision{Kind: Allow}
}
