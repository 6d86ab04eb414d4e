// Package nav decides, for every navigation attempt, whether the requested
// view may render or must redirect, and derives the role-conditioned
// navigation shell from the current session. It holds no session state of
// its own: every decision takes a session snapshot as input.
package nav

import "careerdesk/internal/client/session"

// Navigation paths of the portal client.
const (
	PathLogin         = "/login"
	PathRegister      = "/register"
	PathJobs          = "/jobs"
	PathApplications  = "/applications"
	PathAppointments  = "/appointments"
	PathDocuments     = "/documents"
	PathNotifications = "/notifications"

	// Action views: interactive forms reached from their list views.
	PathApply  = "/applications/new"
	PathBook   = "/appointments/new"
	PathUpload = "/documents/new"

	// DefaultLandingPath is where an authenticated user ends up when no
	// remembered destination exists.
	DefaultLandingPath = PathJobs
)

// Access classifies who may render a route.
type Access int

const (
	// Protected renders only for authenticated sessions.
	Protected Access = iota
	// Public renders only for unauthenticated sessions (login/register).
	Public
)

// Decision is the outcome of a guard check.
type Decision struct {
	Allow      bool
	RedirectTo string
	// Remember carries the originally requested path when a protected view
	// bounced to login, so a successful login can resume there.
	Remember string
}

// GuardProtected allows rendering iff the session is authenticated;
// otherwise it redirects to the login view and reports the requested path
// for remembering.
func GuardProtected(s session.Session, requestedPath string) Decision {
	if s.IsAuthenticated() {
		return Decision{Allow: true}
	}
	return Decision{RedirectTo: PathLogin, Remember: requestedPath}
}

// GuardPublic allows rendering iff the session is unauthenticated; an
// already-authenticated user is sent to fallbackPath instead of seeing
// login/register again.
func GuardPublic(s session.Session, fallbackPath string) Decision {
	if !s.IsAuthenticated() {
		return Decision{Allow: true}
	}
	return Decision{RedirectTo: fallbackPath}
}

// Guard composes the two decision functions with the remembered navigation
// intent. One Guard instance sits at the client's navigation layer.
type Guard struct {
	intent Intent
}

func NewGuard() *Guard { return &Guard{} }

// Check evaluates the guard for a route and records the navigation intent on
// a protected-view bounce.
func (g *Guard) Check(s session.Session, path string, access Access) Decision {
	switch access {
	case Public:
		return GuardPublic(s, DefaultLandingPath)
	default:
		d := GuardProtected(s, path)
		if !d.Allow {
			g.intent.Remember(d.Remember)
		}
		return d
	}
}

// ResumePath returns the destination a fresh login should land on: the
// remembered intent when one exists (consumed by this call), otherwise the
// default landing path.
func (g *Guard) ResumePath() string {
	return g.intent.Resume(DefaultLandingPath)
}
