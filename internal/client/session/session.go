// Package session owns the process-wide authentication state of the
// careerdesk client: who is logged in, with which credential, holding which
// roles. The Manager is the sole writer; every other component reads
// snapshots through Current.
package session

import "careerdesk/internal/client/models"

// State is the authentication state of the client.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

// Session pairs at most one credential with at most one identity.
//
// Invariant: Authenticated implies a non-empty Token. Identity may be zero
// while Authenticated: that happens after a startup restore when the
// backend could not be reached to resolve who the token belongs to.
type Session struct {
	State    State
	Token    string
	Identity models.Identity
}

// IsAuthenticated reports whether a credential is held.
func (s Session) IsAuthenticated() bool { return s.State == Authenticated }
