// Package models holds the data types exchanged between the careerdesk
// client and the portal backend.
package models

// Role is a portal role carried by an identity. An identity may hold zero,
// one, or several roles.
type Role string

const (
	RoleJobSeeker Role = "JOB_SEEKER"
	RoleEmployer  Role = "EMPLOYER"
	RoleStaff     Role = "STAFF"
	RoleProvider  Role = "PROVIDER"
)

// Identity is the resolved user profile plus role set, taken from the login
// (or whoami) response. It lives in memory only; the durable half of a
// session is the bearer token.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Roles    []Role `json:"roles"`
}

// HasRole reports whether the identity carries the given role.
func (i Identity) HasRole(r Role) bool {
	for _, have := range i.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// IsZero reports whether the identity is unresolved (e.g. restored from a
// persisted token before the backend confirmed who it belongs to).
func (i Identity) IsZero() bool {
	return i.ID == "" && i.Username == "" && len(i.Roles) == 0
}

// LoginResult is the payload of a successful login: the bearer token and the
// identity it proves.
type LoginResult struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}
