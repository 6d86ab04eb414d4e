// Package credstore persists the portal bearer token across client restarts.
//
// The store holds a single opaque credential string. Absence means "logged
// out". Save and Clear are idempotent; Read reports a missing credential as
// ("", nil). Callers are expected to treat a storage error the same way they
// treat an absent credential (never fatal).
package credstore

import "context"

// TokenKey is the single key the client keeps in the credentials table.
const TokenKey = "token"

// Store is the persisted credential slot.
type Store interface {
	// Save stores the bearer token, replacing any previous value.
	Save(ctx context.Context, token string) error
	// Read returns the stored token, or "" if none is stored.
	Read(ctx context.Context) (string, error)
	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
