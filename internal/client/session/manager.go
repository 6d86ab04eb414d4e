package session

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"careerdesk/internal/client/api"
	"careerdesk/internal/client/credstore"
	"careerdesk/internal/client/models"
	"careerdesk/internal/logging"
)

// PortalAPI is the slice of the boundary client the manager needs.
type PortalAPI interface {
	Login(ctx context.Context, username, password string) (models.LoginResult, error)
	Me(ctx context.Context) (models.Identity, error)
}

// Manager owns the session slot. All transitions run under one mutex, so two
// concurrent logins cannot race to commit inconsistent credential/identity
// pairs; reads return a value snapshot and never observe a half-applied
// transition.
type Manager struct {
	mu    sync.Mutex
	api   PortalAPI
	creds credstore.Store
	log   logging.Logger
	cur   Session
}

func NewManager(api PortalAPI, creds credstore.Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Manager{api: api, creds: creds, log: log}
}

// Login authenticates against the backend and, on success, commits the
// returned credential to the persisted store and the identity to memory.
// On failure the session is (or stays) Unauthenticated and the error is
// returned for display; the store is left untouched.
func (m *Manager) Login(ctx context.Context, username, password string) (models.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res, err := m.api.Login(ctx, username, password)
	if err != nil {
		m.cur = Session{}
		return models.Identity{}, err
	}

	// A failed store write degrades to an in-memory session rather than
	// failing the login: storage trouble is never fatal.
	if err := m.creds.Save(ctx, res.Token); err != nil {
		m.log.Warn(ctx, "credential not persisted, session will not survive restart", "error", err.Error())
	}
	m.cur = Session{State: Authenticated, Token: res.Token, Identity: res.User}
	m.log.Info(ctx, "logged in", "username", res.User.Username)
	return res.User, nil
}

// Logout ends the session: persisted credential cleared, identity discarded.
// It needs no backend call, always succeeds locally, and is idempotent.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logoutLocked(ctx)
}

func (m *Manager) logoutLocked(ctx context.Context) {
	if err := m.creds.Clear(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear persisted credential", "error", err.Error())
	}
	if m.cur.IsAuthenticated() {
		m.log.Info(ctx, "logged out", "username", m.cur.Identity.Username)
	}
	m.cur = Session{}
}

// Current returns a snapshot of the session. It never blocks on the network
// and never fails.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur
}

// Restore runs once at startup. A persisted credential is validated by
// resolving the identity behind it:
//   - backend confirms it  -> Authenticated with the resolved identity;
//   - backend rejects it   -> the stale credential is discarded;
//   - backend unreachable  -> Authenticated with an unresolved identity, so
//     the user is not logged out just because they started offline.
func (m *Manager) Restore(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, err := m.creds.Read(ctx)
	if err != nil {
		m.log.Warn(ctx, "credential store unavailable on startup", "error", err.Error())
		return
	}
	if token == "" {
		return
	}

	id, err := m.api.Me(ctx)
	switch {
	case err == nil:
		m.cur = Session{State: Authenticated, Token: token, Identity: id}
		m.log.Info(ctx, "session restored", "username", id.Username)
	case errors.Is(err, api.ErrUnauthorized):
		m.log.Info(ctx, "persisted credential no longer valid, discarding")
		m.logoutLocked(ctx)
	default:
		m.cur = Session{State: Authenticated, Token: token}
		m.log.Warn(ctx, "backend unreachable, restored session with unresolved identity", "error", err.Error())
	}
}

// HandleAuthError is the central policy for authentication failures observed
// on arbitrary portal calls; the boundary client reports them here. A 401
// means the held credential is no longer valid, so the session ends. A 403
// means the identity is fine but lacks a role, so a valid session is kept.
func (m *Manager) HandleAuthError(ctx context.Context, aerr *api.AuthError) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.cur.IsAuthenticated() {
		return
	}
	if aerr.Status == http.StatusForbidden {
		m.log.Debug(ctx, "forbidden call, session kept", "status", aerr.Status)
		return
	}
	m.log.Warn(ctx, "credential rejected by backend, ending session")
	m.logoutLocked(ctx)
}
