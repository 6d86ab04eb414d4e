package cli

import (
	"context"
	"errors"
	"testing"

	"careerdesk/internal/client/models"
	"careerdesk/internal/client/nav"
	"careerdesk/internal/client/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigate_ProtectedWhileSignedOut_BouncesAndResumes(t *testing.T) {
	sessions := &fakeSessions{loginID: seeker}
	portal := &fakePortal{documents: []models.Document{{ID: "d1", Name: "cv.pdf"}}}
	a, out := newTestApp(portal, sessions, "")

	restore := stubInputs(t, []string{"alice"}, []byte("secret"))
	defer restore()

	require.NoError(t, a.navigate(context.Background(), nav.PathDocuments))

	assert.Contains(t, out.String(), "Sign in to continue.")
	assert.Equal(t, 1, sessions.loginCalls)
	assert.Contains(t, out.String(), "cv.pdf", "login must resume at the originally requested view")
	assert.Equal(t, 1, portal.listDocCalls)
	assert.Zero(t, portal.searchCalls, "default landing view must be skipped in favor of the remembered one")
}

func TestNavigate_LoginWhileSignedIn_RedirectsToLanding(t *testing.T) {
	sessions := &fakeSessions{cur: session.Session{State: session.Authenticated, Token: "abc123", Identity: seeker}}
	portal := &fakePortal{jobs: []models.Job{{ID: "j1", Title: "Warehouse Operator"}}}
	a, out := newTestApp(portal, sessions, "")

	restore := stubInputs(t, []string{""}, nil)
	defer restore()

	require.NoError(t, a.navigate(context.Background(), nav.PathLogin))

	assert.Contains(t, out.String(), "Already signed in.")
	assert.Equal(t, 1, portal.searchCalls, "must land on the default authenticated view")
	assert.Zero(t, sessions.loginCalls, "login view must never render while authenticated")
}

func TestNavigate_ProtectedWhileSignedIn_RendersDirectly(t *testing.T) {
	sessions := &fakeSessions{cur: session.Session{State: session.Authenticated, Token: "abc123", Identity: seeker}}
	portal := &fakePortal{notifications: []models.Notification{{ID: "n1", Message: "Interview scheduled"}}}
	a, out := newTestApp(portal, sessions, "")

	require.NoError(t, a.navigate(context.Background(), nav.PathNotifications))

	assert.Contains(t, out.String(), "Interview scheduled")
	assert.NotContains(t, out.String(), "Sign in to continue.")
}

func TestNavigate_UnknownPath_Errors(t *testing.T) {
	a, _ := newTestApp(&fakePortal{}, &fakeSessions{}, "")
	assert.Error(t, a.navigate(context.Background(), "/nowhere"))
}

func TestNavigate_FailedLoginDoesNotResume(t *testing.T) {
	sessions := &fakeSessions{loginErr: errors.New("invalid username or password")}
	portal := &fakePortal{}
	a, out := newTestApp(portal, sessions, "")

	restore := stubInputs(t, []string{"alice"}, []byte("wrong"))
	defer restore()

	require.NoError(t, a.navigate(context.Background(), nav.PathDocuments))

	assert.Contains(t, out.String(), "Login failed")
	assert.Zero(t, portal.listDocCalls, "remembered view must not render without a session")
}
