package cli

import (
	"context"
	"fmt"

	"careerdesk/internal/client/models"
	"careerdesk/internal/client/nav"
	"careerdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// loginView prompts for credentials and starts a session. On success it
// resumes at the remembered destination (when the user was bounced here from
// a protected view) or at the default landing view. A rejected login shows
// the backend's message verbatim and stays on the login view's prompt.
func (a *App) loginView(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.sessions.Login(ctx, username, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s. %s\n", id.Username, nav.PortalLabel(id))
	return a.navigate(ctx, a.guard.ResumePath())
}

// registerView prompts for the new account's details and creates it. The
// role choice mirrors the portal's registration form.
func (a *App) registerView(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	roleInput, err := getSimpleText(a.reader, "Account type: (s)eeker, (e)mployer, (p)rovider", a.out)
	if err != nil {
		return err
	}
	var role models.Role
	switch roleInput {
	case "s", "seeker":
		role = models.RoleJobSeeker
	case "e", "employer":
		role = models.RoleEmployer
	case "p", "provider":
		role = models.RoleProvider
	default:
		fmt.Fprintln(a.out, "Unknown account type:", roleInput)
		return nil
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Register(ctx, username, string(password), role); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err.Error())
		return nil
	}
	fmt.Fprintln(a.out, "Account created. Use 'login' to sign in.")
	return nil
}

// Logout ends the session. Safe to call when not signed in.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// Whoami prints the current session state, including a restored session
// whose identity has not been resolved yet.
func (a *App) Whoami(_ context.Context) error {
	s := a.sessions.Current()
	switch {
	case !s.IsAuthenticated():
		fmt.Fprintln(a.out, "Not signed in.")
	case s.Identity.IsZero():
		fmt.Fprintln(a.out, "Signed in (identity not resolved yet).")
	default:
		fmt.Fprintf(a.out, "%s (roles %v) - %s\n", s.Identity.Username, s.Identity.Roles, nav.PortalLabel(s.Identity))
	}
	return nil
}
