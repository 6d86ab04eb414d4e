package cli

import (
	"context"
	"fmt"

	"careerdesk/internal/client/nav"
)

// view renders one portal screen. Views report their own user-facing
// failures and return an error only for I/O-level problems.
type view func(ctx context.Context) error

type route struct {
	access nav.Access
	render view
}

// routes is the navigation table. Every render request passes the guard
// first, so protected views are unreachable without a session and
// login/register are unreachable with one.
func (a *App) routes() map[string]route {
	return map[string]route{
		nav.PathLogin:         {nav.Public, a.loginView},
		nav.PathRegister:      {nav.Public, a.registerView},
		nav.PathJobs:          {nav.Protected, a.jobsView},
		nav.PathApplications:  {nav.Protected, a.applicationsView},
		nav.PathApply:         {nav.Protected, a.applyView},
		nav.PathAppointments:  {nav.Protected, a.appointmentsView},
		nav.PathBook:          {nav.Protected, a.bookView},
		nav.PathDocuments:     {nav.Protected, a.documentsView},
		nav.PathUpload:        {nav.Protected, a.uploadView},
		nav.PathNotifications: {nav.Protected, a.notificationsView},
	}
}

// navigate runs the guard for path and either renders the view or follows
// the redirect. A protected-view bounce lands on the login view with the
// original destination remembered; a successful login resumes there.
func (a *App) navigate(ctx context.Context, path string) error {
	r, ok := a.routes()[path]
	if !ok {
		return fmt.Errorf("no view for %s", path)
	}

	d := a.guard.Check(a.sessions.Current(), path, r.access)
	if d.Allow {
		return r.render(ctx)
	}

	if r.access == nav.Public {
		fmt.Fprintln(a.out, "Already signed in.")
	} else {
		fmt.Fprintln(a.out, "Sign in to continue.")
	}
	return a.navigate(ctx, d.RedirectTo)
}
