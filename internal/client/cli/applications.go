package cli

import (
	"context"
	"fmt"
)

// applicationsView lists the current user's job applications.
func (a *App) applicationsView(ctx context.Context) error {
	apps, err := a.api.ListApplications(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load applications: %s\n", err.Error())
		return nil
	}
	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No applications yet. Use 'apply' to submit one.")
		return nil
	}
	for _, app := range apps {
		fmt.Fprintf(a.out, "%s  %-30s %-12s %s\n",
			app.ID, app.JobTitle, app.Status, app.SubmittedAt.Format("2006-01-02"))
	}
	return nil
}

// applyView submits an application for a job by id.
func (a *App) applyView(ctx context.Context) error {
	jobID, err := getSimpleText(a.reader, "Job id to apply for", a.out)
	if err != nil {
		return err
	}
	if jobID == "" {
		fmt.Fprintln(a.out, "No job id given.")
		return nil
	}

	app, err := a.api.SubmitApplication(ctx, jobID)
	if err != nil {
		fmt.Fprintf(a.out, "Could not apply: %s\n", err.Error())
		return nil
	}
	fmt.Fprintf(a.out, "Applied for %s (status %s).\n", app.JobTitle, app.Status)
	return nil
}
