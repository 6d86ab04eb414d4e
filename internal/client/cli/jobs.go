package cli

import (
	"context"
	"fmt"
)

// jobsView prompts for an optional search query and lists matching
// vacancies.
func (a *App) jobsView(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Search jobs (empty for all)", a.out)
	if err != nil {
		return err
	}

	jobs, err := a.api.SearchJobs(ctx, query)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load jobs: %s\n", err.Error())
		return nil
	}
	if len(jobs) == 0 {
		fmt.Fprintln(a.out, "No jobs found.")
		return nil
	}
	for _, j := range jobs {
		fmt.Fprintf(a.out, "%s  %-30s %-20s %s\n", j.ID, j.Title, j.Company, j.Location)
	}
	return nil
}
