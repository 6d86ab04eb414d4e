package cli

import (
	"context"
	"fmt"
	"time"
)

const appointmentTimeLayout = "2006-01-02 15:04"

// appointmentsView lists the current user's appointments.
func (a *App) appointmentsView(ctx context.Context) error {
	apps, err := a.api.ListAppointments(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load appointments: %s\n", err.Error())
		return nil
	}
	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No appointments. Use 'book' to schedule one.")
		return nil
	}
	for _, app := range apps {
		fmt.Fprintf(a.out, "%s  %-30s with %-15s %s\n",
			app.ID, app.Topic, app.With, app.StartAt.Format(appointmentTimeLayout))
	}
	return nil
}

// bookView schedules a new appointment.
func (a *App) bookView(ctx context.Context) error {
	topic, err := getSimpleText(a.reader, "Topic", a.out)
	if err != nil {
		return err
	}
	when, err := getSimpleText(a.reader, "When (YYYY-MM-DD HH:MM)", a.out)
	if err != nil {
		return err
	}
	startAt, err := time.Parse(appointmentTimeLayout, when)
	if err != nil {
		fmt.Fprintln(a.out, "Unrecognized time:", when)
		return nil
	}

	app, err := a.api.BookAppointment(ctx, topic, startAt)
	if err != nil {
		fmt.Fprintf(a.out, "Could not book: %s\n", err.Error())
		return nil
	}
	fmt.Fprintf(a.out, "Booked %s at %s.\n", app.Topic, app.StartAt.Format(appointmentTimeLayout))
	return nil
}
