package cli

import (
	"context"
	"fmt"
)

// notificationsView lists the current user's notifications, unread first
// marker included.
func (a *App) notificationsView(ctx context.Context) error {
	ns, err := a.api.ListNotifications(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load notifications: %s\n", err.Error())
		return nil
	}
	if len(ns) == 0 {
		fmt.Fprintln(a.out, "No notifications.")
		return nil
	}
	for _, n := range ns {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %s  %s\n", marker, n.CreatedAt.Format("2006-01-02"), n.Message)
	}
	return nil
}
