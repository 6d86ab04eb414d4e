package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"careerdesk/internal/client/nav"
)

func (a *App) getStatus() string {
	s := a.sessions.Current()
	switch {
	case !s.IsAuthenticated():
		return ""
	case s.Identity.IsZero():
		return "(signed in)"
	default:
		return fmt.Sprintf("(%s, %s)", s.Identity.Username, nav.PortalLabel(s.Identity))
	}
}

func (a *App) printHelp() {
	links := nav.Links(a.sessions.Current())
	labels := make([]string, 0, len(links))
	for _, l := range links {
		labels = append(labels, l.Label)
	}
	fmt.Fprintln(a.out, "Views:", strings.Join(labels, ", "))
	if a.sessions.Current().IsAuthenticated() {
		fmt.Fprintln(a.out, "Actions: apply, book, upload, whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Actions: whoami, exit")
	}
}

// Root runs the command loop. Command handlers report their own errors to
// the user; the loop stays resilient and exits only on 'exit'/'quit' or EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to careerdesk (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "cd %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) && strings.TrimSpace(line) == "" {
				return
			}
			if !errors.Is(err, io.EOF) {
				return
			}
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			a.printHelp()

		case "login":
			_ = a.navigate(ctx, nav.PathLogin)
		case "register":
			_ = a.navigate(ctx, nav.PathRegister)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)

		case "j", "jobs":
			_ = a.navigate(ctx, nav.PathJobs)
		case "applications":
			_ = a.navigate(ctx, nav.PathApplications)
		case "apply":
			_ = a.navigate(ctx, nav.PathApply)
		case "appointments":
			_ = a.navigate(ctx, nav.PathAppointments)
		case "book":
			_ = a.navigate(ctx, nav.PathBook)
		case "documents":
			_ = a.navigate(ctx, nav.PathDocuments)
		case "upload":
			_ = a.navigate(ctx, nav.PathUpload)
		case "notifications":
			_ = a.navigate(ctx, nav.PathNotifications)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
