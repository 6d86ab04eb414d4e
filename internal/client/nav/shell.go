package nav

import (
	"careerdesk/internal/client/models"
	"careerdesk/internal/client/session"
)

// Link is one navigation affordance shown by the shell.
type Link struct {
	Path  string
	Label string
}

// PortalLabel names the portal view for the identity's role set. Identities
// with several roles get the first matching label in a fixed precedence
// order; an unresolved identity gets the neutral product name.
func PortalLabel(id models.Identity) string {
	switch {
	case id.HasRole(models.RoleStaff):
		return "Staff portal"
	case id.HasRole(models.RoleEmployer):
		return "Employer portal"
	case id.HasRole(models.RoleProvider):
		return "Provider portal"
	case id.HasRole(models.RoleJobSeeker):
		return "Job seeker portal"
	default:
		return "careerdesk"
	}
}

// Links derives the navigation affordances for the session. Authenticated-
// only affordances never appear while unauthenticated, and login/register
// never appear while authenticated.
func Links(s session.Session) []Link {
	if !s.IsAuthenticated() {
		return []Link{
			{Path: PathLogin, Label: "login"},
			{Path: PathRegister, Label: "register"},
		}
	}

	links := []Link{{Path: PathJobs, Label: "jobs"}}
	if s.Identity.HasRole(models.RoleJobSeeker) {
		links = append(links, Link{Path: PathApplications, Label: "applications"})
	}
	if s.Identity.HasRole(models.RoleEmployer) || s.Identity.HasRole(models.RoleStaff) {
		links = append(links, Link{Path: PathApplications, Label: "applications (review)"})
	}
	links = append(links,
		Link{Path: PathAppointments, Label: "appointments"},
		Link{Path: PathDocuments, Label: "documents"},
		Link{Path: PathNotifications, Label: "notifications"},
	)
	return links
}
