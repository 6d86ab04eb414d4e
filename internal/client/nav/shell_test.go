package nav

import (
	"testing"

	"careerdesk/internal/client/models"
	"careerdesk/internal/client/session"

	"github.com/stretchr/testify/assert"
)

func linkPaths(links []Link) []string {
	paths := make([]string, 0, len(links))
	for _, l := range links {
		paths = append(paths, l.Path)
	}
	return paths
}

func TestLinks_Unauthenticated_OnlyLoginRegister(t *testing.T) {
	paths := linkPaths(Links(session.Session{}))
	assert.Equal(t, []string{PathLogin, PathRegister}, paths)
}

func TestLinks_Authenticated_NeverShowsLoginRegister(t *testing.T) {
	paths := linkPaths(Links(authSession(models.RoleJobSeeker)))
	assert.NotContains(t, paths, PathLogin)
	assert.NotContains(t, paths, PathRegister)
	assert.Contains(t, paths, PathNotifications)
}

func TestLinks_JobSeeker_HasApplications(t *testing.T) {
	paths := linkPaths(Links(authSession(models.RoleJobSeeker)))
	assert.Contains(t, paths, PathApplications)
}

func TestLinks_UnresolvedIdentity_BaseSetOnly(t *testing.T) {
	s := session.Session{State: session.Authenticated, Token: "abc123"}
	paths := linkPaths(Links(s))
	assert.Equal(t, []string{PathJobs, PathAppointments, PathDocuments, PathNotifications}, paths)
}

func TestPortalLabel(t *testing.T) {
	tests := []struct {
		name  string
		roles []models.Role
		want  string
	}{
		{"job seeker", []models.Role{models.RoleJobSeeker}, "Job seeker portal"},
		{"employer", []models.Role{models.RoleEmployer}, "Employer portal"},
		{"staff", []models.Role{models.RoleStaff}, "Staff portal"},
		{"provider", []models.Role{models.RoleProvider}, "Provider portal"},
		{"staff wins over seeker", []models.Role{models.RoleJobSeeker, models.RoleStaff}, "Staff portal"},
		{"no roles", nil, "careerdesk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := models.Identity{Roles: tt.roles}
			assert.Equal(t, tt.want, PortalLabel(id))
		})
	}
}
