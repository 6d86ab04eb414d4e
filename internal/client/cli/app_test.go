package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"careerdesk/internal/client/config"
	"careerdesk/internal/client/models"
	"careerdesk/internal/client/nav"
	"careerdesk/internal/client/session"
)

// stubInputs replaces the interactive input seams. Each getSimpleText call
// consumes the next queued text; getPassword always returns password.
func stubInputs(t *testing.T, texts []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword

	queue := append([]string(nil), texts...)
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(queue) == 0 {
			return "", nil
		}
		next := queue[0]
		queue = queue[1:]
		return next, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

var seeker = models.Identity{ID: "u1", Username: "alice", Roles: []models.Role{models.RoleJobSeeker}}

// fakeSessions implements sessionManager.
type fakeSessions struct {
	cur      session.Session
	loginID  models.Identity
	loginErr error

	loginUser    string
	loginCalls   int
	logoutCalls  int
	restoreCalls int
}

func (f *fakeSessions) Login(_ context.Context, username, _ string) (models.Identity, error) {
	f.loginCalls++
	f.loginUser = username
	if f.loginErr != nil {
		f.cur = session.Session{}
		return models.Identity{}, f.loginErr
	}
	f.cur = session.Session{State: session.Authenticated, Token: "abc123", Identity: f.loginID}
	return f.loginID, nil
}

func (f *fakeSessions) Logout(context.Context) {
	f.logoutCalls++
	f.cur = session.Session{}
}

func (f *fakeSessions) Current() session.Session { return f.cur }
func (f *fakeSessions) Restore(context.Context)  { f.restoreCalls++ }

// fakePortal implements portalClient with canned data.
type fakePortal struct {
	jobs          []models.Job
	applications  []models.Application
	appointments  []models.Appointment
	documents     []models.Document
	notifications []models.Notification

	registerErr error
	listErr     error

	searchQuery   string
	searchCalls   int
	listDocCalls  int
	registerUser  string
	registerRole  models.Role
	submittedJob  string
	bookedTopic   string
	uploadedName  string
	uploadedBytes []byte
}

func (f *fakePortal) Register(_ context.Context, username, _ string, role models.Role) error {
	f.registerUser, f.registerRole = username, role
	return f.registerErr
}

func (f *fakePortal) SearchJobs(_ context.Context, query string) ([]models.Job, error) {
	f.searchCalls++
	f.searchQuery = query
	return f.jobs, f.listErr
}

func (f *fakePortal) ListApplications(context.Context) ([]models.Application, error) {
	return f.applications, f.listErr
}

func (f *fakePortal) SubmitApplication(_ context.Context, jobID string) (models.Application, error) {
	f.submittedJob = jobID
	return models.Application{ID: "a1", JobID: jobID, JobTitle: "Java Developer", Status: "SUBMITTED"}, f.listErr
}

func (f *fakePortal) ListAppointments(context.Context) ([]models.Appointment, error) {
	return f.appointments, f.listErr
}

func (f *fakePortal) BookAppointment(_ context.Context, topic string, startAt time.Time) (models.Appointment, error) {
	f.bookedTopic = topic
	return models.Appointment{ID: "m1", Topic: topic, With: "advisor", StartAt: startAt}, f.listErr
}

func (f *fakePortal) ListDocuments(context.Context) ([]models.Document, error) {
	f.listDocCalls++
	return f.documents, f.listErr
}

func (f *fakePortal) UploadDocument(_ context.Context, name string, r io.Reader) (models.Document, error) {
	f.uploadedName = name
	f.uploadedBytes, _ = io.ReadAll(r)
	return models.Document{ID: "d1", Name: name, SizeBytes: int64(len(f.uploadedBytes))}, f.listErr
}

func (f *fakePortal) ListNotifications(context.Context) ([]models.Notification, error) {
	return f.notifications, f.listErr
}

// newTestApp wires an App around fakes, with stdout captured and the REPL
// fed from input.
func newTestApp(portal *fakePortal, sessions *fakeSessions, input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	a := &App{
		config:   &config.Config{},
		api:      portal,
		sessions: sessions,
		guard:    nav.NewGuard(),
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      out,
	}
	return a, out
}
