package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"careerdesk/internal/client/api"
	"careerdesk/internal/client/config"
	"careerdesk/internal/client/credstore"
	"careerdesk/internal/client/models"
	"careerdesk/internal/client/nav"
	"careerdesk/internal/client/session"
	"careerdesk/internal/logging"

	_ "modernc.org/sqlite"
)

// portalClient is the slice of the boundary client the views need.
// The real api.Client satisfies it; tests provide a lightweight stub.
type portalClient interface {
	Register(ctx context.Context, username, password string, role models.Role) error
	SearchJobs(ctx context.Context, query string) ([]models.Job, error)
	ListApplications(ctx context.Context) ([]models.Application, error)
	SubmitApplication(ctx context.Context, jobID string) (models.Application, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	BookAppointment(ctx context.Context, topic string, startAt time.Time) (models.Appointment, error)
	ListDocuments(ctx context.Context) ([]models.Document, error)
	UploadDocument(ctx context.Context, name string, r io.Reader) (models.Document, error)
	ListNotifications(ctx context.Context) ([]models.Notification, error)
}

// sessionManager is the slice of the session manager the CLI needs.
type sessionManager interface {
	Login(ctx context.Context, username, password string) (models.Identity, error)
	Logout(ctx context.Context)
	Current() session.Session
	Restore(ctx context.Context)
}

// App wires the careerdesk client together: config, session manager, boundary
// client, navigation guard, and the interactive REPL.
type App struct {
	config   *config.Config
	api      portalClient
	sessions sessionManager
	guard    *nav.Guard
	reader   *bufio.Reader
	out      io.Writer
	db       *sql.DB
	log      logging.Logger
}

// NewApp builds the application from config. A state database that cannot be
// opened degrades to an in-memory credential store (the session then simply
// does not survive a restart); it never prevents startup.
func NewApp(c *config.Config) *App {
	ctx := context.Background()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var (
		store credstore.Store
		db    *sql.DB
	)
	db, err := credstore.OpenDatabase(ctx, c.StateDBPath)
	if err != nil {
		log.Warn(ctx, "state database unavailable, credentials will not persist",
			"path", c.StateDBPath, "error", err.Error())
		store = credstore.NewMemoryStore()
		db = nil
	} else {
		store = credstore.NewSQLiteStore(db)
	}

	httpClient := &http.Client{Timeout: c.RequestTimeout}
	client := api.New(c.ServerBaseURL, httpClient, store, log.With("component", "api"))
	sessions := session.NewManager(client, store, log.With("component", "session"))
	client.SetAuthErrorHook(sessions.HandleAuthError)

	return &App{
		config:   c,
		api:      client,
		sessions: sessions,
		guard:    nav.NewGuard(),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		db:       db,
		log:      log,
	}
}

// Run restores any persisted session and enters the REPL. It returns when
// the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.sessions.Restore(ctx)
	a.Root(ctx)
}

// Close releases the state database.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
