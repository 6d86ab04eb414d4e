// Package portaltest runs an in-process fake of the portal backend for
// tests. It issues real HS256 tokens on login, verifies them on protected
// endpoints, serves deterministic portal data, and records the Authorization
// header of every request so tests can assert exactly what went over the
// wire.
package portaltest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"careerdesk/internal/client/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// User is an account known to the fake backend.
type User struct {
	ID       string
	Username string
	Password string
	Roles    []models.Role
}

// Claims is the token payload the fake backend signs.
type Claims struct {
	jwt.RegisteredClaims
	Username string        `json:"username"`
	Roles    []models.Role `json:"roles"`
}

// Server is the fake portal backend. Configure it, then point an api.Client
// at URL().
type Server struct {
	srv    *httptest.Server
	secret []byte

	mu       sync.Mutex
	users    map[string]User
	forced   map[string]int    // path -> forced response status
	lastAuth map[string]string // path -> last seen Authorization header

	jobs          []models.Job
	applications  []models.Application
	appointments  []models.Appointment
	documents     []models.Document
	notifications []models.Notification
}

// NewServer starts a fake backend with one seeded job-seeker account
// ("alice" / "secret") and a small set of portal records.
func NewServer() *Server {
	s := &Server{
		secret:   []byte("portaltest-secret"),
		users:    map[string]User{},
		forced:   map[string]int{},
		lastAuth: map[string]string{},
		jobs: []models.Job{
			{ID: "j1", Title: "Warehouse Operator", Company: "Northline", Location: "Riga"},
			{ID: "j2", Title: "Java Developer", Company: "Softhouse", Location: "Remote"},
		},
		notifications: []models.Notification{
			{ID: "n1", Message: "Your profile is incomplete", CreatedAt: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)},
		},
	}
	s.AddUser(User{ID: "u1", Username: "alice", Password: "secret", Roles: []models.Role{models.RoleJobSeeker}})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("GET /auth/me", s.protected(s.handleMe))
	mux.HandleFunc("GET /jobs", s.protected(s.handleJobs))
	mux.HandleFunc("GET /applications", s.protected(s.handleListApplications))
	mux.HandleFunc("POST /applications", s.protected(s.handleSubmitApplication))
	mux.HandleFunc("GET /appointments", s.protected(s.handleListAppointments))
	mux.HandleFunc("POST /appointments", s.protected(s.handleBookAppointment))
	mux.HandleFunc("GET /documents", s.protected(s.handleListDocuments))
	mux.HandleFunc("POST /documents", s.protected(s.handleUploadDocument))
	mux.HandleFunc("GET /notifications", s.protected(s.handleNotifications))

	s.srv = httptest.NewServer(s.record(mux))
	return s
}

func (s *Server) Close()      { s.srv.Close() }
func (s *Server) URL() string { return s.srv.URL }

// AddUser registers an account the fake backend will accept.
func (s *Server) AddUser(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Username] = u
}

// ForceStatus makes every request to path fail with the given status until
// reset with code 0.
func (s *Server) ForceStatus(path string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if code == 0 {
		delete(s.forced, path)
		return
	}
	s.forced[path] = code
}

// LastAuthorization returns the Authorization header of the most recent
// request to path ("" if none or absent).
func (s *Server) LastAuthorization(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAuth[path]
}

// IssueToken mints a signed token for the user, valid for ttl. Tests use it
// to seed credential stores with known-good (or expired) tokens.
func (s *Server) IssueToken(u User, ttl time.Duration) string {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		Username: u.Username,
		Roles:    u.Roles,
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		panic(fmt.Sprintf("portaltest: signing token: %v", err))
	}
	return tok
}

func (s *Server) parseToken(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) { return s.secret, nil })
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// record captures the Authorization header for every request and applies
// forced statuses before the real handler runs.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.lastAuth[r.URL.Path] = r.Header.Get("Authorization")
		code, forced := s.forced[r.URL.Path]
		s.mu.Unlock()

		if forced {
			writeError(w, code, http.StatusText(code))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// protected rejects requests without a valid bearer token.
func (s *Server) protected(next func(http.ResponseWriter, *http.Request, *Claims)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(h, "Bearer ")
		if !ok || raw == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		claims, err := s.parseToken(raw)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next(w, r, claims)
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	u, ok := s.users[req.Username]
	s.mu.Unlock()
	if !ok || u.Password != req.Password {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResult{
		Token: s.IssueToken(u, time.Hour),
		User:  models.Identity{ID: u.ID, Username: u.Username, Roles: u.Roles},
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string      `json:"username"`
		Password string      `json:"password"`
		Role     models.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[req.Username]; exists {
		writeError(w, http.StatusConflict, "username already taken")
		return
	}
	u := User{ID: uuid.NewString(), Username: req.Username, Password: req.Password, Roles: []models.Role{req.Role}}
	s.users[req.Username] = u
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleMe(w http.ResponseWriter, _ *http.Request, c *Claims) {
	writeJSON(w, http.StatusOK, models.Identity{ID: c.Subject, Username: c.Username, Roles: c.Roles})
}

func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request, _ *Claims) {
	q := strings.ToLower(r.URL.Query().Get("q"))

	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]models.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if q == "" || strings.Contains(strings.ToLower(j.Title), q) {
			matched = append(matched, j)
		}
	}
	writeJSON(w, http.StatusOK, matched)
}

func (s *Server) handleListApplications(w http.ResponseWriter, _ *http.Request, _ *Claims) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.applications)
}

func (s *Server) handleSubmitApplication(w http.ResponseWriter, r *http.Request, c *Claims) {
	// Applying is a job-seeker affordance; everyone else gets 403 so tests
	// have a real forbidden case that is not a forced status.
	if !hasRole(c.Roles, models.RoleJobSeeker) {
		writeError(w, http.StatusForbidden, "only job seekers can apply")
		return
	}
	var req struct {
		JobID string `json:"jobId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var title string
	for _, j := range s.jobs {
		if j.ID == req.JobID {
			title = j.Title
		}
	}
	if title == "" {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	app := models.Application{
		ID: uuid.NewString(), JobID: req.JobID, JobTitle: title,
		Status: "SUBMITTED", SubmittedAt: time.Now().UTC(),
	}
	s.applications = append(s.applications, app)
	writeJSON(w, http.StatusCreated, app)
}

func (s *Server) handleListAppointments(w http.ResponseWriter, _ *http.Request, _ *Claims) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.appointments)
}

func (s *Server) handleBookAppointment(w http.ResponseWriter, r *http.Request, _ *Claims) {
	var req struct {
		Topic   string    `json:"topic"`
		StartAt time.Time `json:"startAt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	app := models.Appointment{ID: uuid.NewString(), Topic: req.Topic, With: "advisor", StartAt: req.StartAt}
	s.appointments = append(s.appointments, app)
	writeJSON(w, http.StatusCreated, app)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, _ *http.Request, _ *Claims) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.documents)
}

func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request, _ *Claims) {
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "malformed upload")
		return
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file part")
		return
	}
	defer f.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	doc := models.Document{
		ID: uuid.NewString(), Name: hdr.Filename,
		SizeBytes: hdr.Size, UploadedAt: time.Now().UTC(),
	}
	s.documents = append(s.documents, doc)
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleNotifications(w http.ResponseWriter, _ *http.Request, _ *Claims) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.notifications)
}

func hasRole(roles []models.Role, want models.Role) bool {
	for _, r := range roles {
		if r == want {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
