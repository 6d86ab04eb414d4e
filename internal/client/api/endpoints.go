package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"careerdesk/internal/client/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type applicationRequest struct {
	JobID string `json:"jobId"`
}

type appointmentRequest struct {
	Topic   string    `json:"topic"`
	StartAt time.Time `json:"startAt"`
}

// Login exchanges credentials for a bearer token and the matching identity.
// Authentication failures are returned to the caller and never routed through
// the auth-error hook: a rejected login is not a lost session.
func (c *Client) Login(ctx context.Context, username, password string) (models.LoginResult, error) {
	body, err := jsonBody(loginRequest{Username: username, Password: password})
	if err != nil {
		return models.LoginResult{}, err
	}
	var res models.LoginResult
	err = c.call(ctx, callOpts{
		method: http.MethodPost, path: "/auth/login",
		body: body, contentType: "application/json",
		out: &res, noAuthHook: true,
	})
	return res, err
}

// Register creates a new portal account with the requested role.
func (c *Client) Register(ctx context.Context, username, password string, role models.Role) error {
	body, err := jsonBody(registerRequest{Username: username, Password: password, Role: role})
	if err != nil {
		return err
	}
	return c.call(ctx, callOpts{
		method: http.MethodPost, path: "/auth/register",
		body: body, contentType: "application/json",
		noAuthHook: true,
	})
}

// Me resolves the identity behind the stored credential. The session manager
// calls it during startup restore and reacts to the outcome itself, so the
// hook is bypassed.
func (c *Client) Me(ctx context.Context) (models.Identity, error) {
	var id models.Identity
	err := c.call(ctx, callOpts{
		method: http.MethodGet, path: "/auth/me",
		out: &id, noAuthHook: true,
	})
	return id, err
}

// SearchJobs lists vacancies matching the query (all vacancies when empty).
func (c *Client) SearchJobs(ctx context.Context, query string) ([]models.Job, error) {
	q := url.Values{}
	if query != "" {
		q.Set("q", query)
	}
	var jobs []models.Job
	err := c.call(ctx, callOpts{method: http.MethodGet, path: "/jobs", query: q, out: &jobs})
	return jobs, err
}

// ListApplications returns the current user's job applications.
func (c *Client) ListApplications(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	err := c.call(ctx, callOpts{method: http.MethodGet, path: "/applications", out: &apps})
	return apps, err
}

// SubmitApplication applies the current user to a job.
func (c *Client) SubmitApplication(ctx context.Context, jobID string) (models.Application, error) {
	body, err := jsonBody(applicationRequest{JobID: jobID})
	if err != nil {
		return models.Application{}, err
	}
	var app models.Application
	err = c.call(ctx, callOpts{
		method: http.MethodPost, path: "/applications",
		body: body, contentType: "application/json", out: &app,
	})
	return app, err
}

// ListAppointments returns the current user's appointments.
func (c *Client) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	var apps []models.Appointment
	err := c.call(ctx, callOpts{method: http.MethodGet, path: "/appointments", out: &apps})
	return apps, err
}

// BookAppointment schedules an appointment on the given topic.
func (c *Client) BookAppointment(ctx context.Context, topic string, startAt time.Time) (models.Appointment, error) {
	body, err := jsonBody(appointmentRequest{Topic: topic, StartAt: startAt})
	if err != nil {
		return models.Appointment{}, err
	}
	var app models.Appointment
	err = c.call(ctx, callOpts{
		method: http.MethodPost, path: "/appointments",
		body: body, contentType: "application/json", out: &app,
	})
	return app, err
}

// ListDocuments returns the current user's uploaded documents.
func (c *Client) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	err := c.call(ctx, callOpts{method: http.MethodGet, path: "/documents", out: &docs})
	return docs, err
}

// UploadDocument streams a file to the backend as a multipart form.
func (c *Client) UploadDocument(ctx context.Context, name string, r io.Reader) (models.Document, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", name)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(fmt.Errorf("copying %s: %w", name, err))
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	var doc models.Document
	err := c.call(ctx, callOpts{
		method: http.MethodPost, path: "/documents",
		body: pr, contentType: mw.FormDataContentType(), out: &doc,
	})
	return doc, err
}

// ListNotifications returns the current user's notifications.
func (c *Client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var ns []models.Notification
	err := c.call(ctx, callOpts{method: http.MethodGet, path: "/notifications", out: &ns})
	return ns, err
}
