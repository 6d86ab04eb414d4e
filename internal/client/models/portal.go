package models

import "time"

// Job is a posted vacancy as returned by the job search endpoint.
type Job struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
}

// Application links the current user to a job they applied for.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	JobTitle    string    `json:"jobTitle"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Appointment is a scheduled meeting with staff or a service provider.
type Appointment struct {
	ID      string    `json:"id"`
	Topic   string    `json:"topic"`
	With    string    `json:"with"`
	StartAt time.Time `json:"startAt"`
}

// Document is an uploaded file's metadata; the content itself stays on the
// backend.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SizeBytes  int64     `json:"sizeBytes"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Notification is a message addressed to the current user.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
