package model

// Note is a company-authored note attached to a job application.
type Note struct {
	ID               string `json:"id,omitempty"`
	JobApplicationID string `json:"jobApplicationID"`
	Content          string `json:"content"`
	Timestamp        string `json:"timestamp"`
}
