package model

// FileMetadata describes an uploaded document (resume, cover letter,
// portfolio) stored by the backend. Content itself is never proxied
// through this tier.
type FileMetadata struct {
	ID            string `json:"id"`
	UserID        string `json:"userID"`
	Filename      string `json:"filename"`
	FileExtension string `json:"fileExtension"`
	ContentType   string `json:"contentType"`
	Size          int64  `json:"size"`
	Category      string `json:"category"`
	UploadDate    string `json:"uploadDate"`
}

// ApplicantFiles groups the documents attached to a single application.
type ApplicantFiles struct {
	ApplicationID string         `json:"applicationID"`
	ApplicantID   string         `json:"applicantID"`
	JobID         string         `json:"jobID"`
	Files         []FileMetadata `json:"files"`
}
