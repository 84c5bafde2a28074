package model

// JobApplication is a job seeker's application to a posting.
type JobApplication struct {
	ID          string `json:"id,omitempty"`
	ApplicantID string `json:"applicantID"`
	JobID       string `json:"jobID"`
	CompanyID   string `json:"companyID,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// JobApplicationWithApplicant is the nested response shape the backend
// returns when a company lists applicants for a posting.
type JobApplicationWithApplicant struct {
	JobApplication JobApplication `json:"jobApplication"`
	Applicant      User           `json:"applicant"`
}

// ApplicationFilters are the query parameters accepted by GET /apply/query.
type ApplicationFilters struct {
	ApplicantID string
	JobID       string
	CompanyID   string
	Status      string
}
