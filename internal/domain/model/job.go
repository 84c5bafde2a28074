// Package model defines the view-facing data types exchanged with the
// job-board backend API. JSON tags follow the backend's camelCase wire format.
package model

// Job is a job posting as served by the backend.
type Job struct {
	ID                  string `json:"id,omitempty"`
	Title               string `json:"title"`
	CompanyID           string `json:"companyID"`
	Location            string `json:"location"`
	WorkType            string `json:"workType"`
	WorkArrangement     string `json:"workArrangement"`
	Currency            string `json:"currency"`
	MinSalary           int    `json:"minSalary"`
	MaxSalary           int    `json:"maxSalary"`
	JobDescription      string `json:"jobDescription"`
	JobSummary          string `json:"jobSummary"`
	RequiredSkills      string `json:"requiredSkills"`
	ExperienceLevel     string `json:"experienceLevel"`
	Education           string `json:"education"`
	NiceToHave          string `json:"niceToHave,omitempty"`
	Questions           string `json:"questions,omitempty"`
	PostOpenDate        string `json:"postOpenDate"`
	ApplicationDeadline string `json:"applicationDeadline"`
	NumberOfPositions   int    `json:"numberOfPositions"`
	Visibility          string `json:"visibility"`
	EmailNotifications  bool   `json:"emailNotifications"`
	AutoReject          bool   `json:"autoReject"`
}

// JobFilters are the query parameters accepted by GET /jobs/query.
type JobFilters struct {
	ID              string
	Title           string
	CompanyID       string
	Location        string
	MinSalary       int
	MaxSalary       int
	WorkType        string
	WorkArrangement string
	PostOpenDate    string // relative window, e.g. "1d" or "6w"
	Latest          bool
	Sort            string // dateAsc | dateDesc | title
}

// DeleteJobRequest carries the mandatory reason recorded when a job is removed.
type DeleteJobRequest struct {
	Reason string `json:"reason"`
}
