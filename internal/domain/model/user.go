package model

// User is a platform account as served by the backend. UserInfo carries the
// role-specific profile (job seeker or company) when the backend includes it.
type User struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"userID"`
	Provider  string `json:"provider,omitempty"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarURL,omitempty"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
	Banned    bool   `json:"banned,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`

	JobSeekerInfo *JobSeekerInfo `json:"jobSeekerInfo,omitempty"`
	CompanyInfo   *CompanyInfo   `json:"companyInfo,omitempty"`
}

// JobSeekerInfo is the job seeker profile section of a user record.
type JobSeekerInfo struct {
	FullName    string `json:"fullName,omitempty"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	LinkedIn    string `json:"linkedIn"`
	DesiredRole string `json:"desiredRole,omitempty"`
	AboutMe     string `json:"aboutMe,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Portfolio   string `json:"portfolio,omitempty"`
	GitHub      string `json:"github,omitempty"`
	Skills      string `json:"skills,omitempty"`
}

// CompanyInfo is the company profile section of a user record.
type CompanyInfo struct {
	ID           string `json:"id,omitempty"`
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	AboutUs      string `json:"aboutUs"`
	Industry     string `json:"industry"`
	Size         string `json:"size"`
	Website      string `json:"website"`
	Logo         string `json:"logo,omitempty"`
	FoundedYear  string `json:"foundedYear,omitempty"`
	Headquarters string `json:"headquarters,omitempty"`
	LinkedIn     string `json:"linkedIn,omitempty"`
}

// UserFilters are the query parameters accepted by GET /users/query.
type UserFilters struct {
	ID       string
	Role     string
	Email    string
	Verified *bool
}
