package dtos

type JobExtractionRequest struct {
	RawHTML string `json:"raw_html" binding:"required"`
	URL     string `json:"url"`
}

// ExtractedJob is what the LLM pulls out of a raw job page.
type ExtractedJob struct {
	CompanyName     string   `json:"company_name"`
	Title           string   `json:"role_title"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	EmploymentType  string   `json:"employment_type"`
	ExperienceLevel string   `json:"experience_level"`
	TechStack       []string `json:"tech_stack"`
	SalaryRange     string   `json:"salary_range"`
}

type JobCreationRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Title       string `json:"role_title" binding:"required"`
	JobLink     string `json:"job_link"`
	Description string `json:"description" binding:"required"`

	// Optional Fields
	Location    string   `json:"location"`
	SalaryRange string   `json:"salary_range"`
	TechStack   []string `json:"tech_stack"`
	ResumeLink  string   `json:"resume_link"`
	Status      string   `json:"status"` // Defaults to "OPEN" if empty
}

// JobPostingRequest is the payload of the job posting wizard, one
// embedded struct per step.
type JobPostingRequest struct {
	JobBasics
	JobDetails
	JobRequirements
	JobCompensation
}

type JobBasics struct {
	Title       string `json:"title" binding:"required"`
	Location    string `json:"location" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
}

type JobDetails struct {
	EmploymentType string `json:"employment_type" binding:"required"`
	Description    string `json:"description" binding:"required"`
	Remote         bool   `json:"remote"`
}

type JobRequirements struct {
	Skills          []string `json:"skills" binding:"required"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
}

type JobCompensation struct {
	SalaryRange     string `json:"salary_range,omitempty"`
	ApplicationLink string `json:"application_link,omitempty"`
}

// JobListing is one entry of the job list, remote or local.
type JobListing struct {
	ID             ID       `json:"id"`
	Title          string   `json:"title"`
	CompanyName    string   `json:"company_name"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"employment_type,omitempty"`
	Remote         bool     `json:"remote"`
	Skills         []string `json:"skills,omitempty"`
	SalaryRange    string   `json:"salary_range,omitempty"`
	Status         string   `json:"status,omitempty"`
}

type JobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=OPEN CLOSED DRAFT"`
}
