package dtos

// ExperienceEntry is one work-experience record of a profile.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProfileRequest is the payload of the candidate profile wizard, one
// embedded struct per step.
type ProfileRequest struct {
	ProfilePersonal
	ProfileHistory
	ProfileSkillSet
	ProfileOverview
}

type ProfilePersonal struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

type ProfileHistory struct {
	Experience []ExperienceEntry `json:"experience" binding:"required"`
}

type ProfileSkillSet struct {
	Skills []string `json:"skills" binding:"required"`
}

type ProfileOverview struct {
	Headline   string `json:"headline" binding:"required"`
	Summary    string `json:"summary,omitempty"`
	ResumeLink string `json:"resume_link,omitempty"`
}

type ResumeParseRequest struct {
	ResumeText string `json:"resume_text" binding:"required"`
}

// ParsedResume is what the LLM pulls out of a pasted resume.
type ParsedResume struct {
	FullName   string            `json:"full_name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Location   string            `json:"location"`
	Headline   string            `json:"headline"`
	Summary    string            `json:"summary"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
}
