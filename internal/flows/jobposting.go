package flows

import (
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/wizard"
)

const JobPosting = "job_posting"

const (
	JobTitle           wizard.FieldKey = "title"
	JobLocation        wizard.FieldKey = "location"
	JobCompanyName     wizard.FieldKey = "company_name"
	JobEmploymentType  wizard.FieldKey = "employment_type"
	JobDescription     wizard.FieldKey = "description"
	JobRemote          wizard.FieldKey = "remote"
	JobSkills          wizard.FieldKey = "skills"
	JobExperienceLevel wizard.FieldKey = "experience_level"
	JobSalaryRange     wizard.FieldKey = "salary_range"
	JobApplicationLink wizard.FieldKey = "application_link"
)

func JobPostingDefinition() wizard.Definition {
	return wizard.Definition{
		Name: JobPosting,
		Steps: []wizard.StepDefinition{
			{ID: 1, Title: "Basics", RequiredFields: []wizard.FieldKey{JobTitle, JobLocation, JobCompanyName}},
			{ID: 2, Title: "Details", RequiredFields: []wizard.FieldKey{JobEmploymentType, JobDescription}},
			{ID: 3, Title: "Requirements", RequiredFields: []wizard.FieldKey{JobSkills}},
			{ID: 4, Title: "Compensation & review"},
		},
		Fields: []wizard.FieldDefinition{
			{Key: JobTitle, Kind: wizard.KindString},
			{Key: JobLocation, Kind: wizard.KindString},
			{Key: JobCompanyName, Kind: wizard.KindString},
			{Key: JobEmploymentType, Kind: wizard.KindString},
			{Key: JobDescription, Kind: wizard.KindString},
			{Key: JobRemote, Kind: wizard.KindBool},
			{Key: JobSkills, Kind: wizard.KindList},
			{Key: JobExperienceLevel, Kind: wizard.KindString},
			{Key: JobSalaryRange, Kind: wizard.KindString},
			{Key: JobApplicationLink, Kind: wizard.KindString},
		},
		RequiresAuth: true,
		Encode:       encodeJobPosting,
	}
}

func encodeJobPosting(s *wizard.Store) (any, error) {
	return validated(&dtos.JobPostingRequest{
		JobBasics: dtos.JobBasics{
			Title:       trimmed(s, JobTitle),
			Location:    trimmed(s, JobLocation),
			CompanyName: trimmed(s, JobCompanyName),
		},
		JobDetails: dtos.JobDetails{
			EmploymentType: trimmed(s, JobEmploymentType),
			Description:    trimmed(s, JobDescription),
			Remote:         s.Bool(JobRemote),
		},
		JobRequirements: dtos.JobRequirements{
			Skills:          s.List(JobSkills),
			ExperienceLevel: trimmed(s, JobExperienceLevel),
		},
		JobCompensation: dtos.JobCompensation{
			SalaryRange:     trimmed(s, JobSalaryRange),
			ApplicationLink: trimmed(s, JobApplicationLink),
		},
	})
}

// JobPrefill turns an AI extraction into commands for the job posting
// wizard. Fields the extraction left empty are not touched.
func JobPrefill(job *dtos.ExtractedJob) []wizard.Command {
	var cmds []wizard.Command
	cmds = appendString(cmds, JobTitle, job.Title)
	cmds = appendString(cmds, JobLocation, job.Location)
	cmds = appendString(cmds, JobCompanyName, job.CompanyName)
	cmds = appendString(cmds, JobEmploymentType, job.EmploymentType)
	cmds = appendString(cmds, JobDescription, job.Description)
	cmds = appendString(cmds, JobExperienceLevel, job.ExperienceLevel)
	cmds = appendString(cmds, JobSalaryRange, job.SalaryRange)
	for _, tech := range job.TechStack {
		cmds = append(cmds, wizard.AddItem{Key: JobSkills, Item: tech})
	}
	if isRemote(job.Location) {
		cmds = append(cmds, wizard.SetField{Key: JobRemote, Value: wizard.Bool(true)})
	}
	return cmds
}
