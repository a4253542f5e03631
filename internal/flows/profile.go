package flows

import (
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/wizard"
)

const Profile = "profile"

const (
	ProfileFullName   wizard.FieldKey = "full_name"
	ProfileEmail      wizard.FieldKey = "email"
	ProfilePhone      wizard.FieldKey = "phone"
	ProfileLocation   wizard.FieldKey = "location"
	ProfileExperience wizard.FieldKey = "experience"
	ProfileSkills     wizard.FieldKey = "skills"
	ProfileHeadline   wizard.FieldKey = "headline"
	ProfileSummary    wizard.FieldKey = "summary"
	ProfileResumeLink wizard.FieldKey = "resume_link"
)

// Keys of one experience record.
const (
	ExperienceCompany     = "company"
	ExperienceTitle       = "title"
	ExperienceStart       = "start_date"
	ExperienceEnd         = "end_date"
	ExperienceDescription = "description"
)

func ProfileDefinition() wizard.Definition {
	return wizard.Definition{
		Name: Profile,
		Steps: []wizard.StepDefinition{
			{ID: 1, Title: "Personal information", RequiredFields: []wizard.FieldKey{ProfileFullName, ProfileEmail}},
			{ID: 2, Title: "Experience", RequiredFields: []wizard.FieldKey{ProfileExperience}},
			{ID: 3, Title: "Skills", RequiredFields: []wizard.FieldKey{ProfileSkills}},
			{ID: 4, Title: "Summary", RequiredFields: []wizard.FieldKey{ProfileHeadline}},
		},
		Fields: []wizard.FieldDefinition{
			{Key: ProfileFullName, Kind: wizard.KindString},
			{Key: ProfileEmail, Kind: wizard.KindString},
			{Key: ProfilePhone, Kind: wizard.KindString},
			{Key: ProfileLocation, Kind: wizard.KindString},
			{Key: ProfileExperience, Kind: wizard.KindRecords},
			{Key: ProfileSkills, Kind: wizard.KindList},
			{Key: ProfileHeadline, Kind: wizard.KindString},
			{Key: ProfileSummary, Kind: wizard.KindString},
			{Key: ProfileResumeLink, Kind: wizard.KindString},
		},
		RequiresAuth: true,
		Encode:       encodeProfile,
	}
}

func encodeProfile(s *wizard.Store) (any, error) {
	var experience []dtos.ExperienceEntry
	for _, r := range s.Records(ProfileExperience) {
		experience = append(experience, dtos.ExperienceEntry{
			Company:     r[ExperienceCompany],
			Title:       r[ExperienceTitle],
			StartDate:   r[ExperienceStart],
			EndDate:     r[ExperienceEnd],
			Description: r[ExperienceDescription],
		})
	}

	return validated(&dtos.ProfileRequest{
		ProfilePersonal: dtos.ProfilePersonal{
			FullName: trimmed(s, ProfileFullName),
			Email:    trimmed(s, ProfileEmail),
			Phone:    trimmed(s, ProfilePhone),
			Location: trimmed(s, ProfileLocation),
		},
		ProfileHistory:  dtos.ProfileHistory{Experience: experience},
		ProfileSkillSet: dtos.ProfileSkillSet{Skills: s.List(ProfileSkills)},
		ProfileOverview: dtos.ProfileOverview{
			Headline:   trimmed(s, ProfileHeadline),
			Summary:    trimmed(s, ProfileSummary),
			ResumeLink: trimmed(s, ProfileResumeLink),
		},
	})
}

// ResumePrefill turns a parsed resume into commands for the profile wizard.
func ResumePrefill(r *dtos.ParsedResume) []wizard.Command {
	var cmds []wizard.Command
	cmds = appendString(cmds, ProfileFullName, r.FullName)
	cmds = appendString(cmds, ProfileEmail, r.Email)
	cmds = appendString(cmds, ProfilePhone, r.Phone)
	cmds = appendString(cmds, ProfileLocation, r.Location)
	cmds = appendString(cmds, ProfileHeadline, r.Headline)
	cmds = appendString(cmds, ProfileSummary, r.Summary)
	for _, skill := range r.Skills {
		cmds = append(cmds, wizard.AddItem{Key: ProfileSkills, Item: skill})
	}
	for _, e := range r.Experience {
		if e.Company == "" && e.Title == "" {
			continue
		}
		cmds = append(cmds, wizard.AppendRecord{Key: ProfileExperience, Record: wizard.Record{
			ExperienceCompany:     e.Company,
			ExperienceTitle:       e.Title,
			ExperienceStart:       e.StartDate,
			ExperienceEnd:         e.EndDate,
			ExperienceDescription: e.Description,
		}})
	}
	return cmds
}
