package services

import (
	"context"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"gorm.io/gorm"
)

type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

func (s *ProfileService) CreateProfile(ctx context.Context, req *dtos.ProfileRequest, owner string) (*models.CandidateProfile, error) {
	profile := ProfileFromRequest(req, owner)
	if err := s.DB.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// ProfileFromRequest keeps experience in the order it was entered.
func ProfileFromRequest(req *dtos.ProfileRequest, owner string) *models.CandidateProfile {
	profile := &models.CandidateProfile{
		Owner:      owner,
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Location:   req.Location,
		Headline:   req.Headline,
		Summary:    req.Summary,
		ResumeLink: req.ResumeLink,
		Skills:     req.Skills,
	}
	for i, e := range req.Experience {
		profile.Experience = append(profile.Experience, models.Experience{
			Position:    i,
			Company:     e.Company,
			Title:       e.Title,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Description: e.Description,
		})
	}
	return profile
}
