package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

func (s *JobService) CreateJob(req *dtos.JobCreationRequest) (*models.Job, error) {
	var job *models.Job
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		company, err := resolveCompany(tx, req.CompanyName)
		if err != nil {
			return err
		}
		job = &models.Job{
			CompanyID:   company.ID,
			Company:     *company,
			Title:       req.Title,
			Description: req.Description,
			Location:    req.Location,
			SalaryRange: req.SalaryRange,
			Skills:      req.TechStack,
			JobLink:     req.JobLink,
			Status:      defaultStatus(req.Status),
		}
		return tx.Create(job).Error
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

// CreatePosting stores a job posted through the wizard.
func (s *JobService) CreatePosting(ctx context.Context, req *dtos.JobPostingRequest, postedBy string) (*models.Job, error) {
	var job *models.Job
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		company, err := resolveCompany(tx, req.CompanyName)
		if err != nil {
			return err
		}
		job = &models.Job{
			CompanyID:       company.ID,
			Company:         *company,
			Title:           req.Title,
			Description:     req.Description,
			Location:        req.Location,
			EmploymentType:  req.EmploymentType,
			Remote:          req.Remote,
			Skills:          req.Skills,
			ExperienceLevel: req.ExperienceLevel,
			SalaryRange:     req.SalaryRange,
			JobLink:         req.ApplicationLink,
			Status:          "OPEN",
			PostedBy:        postedBy,
		}
		if err := tx.Create(job).Error; err != nil {
			return err
		}
		return tx.Create(&models.JobEvent{
			JobID:     job.ID,
			EventType: "POSTED",
			Details:   fmt.Sprintf("Posted by %s", postedByLabel(postedBy)),
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) ListJobs(ctx context.Context) ([]dtos.JobListing, error) {
	var jobs []models.Job
	err := s.DB.WithContext(ctx).
		Preload("Company").
		Where("status = ?", "OPEN").
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	listings := make([]dtos.JobListing, 0, len(jobs))
	for _, j := range jobs {
		listings = append(listings, ListingFromJob(&j))
	}
	return listings, nil
}

func (s *JobService) UpdateStatus(ctx context.Context, id, status string) error {
	jobID, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrJobNotFound, id)
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.First(&job, jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %q", ErrJobNotFound, id)
			}
			return err
		}
		if job.Status == status {
			return nil
		}
		if err := tx.Model(&job).Update("status", status).Error; err != nil {
			return err
		}
		return tx.Create(&models.JobEvent{
			JobID:     job.ID,
			EventType: "STATUS_UPDATE",
			Details:   fmt.Sprintf("Status changed from %s to %s", job.Status, status),
		}).Error
	})
}

// resolveCompany reuses an existing company whose name matches
// case-insensitively, so "stripe" and "Stripe" end up as one row.
func resolveCompany(tx *gorm.DB, name string) (*models.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("company name is required")
	}
	var company models.Company
	err := tx.Where("LOWER(name) = ?", strings.ToLower(name)).First(&company).Error
	if err == nil {
		return &company, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	company = models.Company{Name: name}
	if err := tx.Create(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func ListingFromJob(j *models.Job) dtos.JobListing {
	return dtos.JobListing{
		ID:             dtos.ID(strconv.FormatUint(uint64(j.ID), 10)),
		Title:          j.Title,
		CompanyName:    j.Company.Name,
		Location:       j.Location,
		EmploymentType: j.EmploymentType,
		Remote:         j.Remote,
		Skills:         j.Skills,
		SalaryRange:    j.SalaryRange,
		Status:         j.Status,
	}
}

func defaultStatus(status string) string {
	if status == "" {
		return "OPEN"
	}
	return strings.ToUpper(status)
}

func postedByLabel(user string) string {
	if user == "" {
		return "anonymous"
	}
	return user
}
