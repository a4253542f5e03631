package services

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/justsurfingit/jobboard/internal/apiclient"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/session"
	"github.com/justsurfingit/jobboard/internal/wizard"
)

// The local store behind LocalSubmitter.
type (
	JobStore interface {
		CreatePosting(ctx context.Context, req *dtos.JobPostingRequest, postedBy string) (*models.Job, error)
	}
	ProfileStore interface {
		CreateProfile(ctx context.Context, req *dtos.ProfileRequest, owner string) (*models.CandidateProfile, error)
	}
	AccountStore interface {
		Signup(ctx context.Context, req *dtos.SignupRequest) (*models.Account, error)
	}
)

// LocalSubmitter writes finished wizards to the local database.
type LocalSubmitter struct {
	Jobs     JobStore
	Profiles ProfileStore
	Accounts AccountStore
}

func (s *LocalSubmitter) Submit(ctx context.Context, flow string, payload any) (wizard.Result, error) {
	user := userFrom(ctx)

	switch req := payload.(type) {
	case *dtos.JobPostingRequest:
		job, err := s.Jobs.CreatePosting(ctx, req, user)
		if err != nil {
			return wizard.Result{}, err
		}
		log.Printf("[Submit %s] ✅ Job %d stored for %s", flow, job.ID, req.CompanyName)
		return localResult("/jobs/", job.ID), nil
	case *dtos.ProfileRequest:
		profile, err := s.Profiles.CreateProfile(ctx, req, user)
		if err != nil {
			return wizard.Result{}, err
		}
		log.Printf("[Submit %s] ✅ Profile %d stored", flow, profile.ID)
		return localResult("/profiles/", profile.ID), nil
	case *dtos.SignupRequest:
		account, err := s.Accounts.Signup(ctx, req)
		if err != nil {
			return wizard.Result{}, err
		}
		log.Printf("[Submit %s] ✅ Account %d created (%s)", flow, account.ID, account.Role)
		return localResult("/accounts/", account.ID), nil
	}
	return wizard.Result{}, fmt.Errorf("unsupported payload %T for %s", payload, flow)
}

// RemoteSubmitter sends finished wizards to the external API.
type RemoteSubmitter struct {
	Client *apiclient.Client
}

func (s *RemoteSubmitter) Submit(ctx context.Context, flow string, payload any) (wizard.Result, error) {
	var (
		created  *apiclient.Created
		resource string
		err      error
	)
	switch req := payload.(type) {
	case *dtos.JobPostingRequest:
		created, err = s.Client.CreateJob(ctx, req)
		resource = "/jobs/"
	case *dtos.ProfileRequest:
		created, err = s.Client.CreateProfile(ctx, req)
		resource = "/profiles/"
	case *dtos.SignupRequest:
		created, err = s.Client.Signup(ctx, req)
		resource = "/accounts/"
	default:
		return wizard.Result{}, fmt.Errorf("unsupported payload %T for %s", payload, flow)
	}
	if err != nil {
		log.Printf("[Submit %s] ❌ API call failed: %v", flow, err)
		return wizard.Result{}, err
	}

	id := string(created.ID)
	log.Printf("[Submit %s] ✅ API accepted, id=%s", flow, id)
	res := wizard.Result{ID: id}
	if id != "" {
		res.Resource = resource + id
	}
	return res, nil
}

// JobDirectory lists jobs and changes their status, locally or remotely.
type JobDirectory interface {
	ListJobs(ctx context.Context) ([]dtos.JobListing, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// RemoteDirectory adapts the API client to JobDirectory.
type RemoteDirectory struct {
	Client *apiclient.Client
}

func (d *RemoteDirectory) ListJobs(ctx context.Context) ([]dtos.JobListing, error) {
	return d.Client.ListJobs(ctx)
}

func (d *RemoteDirectory) UpdateStatus(ctx context.Context, id, status string) error {
	return d.Client.UpdateJobStatus(ctx, id, status)
}

func userFrom(ctx context.Context) string {
	if sess, ok := session.FromContext(ctx); ok {
		return sess.UserID()
	}
	return ""
}

func localResult(resource string, id uint) wizard.Result {
	s := strconv.FormatUint(uint64(id), 10)
	return wizard.Result{ID: s, Resource: resource + s}
}
