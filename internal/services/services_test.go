package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms/fake"
	"golang.org/x/crypto/bcrypt"

	"github.com/justsurfingit/jobboard/internal/apiclient"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/session"
)

func TestExtractJobStripsFences(t *testing.T) {
	llm := NewLLMService(fake.NewFakeLLM([]string{
		"```json\n{\"company_name\":\"Paystack\",\"role_title\":\"Backend Engineer\",\"location\":\"Lagos\",\"tech_stack\":[\"Go\"],\"salary_range\":null}\n```",
	}))

	job, err := llm.ExtractJob(context.Background(), "<html>job</html>")
	require.NoError(t, err)
	assert.Equal(t, "Paystack", job.CompanyName)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, []string{"Go"}, job.TechStack)
	assert.Empty(t, job.SalaryRange)
}

func TestParseResume(t *testing.T) {
	llm := NewLLMService(fake.NewFakeLLM([]string{
		`{"full_name":"Ada Obi","skills":["React"],"experience":[{"company":"Andela","title":"Engineer"}]}`,
	}))

	parsed, err := llm.ParseResume(context.Background(), "Ada Obi\nEngineer at Andela")
	require.NoError(t, err)
	assert.Equal(t, "Ada Obi", parsed.FullName)
	require.Len(t, parsed.Experience, 1)
	assert.Equal(t, "Andela", parsed.Experience[0].Company)
}

func TestParseResumeRejectsGarbage(t *testing.T) {
	llm := NewLLMService(fake.NewFakeLLM([]string{"I cannot help with that"}))
	_, err := llm.ParseResume(context.Background(), "text")
	assert.Error(t, err)
}

func TestLLMDisabled(t *testing.T) {
	var llm *LLMService
	_, err := llm.ExtractJob(context.Background(), "x")
	assert.ErrorIs(t, err, ErrLLMDisabled)

	_, err = NewGeminiLLMService(context.Background(), "", "gemini-2.5-flash")
	assert.ErrorIs(t, err, ErrLLMDisabled)
}

type fakeStores struct {
	postedBy string
	err      error
}

func (f *fakeStores) CreatePosting(_ context.Context, req *dtos.JobPostingRequest, postedBy string) (*models.Job, error) {
	f.postedBy = postedBy
	if f.err != nil {
		return nil, f.err
	}
	return &models.Job{ID: 7, Title: req.Title}, nil
}

func (f *fakeStores) CreateProfile(_ context.Context, req *dtos.ProfileRequest, owner string) (*models.CandidateProfile, error) {
	return ProfileFromRequest(req, owner), nil
}

func (f *fakeStores) Signup(_ context.Context, req *dtos.SignupRequest) (*models.Account, error) {
	return &models.Account{ID: 3, Email: req.Email, Role: req.Role}, nil
}

func TestLocalSubmitterRoutesByPayload(t *testing.T) {
	stores := &fakeStores{}
	sub := &LocalSubmitter{Jobs: stores, Profiles: stores, Accounts: stores}

	sess := session.New()
	sess.SignIn("tok", "employer-9")
	ctx := session.NewContext(context.Background(), sess)

	res, err := sub.Submit(ctx, "job_posting", &dtos.JobPostingRequest{JobBasics: dtos.JobBasics{Title: "SRE"}})
	require.NoError(t, err)
	assert.Equal(t, "7", res.ID)
	assert.Equal(t, "/jobs/7", res.Resource)
	assert.Equal(t, "employer-9", stores.postedBy)

	res, err = sub.Submit(context.Background(), "signup", &dtos.SignupRequest{
		SignupAccount:    dtos.SignupAccount{Email: "a@b.c"},
		SignupRoleChoice: dtos.SignupRoleChoice{Role: "seeker"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/accounts/3", res.Resource)

	_, err = sub.Submit(context.Background(), "other", struct{}{})
	assert.Error(t, err)
}

func TestLocalSubmitterPropagatesErrors(t *testing.T) {
	stores := &fakeStores{err: errors.New("db down")}
	sub := &LocalSubmitter{Jobs: stores}
	_, err := sub.Submit(context.Background(), "job_posting", &dtos.JobPostingRequest{})
	assert.EqualError(t, err, "db down")
}

func TestRemoteSubmitter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profiles/", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"p-1"}`))
	}))
	defer srv.Close()

	client, err := apiclient.New(srv.URL)
	require.NoError(t, err)
	sub := &RemoteSubmitter{Client: client}

	res, err := sub.Submit(context.Background(), "profile", &dtos.ProfileRequest{ProfilePersonal: dtos.ProfilePersonal{FullName: "Ada"}})
	require.NoError(t, err)
	assert.Equal(t, "p-1", res.ID)
	assert.Equal(t, "/profiles/p-1", res.Resource)
}

func TestProfileFromRequestKeepsOrder(t *testing.T) {
	p := ProfileFromRequest(&dtos.ProfileRequest{
		ProfilePersonal: dtos.ProfilePersonal{FullName: "Ada"},
		ProfileHistory: dtos.ProfileHistory{Experience: []dtos.ExperienceEntry{
			{Company: "B"}, {Company: "A"}, {Company: "C"},
		}},
	}, "u1")

	require.Len(t, p.Experience, 3)
	for i, want := range []string{"B", "A", "C"} {
		assert.Equal(t, want, p.Experience[i].Company)
		assert.Equal(t, i, p.Experience[i].Position)
	}
	assert.Equal(t, "u1", p.Owner)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter22")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter23")))
}

func TestListingFromJob(t *testing.T) {
	l := ListingFromJob(&models.Job{ID: 12, Title: "SRE", Company: models.Company{Name: "Acme"}, Status: "OPEN"})
	assert.Equal(t, dtos.ID("12"), l.ID)
	assert.Equal(t, "Acme", l.CompanyName)
}
