package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/justsurfingit/jobboard/internal/dtos"
)

// Created is the part of a create response we care about.
type Created struct {
	ID dtos.ID `json:"id"`
}

func (c *Client) CreateJob(ctx context.Context, req *dtos.JobPostingRequest) (*Created, error) {
	var out Created
	if err := c.do(ctx, http.MethodPost, "/jobs/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProfile(ctx context.Context, req *dtos.ProfileRequest) (*Created, error) {
	var out Created
	if err := c.do(ctx, http.MethodPost, "/profiles/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Signup(ctx context.Context, req *dtos.SignupRequest) (*Created, error) {
	var out Created
	if err := c.do(ctx, http.MethodPost, "/auth/signup/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListJobs(ctx context.Context) ([]dtos.JobListing, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/jobs/", nil, &raw); err != nil {
		return nil, err
	}
	var jobs []dtos.JobListing
	if err := decodeList(raw, &jobs); err != nil {
		return nil, fmt.Errorf("decode job list: %w", err)
	}
	return jobs, nil
}

func (c *Client) UpdateJobStatus(ctx context.Context, id, status string) error {
	path := "/jobs/" + url.PathEscape(id) + "/"
	return c.do(ctx, http.MethodPatch, path, map[string]string{"status": status}, nil)
}
