package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/services"
	"github.com/justsurfingit/jobboard/internal/session"
)

type JobHandler struct {
	LLMService *services.LLMService
	JobService *services.JobService
	Directory  services.JobDirectory
}

func NewJobHandler(llm *services.LLMService, j *services.JobService, dir services.JobDirectory) *JobHandler {
	return &JobHandler{
		LLMService: llm,
		JobService: j,
		Directory:  dir,
	}
}

// ParseJob is the POST /jobs/extract endpoint
func (h *JobHandler) ParseJob(c *gin.Context) {
	var req dtos.JobExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	extractedJSON, err := h.LLMService.ExtractJobDetails(c.Request.Context(), req.RawHTML)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "AI Extraction failed: " + err.Error()})
		return
	}
	if !json.Valid([]byte(extractedJSON)) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI Extraction returned invalid JSON"})
		return
	}

	// json.RawMessage keeps Go from escaping the inner JSON string
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    json.RawMessage(extractedJSON),
	})
}

// CreateJob is the POST /jobs endpoint. It writes straight to the local
// store, bypassing the posting wizard.
func (h *JobHandler) CreateJob(c *gin.Context) {
	if h.JobService == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "direct job creation needs the local store; use the job_posting wizard"})
		return
	}
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.JobService.CreateJob(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, job)
}

// ListJobs is the GET /jobs endpoint.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Directory.ListJobs(withSession(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to list jobs: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": jobs, "count": len(jobs)})
}

// UpdateStatus is the PATCH /jobs/:id endpoint.
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	token, _ := credentials(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please log in to continue"})
		return
	}
	var req dtos.JobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.Directory.UpdateStatus(withSession(c), c.Param("id"), req.Status); err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to update job: " + err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// withSession wraps the request credentials in a one-off session so the
// API client can forward them.
func withSession(c *gin.Context) context.Context {
	token, user := credentials(c)
	sess := session.New()
	if token != "" {
		sess.SignIn(token, user)
	}
	return session.NewContext(c.Request.Context(), sess)
}
