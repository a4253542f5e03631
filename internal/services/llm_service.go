package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const maxPromptInput = 20000

var ErrLLMDisabled = errors.New("AI assistance is not configured")

type LLMService struct {
	Client llms.Model
}

func NewLLMService(client llms.Model) *LLMService {
	return &LLMService{Client: client}
}

// NewGeminiLLMService builds the service on Gemini through langchaingo.
func NewGeminiLLMService(ctx context.Context, apiKey, model string) (*LLMService, error) {
	if apiKey == "" {
		return nil, ErrLLMDisabled
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, err
	}
	return NewLLMService(llm), nil
}

const jobExtractionPrompt = `
You are an expert Job Data Extraction Agent. Your task is to analyze the provided raw HTML/Text from a job posting and extract structured data.

### INSTRUCTIONS:
1. **Analyze** the text to identify the core job details.
2. **Ignore** navigation menus, footers, "similar jobs" lists, and site advertisements.
3. **Extract** the following fields strictly.
4. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "company_name": "Name of the company (e.g., Google, StartupInc)",
    "role_title": "Job title (e.g., Senior Backend Engineer)",
    "location": "Job location or 'Remote'",
    "description": "A clean summary of the job. Focus on Responsibilities and Requirements. Remove HTML tags.",
    "employment_type": "One of full_time, part_time, contract, internship",
    "experience_level": "One of junior, mid, senior, lead",
    "tech_stack": ["Array", "of", "technologies", "mentioned", "e.g., Go, React, AWS"],
    "salary_range": "The salary string if explicitly mentioned (e.g., '$100k - $150k'), otherwise null"
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not hallucinate or guess.

### RAW CONTENT:
%s
`

const resumeParsingPrompt = `
You are an expert Resume Parsing Agent. Read the resume below and extract the candidate's details.

### INSTRUCTIONS:
1. Keep work experience in the order it appears in the resume.
2. List each skill once.
3. Format the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "full_name": "Candidate name",
    "email": "Email address",
    "phone": "Phone number",
    "location": "City, Country",
    "headline": "One line professional headline (e.g., Senior Frontend Engineer)",
    "summary": "Two or three sentence professional summary",
    "skills": ["React", "TypeScript"],
    "experience": [
        {"company": "Company", "title": "Role", "start_date": "YYYY-MM", "end_date": "YYYY-MM or Present", "description": "What they did"}
    ]
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not hallucinate or guess.

### RESUME:
%s
`

// ExtractJobDetails takes raw HTML and returns the model's JSON answer.
func (s *LLMService) ExtractJobDetails(ctx context.Context, rawHTML string) (string, error) {
	if s == nil || s.Client == nil {
		return "", ErrLLMDisabled
	}
	prompt := fmt.Sprintf(jobExtractionPrompt, truncate(rawHTML))
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", err
	}
	return cleanJSON(resp), nil
}

// ExtractJob is ExtractJobDetails decoded into a struct.
func (s *LLMService) ExtractJob(ctx context.Context, rawHTML string) (*dtos.ExtractedJob, error) {
	raw, err := s.ExtractJobDetails(ctx, rawHTML)
	if err != nil {
		return nil, err
	}
	var job dtos.ExtractedJob
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		return nil, fmt.Errorf("AI returned invalid job JSON: %w", err)
	}
	return &job, nil
}

// ParseResume pulls profile fields out of pasted resume text.
func (s *LLMService) ParseResume(ctx context.Context, text string) (*dtos.ParsedResume, error) {
	if s == nil || s.Client == nil {
		return nil, ErrLLMDisabled
	}
	prompt := fmt.Sprintf(resumeParsingPrompt, truncate(text))
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return nil, err
	}
	var parsed dtos.ParsedResume
	if err := json.Unmarshal([]byte(cleanJSON(resp)), &parsed); err != nil {
		return nil, fmt.Errorf("AI returned invalid resume JSON: %w", err)
	}
	return &parsed, nil
}

func truncate(s string) string {
	if len(s) > maxPromptInput {
		return s[:maxPromptInput]
	}
	return s
}

// cleanJSON strips the markdown fence models add despite being told not to.
func cleanJSON(resp string) string {
	resp = strings.TrimSpace(resp)
	if !strings.HasPrefix(resp, "```") {
		return resp
	}
	resp = strings.TrimPrefix(resp, "```json")
	resp = strings.TrimPrefix(resp, "```")
	resp = strings.TrimSuffix(resp, "```")
	return strings.TrimSpace(resp)
}
