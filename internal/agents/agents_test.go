package agents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpilot/internal/config"
	"careerpilot/internal/search"
	"careerpilot/pkg/models"
)

// stubGenerator records the last request and returns a canned completion.
type stubGenerator struct {
	lastReq models.GenerationRequest
	output  string
	err     error
}

func (s *stubGenerator) Complete(ctx context.Context, req models.GenerationRequest) (string, error) {
	s.lastReq = req
	if s.err != nil {
		return "", s.err
	}
	return s.output, nil
}

type fixedSearchProvider struct{}

func (p *fixedSearchProvider) Name() string { return "stub" }

func (p *fixedSearchProvider) SearchWeb(query string, maxResults int, region string) ([]models.SearchResult, error) {
	return []models.SearchResult{
		{Title: "Backend Engineer at Acme", URL: "https://example.com/1", Snippet: "Go, Postgres", Source: "Google"},
	}, nil
}

func (p *fixedSearchProvider) SearchNews(query string, maxResults int, region string) ([]models.SearchResult, error) {
	return nil, nil
}

func searchClientForTest(provider search.Provider) *search.Client {
	cfg := &config.Config{}
	cfg.Search.MaxResults = 5
	cfg.Search.QueryPause = time.Millisecond
	return search.NewClient(cfg, provider)
}

func TestJobSearchAgentBuildsReportPrompt(t *testing.T) {
	gen := &stubGenerator{output: "structured report"}
	agent := NewJobSearchAgent(gen, searchClientForTest(&fixedSearchProvider{}))

	report, err := agent.SearchJobs(context.Background(), models.JobSearchRequest{
		JobTitle:        "Développeur Python",
		Location:        "Paris",
		ExperienceLevel: "Senior",
		Skills:          "Django, FastAPI",
	})

	require.NoError(t, err)
	assert.Equal(t, "structured report", report)

	assert.Equal(t, jobSearchTask.instructions, gen.lastReq.SystemInstructions)
	assert.InDelta(t, 0.7, gen.lastReq.Temperature, 1e-9)
	assert.Contains(t, gen.lastReq.UserPrompt, "Développeur Python")
	assert.Contains(t, gen.lastReq.UserPrompt, "Paris")
	assert.Contains(t, gen.lastReq.UserPrompt, "Senior")
	assert.Contains(t, gen.lastReq.UserPrompt, "Django, FastAPI")
	// the raw search results ride along as serialized JSON
	assert.Contains(t, gen.lastReq.UserPrompt, "Backend Engineer at Acme")
}

func TestJobSearchAgentPropagatesGenerationError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("provider down")}
	agent := NewJobSearchAgent(gen, searchClientForTest(&fixedSearchProvider{}))

	_, err := agent.SearchJobs(context.Background(), models.JobSearchRequest{JobTitle: "DevOps", Location: "Lyon"})

	assert.Error(t, err)
}

func TestJobSearchAgentIncludesDegradedSearchErrors(t *testing.T) {
	gen := &stubGenerator{output: "report"}
	agent := NewJobSearchAgent(gen, searchClientForTest(nil))

	_, err := agent.SearchJobs(context.Background(), models.JobSearchRequest{JobTitle: "DevOps", Location: "Lyon"})

	// Degraded search still produces a report request; the error text is
	// surfaced to the model inside the serialized results.
	require.NoError(t, err)
	assert.Contains(t, gen.lastReq.UserPrompt, "search provider not available")
}

func TestGenerateCVDefaultsPersonalInfo(t *testing.T) {
	gen := &stubGenerator{output: "\\documentclass{article}"}
	agent := NewCVAgent(gen)

	out, err := agent.GenerateCV(context.Background(), "original resume", "job posting", "")

	require.NoError(t, err)
	assert.Equal(t, "\\documentclass{article}", out)
	assert.Contains(t, gen.lastReq.UserPrompt, "original resume")
	assert.Contains(t, gen.lastReq.UserPrompt, "job posting")
	assert.Contains(t, gen.lastReq.UserPrompt, "Use the information from the original resume")
	assert.Contains(t, gen.lastReq.SystemInstructions, "Current date and time:")
	assert.InDelta(t, 0.7, gen.lastReq.Temperature, 1e-9)
}

func TestGenerateCVKeepsProvidedPersonalInfo(t *testing.T) {
	gen := &stubGenerator{output: "ok"}
	agent := NewCVAgent(gen)

	_, err := agent.GenerateCV(context.Background(), "cv", "job", "Jean Dupont, Paris")

	require.NoError(t, err)
	assert.Contains(t, gen.lastReq.UserPrompt, "Jean Dupont, Paris")
	assert.NotContains(t, gen.lastReq.UserPrompt, "Use the information from the original resume")
}

func TestAnalyzeJobKeywordsRunsCold(t *testing.T) {
	gen := &stubGenerator{output: "keywords"}
	agent := NewCVAgent(gen)

	_, err := agent.AnalyzeJobKeywords(context.Background(), "We need Kubernetes and Terraform experience")

	require.NoError(t, err)
	assert.InDelta(t, 0.3, gen.lastReq.Temperature, 1e-9)
	assert.Contains(t, gen.lastReq.UserPrompt, "Kubernetes and Terraform")
}

func TestOptimizeSectionInterpolatesSectionType(t *testing.T) {
	gen := &stubGenerator{output: "optimized"}
	agent := NewCVAgent(gen)

	_, err := agent.OptimizeSection(context.Background(), "built things", "Go, gRPC", "experience")

	require.NoError(t, err)
	assert.Contains(t, gen.lastReq.SystemInstructions, "'experience' section")
	assert.Contains(t, gen.lastReq.UserPrompt, "built things")
	assert.Contains(t, gen.lastReq.UserPrompt, "Go, gRPC")
	assert.InDelta(t, 0.5, gen.lastReq.Temperature, 1e-9)
}

func TestGetFeedbackRunsCold(t *testing.T) {
	gen := &stubGenerator{output: "85/100"}
	agent := NewCVAgent(gen)

	out, err := agent.GetFeedback(context.Background(), "\\section{Experience}", "job posting")

	require.NoError(t, err)
	assert.Equal(t, "85/100", out)
	assert.InDelta(t, 0.3, gen.lastReq.Temperature, 1e-9)
	assert.Contains(t, gen.lastReq.UserPrompt, "\\section{Experience}")
}

func TestGenerateCoverLetterPrompt(t *testing.T) {
	gen := &stubGenerator{output: "Dear hiring manager"}
	agent := NewCoverLetterAgent(gen)

	out, err := agent.GenerateCoverLetter(context.Background(), "cv text", "job text", "Acme builds rockets")

	require.NoError(t, err)
	assert.Equal(t, "Dear hiring manager", out)
	assert.Equal(t, coverLetterTask.instructions, gen.lastReq.SystemInstructions)
	assert.Contains(t, gen.lastReq.UserPrompt, "cv text")
	assert.Contains(t, gen.lastReq.UserPrompt, "job text")
	assert.Contains(t, gen.lastReq.UserPrompt, "Acme builds rockets")
	assert.InDelta(t, 0.7, gen.lastReq.Temperature, 1e-9)
}
