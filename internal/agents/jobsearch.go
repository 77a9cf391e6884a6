package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"careerpilot/internal/llm"
	"careerpilot/internal/logging"
	"careerpilot/internal/search"
	"careerpilot/pkg/models"
	"careerpilot/pkg/utils"
)

// JobSearchAgent composes the multi-query web search with a generation call
// that structures the raw results into a job-opportunity report. Ranking and
// de-duplication are delegated entirely to the generation step.
type JobSearchAgent struct {
	generator llm.Generator
	search    *search.Client
}

// NewJobSearchAgent creates a new job search agent
func NewJobSearchAgent(generator llm.Generator, searchClient *search.Client) *JobSearchAgent {
	return &JobSearchAgent{
		generator: generator,
		search:    searchClient,
	}
}

// SearchJobs gathers raw search results for the requested position and asks
// the generation provider for a compatibility-ranked opportunity report. The
// report is returned as opaque text.
func (a *JobSearchAgent) SearchJobs(ctx context.Context, req models.JobSearchRequest) (string, error) {
	startTime := time.Now()
	logger := logging.GetGlobalLogger()

	results := a.search.SearchJobListings(ctx, req.JobTitle, req.Location)

	serialized, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize search results: %w", err)
	}

	logger.Info("Job listings gathered, requesting report", map[string]interface{}{
		"job_title":    req.JobTitle,
		"location":     req.Location,
		"result_count": len(results),
	})

	prompt := fmt.Sprintf(jobSearchPromptTemplate,
		req.JobTitle, req.Location, req.ExperienceLevel, req.Skills, string(serialized))

	report, err := a.generator.Complete(ctx, models.GenerationRequest{
		SystemInstructions: jobSearchTask.instructions,
		UserPrompt:         prompt,
		MaxTokens:          jobSearchTask.maxTokens,
		Temperature:        jobSearchTask.temperature,
	})
	if err != nil {
		return "", err
	}

	logger.Info("Job search report generated", map[string]interface{}{
		"job_title":       req.JobTitle,
		"processing_time": utils.FormatDuration(time.Since(startTime)),
	})

	return report, nil
}
