package agents

import (
	"context"
	"fmt"

	"careerpilot/internal/llm"
	"careerpilot/pkg/models"
)

// CoverLetterAgent drafts personalized cover letters. One generation call
// returns the full letter, an email-length variant, key talking points and
// personalization tips intermixed in a single text blob.
type CoverLetterAgent struct {
	generator llm.Generator
}

// NewCoverLetterAgent creates a new cover letter agent
func NewCoverLetterAgent(generator llm.Generator) *CoverLetterAgent {
	return &CoverLetterAgent{
		generator: generator,
	}
}

// GenerateCoverLetter produces a personalized cover letter from the candidate
// resume, the job description and optional company information.
func (a *CoverLetterAgent) GenerateCoverLetter(ctx context.Context, cvContent, jobDescription, companyInfo string) (string, error) {
	prompt := fmt.Sprintf(coverLetterPromptTemplate, cvContent, jobDescription, companyInfo)

	return a.generator.Complete(ctx, models.GenerationRequest{
		SystemInstructions: coverLetterTask.instructions,
		UserPrompt:         prompt,
		MaxTokens:          coverLetterTask.maxTokens,
		Temperature:        coverLetterTask.temperature,
	})
}
