package agents

import (
	"context"
	"fmt"
	"time"

	"careerpilot/internal/llm"
	"careerpilot/pkg/models"
	"careerpilot/pkg/utils"
)

// CVAgent produces ATS-optimized resume rewrites and the secondary analysis
// operations around them. Every operation is a thin wrapper assembling a
// task-specific prompt and delegating to the generation provider; the markup
// in the output is never validated or compiled here.
type CVAgent struct {
	generator llm.Generator
}

// NewCVAgent creates a new CV rewriting agent
func NewCVAgent(generator llm.Generator) *CVAgent {
	return &CVAgent{
		generator: generator,
	}
}

// GenerateCV rewrites a resume against a job description into a complete
// LaTeX document followed by an estimated ATS score and improvement tips.
func (a *CVAgent) GenerateCV(ctx context.Context, originalCV, jobDescription, personalInfo string) (string, error) {
	// The original resume stays the source of truth when no personal info is
	// supplied.
	personalInfo = utils.GetStringOrDefault(personalInfo, "Use the information from the original resume")

	instructions := fmt.Sprintf("%s\n\nCurrent date and time: %s",
		cvGenerateTask.instructions, time.Now().Format("2006-01-02 15:04:05"))

	prompt := fmt.Sprintf(cvGeneratePromptTemplate, originalCV, jobDescription, personalInfo)

	return a.generator.Complete(ctx, models.GenerationRequest{
		SystemInstructions: instructions,
		UserPrompt:         prompt,
		MaxTokens:          cvGenerateTask.maxTokens,
		Temperature:        cvGenerateTask.temperature,
	})
}

// AnalyzeJobKeywords extracts the ATS-relevant keywords of a job description
// as structured key-value text.
func (a *CVAgent) AnalyzeJobKeywords(ctx context.Context, jobDescription string) (string, error) {
	prompt := fmt.Sprintf(keywordAnalysisPromptTemplate, jobDescription)

	return a.generator.Complete(ctx, models.GenerationRequest{
		SystemInstructions: keywordAnalysisTask.instructions,
		UserPrompt:         prompt,
		MaxTokens:          keywordAnalysisTask.maxTokens,
		Temperature:        keywordAnalysisTask.temperature,
	})
}

// OptimizeSection rewrites a single resume section to incorporate the given
// keywords without fabricating facts.
func (a *CVAgent) OptimizeSection(ctx context.Context, sectionContent, jobKeywords, sectionType string) (string, error) {
	instructions := fmt.Sprintf(sectionOptimizeTask.instructions, sectionType)
	prompt := fmt.Sprintf(sectionOptimizePromptTemplate, sectionType, sectionContent, jobKeywords)

	return a.generator.Complete(ctx, models.GenerationRequest{
		SystemInstructions: instructions,
		UserPrompt:         prompt,
		MaxTokens:          sectionOptimizeTask.maxTokens,
		Temperature:        sectionOptimizeTask.temperature,
	})
}

// GetFeedback critiques a generated resume against the job description,
// returning a numeric ATS score and itemized strengths and weaknesses.
func (a *CVAgent) GetFeedback(ctx context.Context, cvLatex, jobDescription string) (string, error) {
	prompt := fmt.Sprintf(cvFeedbackPromptTemplate, cvLatex, jobDescription)

	return a.generator.Complete(ctx, models.GenerationRequest{
		SystemInstructions: cvFeedbackTask.instructions,
		UserPrompt:         prompt,
		MaxTokens:          cvFeedbackTask.maxTokens,
		Temperature:        cvFeedbackTask.temperature,
	})
}
