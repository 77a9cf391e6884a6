package models

// GenerationRequest represents a single call to the text generation provider.
// A fresh value is constructed per call; tasks vary temperature and token
// limits. SystemInstructions carries the agent persona and is always distinct
// from the user prompt carrying the task payload.
type GenerationRequest struct {
	SystemInstructions string
	UserPrompt         string
	Model              string
	MaxTokens          int
	Temperature        float64
}
