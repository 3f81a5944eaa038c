package summarize

import (
	"github.com/lucasmeira/rosary-digest/internal/logger"
)

type implSummarizer struct {
	providers []Provider
	logger    logger.Logger
}

// New creates a Summarizer backed by one Gemini provider per model id,
// tried in the given order.
func New(models []string, apiKey string, log logger.Logger) Summarizer {
	providers := make([]Provider, 0, len(models))
	for _, model := range models {
		providers = append(providers, &geminiProvider{model: model, apiKey: apiKey})
	}
	return NewWithProviders(providers, log)
}

// NewWithProviders creates a Summarizer over an explicit provider chain.
func NewWithProviders(providers []Provider, log logger.Logger) Summarizer {
	return &implSummarizer{
		providers: providers,
		logger:    log,
	}
}
