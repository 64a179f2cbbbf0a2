package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/copysmith/backend/internal/domain"
)

// DefaultTemperature is the sampling temperature used for drafting copy
const DefaultTemperature = 0.7

// DescriptionServiceConfig holds configuration for the description service
type DescriptionServiceConfig struct {
	// Temperature overrides DefaultTemperature when set
	Temperature        *float64
	EnableDebugLogging bool
}

// DescriptionService drafts marketing copy for a product record
type DescriptionService struct {
	client             domain.CompletionClient
	temperature        float64
	enableDebugLogging bool
}

// NewDescriptionService creates a description service
func NewDescriptionService(client domain.CompletionClient, config DescriptionServiceConfig) *DescriptionService {
	temperature := DefaultTemperature
	if config.Temperature != nil {
		temperature = *config.Temperature
	}

	return &DescriptionService{
		client:             client,
		temperature:        temperature,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// GenerateDescription asks the model for a description of record and returns
// the reply text unchanged
func (s *DescriptionService) GenerateDescription(ctx context.Context, record *domain.ProductRecord) (string, error) {
	if record == nil {
		return "", domain.ErrInvalidRequest
	}

	systemPrompt := SystemPrompt(record.Category, record.Tone)
	userMessage := UserMessage(record)

	if s.enableDebugLogging {
		log.Printf("[Describe] %q (%s, %s tone, %d features)", record.Name, record.Category, record.Tone, len(record.Attributes))
	}

	temperature := s.temperature
	text, err := s.client.Complete(ctx, domain.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserMessage:  userMessage,
		Temperature:  &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate description: %w", err)
	}

	return text, nil
}

// DisplayDescription renders a description result for display, showing a
// failure in place of the description as "Error: <detail>"
func DisplayDescription(text string, err error) string {
	if err != nil {
		return "Error: " + err.Error()
	}
	return text
}
