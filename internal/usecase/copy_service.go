package usecase

import (
	"context"
	"log"
	"time"

	"github.com/copysmith/backend/internal/domain"
)

// CopyServiceConfig holds configuration for the copy service
type CopyServiceConfig struct {
	Temperature        *float64
	EvaluationFormat   string
	EnableDebugLogging bool
}

// CopyService runs a product record through description and then evaluation
type CopyService struct {
	descriptions *DescriptionService
	evaluations  *EvaluationService
}

// NewCopyService creates a copy service backed by one completion client
func NewCopyService(client domain.CompletionClient, config CopyServiceConfig) *CopyService {
	return &CopyService{
		descriptions: NewDescriptionService(client, DescriptionServiceConfig{
			Temperature:        config.Temperature,
			EnableDebugLogging: config.EnableDebugLogging,
		}),
		evaluations: NewEvaluationService(client, EvaluationServiceConfig{
			Format:             config.EvaluationFormat,
			EnableDebugLogging: config.EnableDebugLogging,
		}),
	}
}

// Submit drafts a description for record and then scores it.
// Flow: generate -> evaluate the displayed text -> return.
// Neither failure stops the flow; both are recorded on the submission.
func (s *CopyService) Submit(ctx context.Context, record *domain.ProductRecord) *domain.Submission {
	start := time.Now()
	submission := &domain.Submission{Record: record}

	text, err := s.descriptions.GenerateDescription(ctx, record)
	if err != nil {
		log.Printf("[Copy] Description failed for %q: %v", recordName(record), err)
		submission.DescriptionErr = err
	}
	submission.Description = DisplayDescription(text, err)

	result, err := s.evaluations.EvaluateQuality(ctx, record, submission.Description)
	if err != nil {
		log.Printf("[Copy] Evaluation failed for %q: %v", recordName(record), err)
		submission.EvaluationErr = err
	}
	submission.Evaluation = EvaluationOrError(result, err)

	log.Printf("[Copy] %q done in %v (score=%d, consistency=%s)",
		recordName(record), time.Since(start), submission.Evaluation.Score, submission.Evaluation.ConsistencyCheck)

	return submission
}

func recordName(record *domain.ProductRecord) string {
	if record == nil {
		return ""
	}
	return record.Name
}
