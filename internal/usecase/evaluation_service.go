package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/copysmith/backend/internal/domain"
	"github.com/invopop/jsonschema"
)

// Response formats for the evaluation request
const (
	FormatJSONObject = "json_object"
	FormatJSONSchema = "json_schema"
)

// evaluatorSystemPrompt is the fixed QA instruction for judging a description
const evaluatorSystemPrompt = `You are a Quality Assurance AI. Compare the input data to the generated description.
Return a valid JSON object with these keys:
- "score": (integer 1-10)
- "consistency_check": (string) "Pass" if all input facts are present, else "Fail".
- "tone_feedback": (string) Brief comment on the tone.`

// EvaluationServiceConfig holds configuration for the evaluation service
type EvaluationServiceConfig struct {
	// Format is FormatJSONObject (default) or FormatJSONSchema
	Format             string
	EnableDebugLogging bool
}

// EvaluationService scores a generated description against its product record
type EvaluationService struct {
	client             domain.CompletionClient
	schema             interface{}
	enableDebugLogging bool
}

// NewEvaluationService creates an evaluation service
func NewEvaluationService(client domain.CompletionClient, config EvaluationServiceConfig) *EvaluationService {
	svc := &EvaluationService{
		client:             client,
		enableDebugLogging: config.EnableDebugLogging,
	}

	if config.Format == FormatJSONSchema {
		svc.schema = evaluationSchema()
	}

	return svc
}

// evaluationSchema reflects the strict JSON schema of an evaluation reply
func evaluationSchema() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(&domain.EvaluationResult{})
}

// EvaluateQuality asks the model to judge generatedText against record and
// parses its JSON reply. Scores are returned as given, without clamping.
func (s *EvaluationService) EvaluateQuality(
	ctx context.Context,
	record *domain.ProductRecord,
	generatedText string,
) (*domain.EvaluationResult, error) {
	if record == nil {
		return nil, domain.ErrInvalidRequest
	}

	userMessage, err := evaluationUserMessage(record, generatedText)
	if err != nil {
		return nil, err
	}

	content, err := s.client.Complete(ctx, domain.CompletionRequest{
		SystemPrompt: evaluatorSystemPrompt,
		UserMessage:  userMessage,
		JSONMode:     true,
		JSONSchema:   s.schema,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate quality: %w", err)
	}

	result, err := parseJudgment(content)
	if err != nil {
		log.Printf("[Evaluate] Unparseable judgment for %q: %v", record.Name, err)
		return nil, err
	}

	if s.enableDebugLogging {
		log.Printf("[Evaluate] %q scored %d (%s)", record.Name, result.Score, result.ConsistencyCheck)
	}

	return result, nil
}

// evaluationUserMessage embeds the serialized record and the generated text
func evaluationUserMessage(record *domain.ProductRecord, generatedText string) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(record); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	return fmt.Sprintf("INPUT DATA: %s\nGENERATED TEXT: %s\n", bytes.TrimSpace(buf.Bytes()), generatedText), nil
}

// parseJudgment decodes the model reply into an evaluation result
func parseJudgment(content string) (*domain.EvaluationResult, error) {
	var result *domain.EvaluationResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedJudgment, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: reply was null", domain.ErrMalformedJudgment)
	}
	return result, nil
}

// EvaluationOrError returns result, or the synthesized zero-score "Error"
// judgment carrying err's detail when evaluation failed
func EvaluationOrError(result *domain.EvaluationResult, err error) *domain.EvaluationResult {
	if err != nil {
		return domain.ErrorEvaluation(err.Error())
	}
	if result == nil {
		return domain.ErrorEvaluation("no evaluation returned")
	}
	return result
}
