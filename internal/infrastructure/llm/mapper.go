package llm

import (
	"github.com/copysmith/backend/internal/domain"
	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/shared"
)

// schemaName identifies structured replies in the json_schema response format
const schemaName = "evaluation"

// buildParams converts a domain completion request into SDK request params
func buildParams(model string, req domain.CompletionRequest) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserMessage),
		},
		Model: shared.ChatModel(model),
	}

	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	switch {
	case req.JSONMode && req.JSONSchema != nil:
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   schemaName,
					Schema: req.JSONSchema,
					Strict: openai.Bool(true),
				},
			},
		}
	case req.JSONMode:
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	return params
}

// firstChoiceContent extracts the text of the first choice, untouched
func firstChoiceContent(completion *openai.ChatCompletion) (string, error) {
	if completion == nil || len(completion.Choices) == 0 {
		return "", domain.ErrEmptyCompletion
	}
	return completion.Choices[0].Message.Content, nil
}
