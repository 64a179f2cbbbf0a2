package domain

import "context"

// CompletionRequest is a single system+user chat completion call
type CompletionRequest struct {
	SystemPrompt string
	UserMessage  string

	// Temperature is sent only when non-nil
	Temperature *float64

	// JSONSchema, when set, asks for a reply matching this schema instead of
	// plain text. Used together with JSONMode.
	JSONSchema interface{}

	// JSONMode asks the endpoint for a JSON object reply
	JSONMode bool
}

// CompletionClient defines the interface for the hosted text-generation endpoint
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
