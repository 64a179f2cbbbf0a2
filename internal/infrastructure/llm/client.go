package llm

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/copysmith/backend/internal/domain"
	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// Client handles communication with an OpenAI-compatible chat completions API
type Client struct {
	api     openai.Client
	apiKey  string
	baseURL string
	model   string
	debug   bool
}

// NewClient creates a new chat completions client.
// The SDK's built-in retries are disabled; every call is a single attempt.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	api := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
		option.WithMaxRetries(0),
		option.WithHeader("User-Agent", "Copysmith/1.0"),
	)

	return &Client{
		api:     api,
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
	}
}

// SetDebug enables or disables verbose request/response logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// Model returns the model identifier sent with every request
func (c *Client) Model() string {
	return c.model
}

// Complete issues one chat completion and returns the first choice's content
func (c *Client) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	params := buildParams(c.model, req)

	if c.debug {
		log.Printf("[LLM] POST %schat/completions model=%s system=%d chars user=%d chars json=%v",
			c.baseURL, c.model, len(req.SystemPrompt), len(req.UserMessage), req.JSONMode)
	}

	start := time.Now()
	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		log.Printf("[LLM] Request error after %v: %v", time.Since(start), err)
		return "", fmt.Errorf("%w: %v", domain.ErrCompletionFailed, err)
	}

	content, err := firstChoiceContent(completion)
	if err != nil {
		log.Printf("[LLM] Empty completion after %v (id=%s)", time.Since(start), completion.ID)
		return "", err
	}

	if c.debug {
		log.Printf("[LLM] Completion %s in %v: %q", completion.ID, time.Since(start), content)
	}

	return content, nil
}
