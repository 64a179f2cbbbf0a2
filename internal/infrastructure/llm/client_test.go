package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/copysmith/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completionBody renders a minimal chat.completion payload with one choice
func completionBody(content string) string {
	encoded, _ := json.Marshal(content)
	return fmt.Sprintf(`{
		"id": "chatcmpl-test",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "llama-3.3-70b-versatile",
		"choices": [
			{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": %s}}
		]
	}`, encoded)
}

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key", "https://api.example.com/openai/v1", "test-model", 5*time.Second)

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://api.example.com/openai/v1/", client.baseURL)
	assert.Equal(t, "test-model", client.Model())
	assert.False(t, client.debug)
}

func TestSetDebug(t *testing.T) {
	client := NewClient("test-api-key", "https://api.example.com/v1/", "test-model", time.Second)

	assert.False(t, client.debug)

	client.SetDebug(true)
	assert.True(t, client.debug)

	client.SetDebug(false)
	assert.False(t, client.debug)
}

func TestComplete_Success(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionBody("Immersive sound, all day."))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL+"/v1", "llama-3.3-70b-versatile", 5*time.Second)
	temperature := 0.7

	content, err := client.Complete(context.Background(), domain.CompletionRequest{
		SystemPrompt: "You are a tech copywriter.",
		UserMessage:  "Product Name: Headphones",
		Temperature:  &temperature,
	})

	require.NoError(t, err)
	assert.Equal(t, "Immersive sound, all day.", content)

	assert.Equal(t, "llama-3.3-70b-versatile", captured["model"])
	assert.InDelta(t, 0.7, captured["temperature"], 1e-9)
	assert.NotContains(t, captured, "response_format")

	messages, ok := captured["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 2)

	system := messages[0].(map[string]interface{})
	user := messages[1].(map[string]interface{})
	assert.Equal(t, "system", system["role"])
	assert.Equal(t, "You are a tech copywriter.", system["content"])
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, "Product Name: Headphones", user["content"])
}

func TestComplete_JSONObjectMode(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionBody(`{"score": 9}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "test-model", 5*time.Second)

	content, err := client.Complete(context.Background(), domain.CompletionRequest{
		SystemPrompt: "QA",
		UserMessage:  "data",
		JSONMode:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"score": 9}`, content)
	assert.NotContains(t, captured, "temperature")

	format, ok := captured["response_format"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "json_object", format["type"])
}

func TestComplete_JSONSchemaMode(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionBody(`{}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "test-model", 5*time.Second)

	_, err := client.Complete(context.Background(), domain.CompletionRequest{
		SystemPrompt: "QA",
		UserMessage:  "data",
		JSONMode:     true,
		JSONSchema:   map[string]interface{}{"type": "object"},
	})
	require.NoError(t, err)

	format, ok := captured["response_format"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "json_schema", format["type"])

	schema, ok := format["json_schema"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, schemaName, schema["name"])
	assert.Equal(t, true, schema["strict"])
}

func TestComplete_ServerError_NoRetry(t *testing.T) {
	attempts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": {"message": "upstream exploded", "type": "server_error"}}`)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "test-model", 5*time.Second)

	content, err := client.Complete(context.Background(), domain.CompletionRequest{SystemPrompt: "s", UserMessage: "u"})

	assert.Empty(t, content)
	assert.ErrorIs(t, err, domain.ErrCompletionFailed)
	assert.Equal(t, 1, attempts)
}

func TestComplete_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": {"message": "Invalid API Key", "type": "invalid_request_error"}}`)
	}))
	defer server.Close()

	client := NewClient("bad-key", server.URL, "test-model", 5*time.Second)

	_, err := client.Complete(context.Background(), domain.CompletionRequest{SystemPrompt: "s", UserMessage: "u"})

	assert.ErrorIs(t, err, domain.ErrCompletionFailed)
}

func TestComplete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "chatcmpl-empty", "object": "chat.completion", "created": 1, "model": "m", "choices": []}`)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "test-model", 5*time.Second)

	_, err := client.Complete(context.Background(), domain.CompletionRequest{SystemPrompt: "s", UserMessage: "u"})

	assert.ErrorIs(t, err, domain.ErrEmptyCompletion)
}

func TestComplete_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionBody("late"))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "test-model", 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, domain.CompletionRequest{SystemPrompt: "s", UserMessage: "u"})

	assert.ErrorIs(t, err, domain.ErrCompletionFailed)
}
