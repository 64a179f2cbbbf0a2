package usecase

import (
	"context"

	"github.com/copysmith/backend/internal/domain"
)

// mockCompletionResponse is one canned reply from MockCompletionClient
type mockCompletionResponse struct {
	content string
	err     error
}

// MockCompletionClient is a mock implementation of domain.CompletionClient.
// It replays responses in order and records every request.
type MockCompletionClient struct {
	responses []mockCompletionResponse
	requests  []domain.CompletionRequest
}

func NewMockCompletionClient(responses ...mockCompletionResponse) *MockCompletionClient {
	return &MockCompletionClient{responses: responses}
}

func (m *MockCompletionClient) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	m.requests = append(m.requests, req)
	if len(m.responses) == 0 {
		return "", domain.ErrEmptyCompletion
	}
	next := m.responses[0]
	m.responses = m.responses[1:]
	return next.content, next.err
}

func reply(content string) mockCompletionResponse {
	return mockCompletionResponse{content: content}
}

func failure(err error) mockCompletionResponse {
	return mockCompletionResponse{err: err}
}
