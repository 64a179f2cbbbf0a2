package domain

import "errors"

var (
	// ErrCompletionFailed is returned when a chat completion request fails
	ErrCompletionFailed = errors.New("completion request failed")

	// ErrEmptyCompletion is returned when the model answers without any choices
	ErrEmptyCompletion = errors.New("completion returned no choices")

	// ErrMalformedJudgment is returned when the evaluator reply is not the expected JSON object
	ErrMalformedJudgment = errors.New("evaluation response is not valid JSON")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrSubmissionInFlight is returned when a session submits again before its previous submission finished
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
)
