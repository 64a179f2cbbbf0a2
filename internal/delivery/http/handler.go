package http

import (
	"errors"
	"net/http"

	"github.com/copysmith/backend/internal/domain"
	"github.com/copysmith/backend/internal/infrastructure/inflight"
	"github.com/copysmith/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "copysmith"
	serviceVersion = "1.0.0"

	scoreWarning    = "Score outside the 1-10 scale - shown as returned"
	inFlightMessage = "A description is already being generated for this session - wait for it to finish"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	copyService *usecase.CopyService
	guard       *inflight.Guard
}

// NewHandler creates a new HTTP handler.
// A nil guard disables overlapping submission checks.
func NewHandler(copyService *usecase.CopyService, guard *inflight.Guard) *Handler {
	return &Handler{
		copyService: copyService,
		guard:       guard,
	}
}

// DescriptionResponse is the JSON result of one description request
type DescriptionResponse struct {
	Record           *domain.ProductRecord    `json:"record"`
	Description      string                   `json:"description"`
	DescriptionError string                   `json:"descriptionError,omitempty"`
	Evaluation       *domain.EvaluationResult `json:"evaluation"`
	EvaluationError  string                   `json:"evaluationError,omitempty"`
	Warning          string                   `json:"warning,omitempty"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// Options lists the category and tone choices offered by the form
func (h *Handler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":  domain.Categories,
		"tones":       domain.Tones,
		"defaultTone": domain.DefaultTone,
	})
}

// ParseAttributes parses "Key: Value" text into an attribute mapping
func (h *Handler) ParseAttributes(c *gin.Context) {
	var request struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attributes": usecase.ParseAttributes(request.Text)})
}

// CreateDescription drafts and scores a description for a JSON product request
func (h *Handler) CreateDescription(c *gin.Context) {
	if h.copyService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Description service not configured"})
		return
	}

	var request domain.DescriptionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	release, err := h.acquire(c)
	if err != nil {
		c.JSON(acquireStatus(err), gin.H{"error": acquireMessage(err)})
		return
	}
	defer release()

	submission := h.copyService.Submit(c.Request.Context(), usecase.RecordFromRequest(&request))

	c.JSON(http.StatusOK, newDescriptionResponse(submission))
}

// acquire claims the caller's submission slot and returns its release func
func (h *Handler) acquire(c *gin.Context) (func(), error) {
	if h.guard == nil {
		return func() {}, nil
	}

	key := sessionKey(c)
	if err := h.guard.TryAcquire(c.Request.Context(), key); err != nil {
		return nil, err
	}
	return func() { h.guard.Release(key) }, nil
}

// acquireStatus maps a failed slot claim to an HTTP status
func acquireStatus(err error) int {
	if errors.Is(err, domain.ErrSubmissionInFlight) {
		return http.StatusConflict
	}
	return http.StatusServiceUnavailable
}

func acquireMessage(err error) string {
	if errors.Is(err, domain.ErrSubmissionInFlight) {
		return inFlightMessage
	}
	return "Request cancelled: " + err.Error()
}

func newDescriptionResponse(submission *domain.Submission) *DescriptionResponse {
	response := &DescriptionResponse{
		Record:      submission.Record,
		Description: submission.Description,
		Evaluation:  submission.Evaluation,
	}

	if submission.DescriptionErr != nil {
		response.DescriptionError = submission.DescriptionErr.Error()
	}
	if submission.EvaluationErr != nil {
		response.EvaluationError = submission.EvaluationErr.Error()
	}
	if submission.EvaluationErr == nil && !submission.Evaluation.ScoreInRange() {
		response.Warning = scoreWarning
	}

	return response
}
