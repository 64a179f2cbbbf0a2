package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/copysmith/backend/internal/domain"
	"github.com/copysmith/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

const indexTemplate = "index.html"

// Form defaults shown on first load
const (
	defaultProductName = "Sony WH-1000XM5"
	defaultAttributes  = "Color: Midnight Blue\nNoise Cancellation: Active\nBattery: 30 Hours"
)

// descriptionForm is the form-encoded body of the page's submit action
type descriptionForm struct {
	Category   string `form:"category"`
	Name       string `form:"name"`
	Attributes string `form:"attributes"`
	Tone       string `form:"tone"`
}

// pageView is the data rendered by the index template
type pageView struct {
	Categories   []string
	Tones        []string
	Form         descriptionForm
	Submission   *domain.Submission
	Notice       string
	ScoreWarning string
}

// loadTemplates parses the embedded page templates
func loadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
}

func newPageView(form descriptionForm) *pageView {
	return &pageView{
		Categories: domain.Categories,
		Tones:      domain.Tones,
		Form:       form,
	}
}

// Index renders the empty product form
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, newPageView(descriptionForm{
		Category:   domain.CategoryElectronics,
		Name:       defaultProductName,
		Attributes: defaultAttributes,
		Tone:       domain.DefaultTone,
	}))
}

// SubmitForm generates and scores a description from the posted form and
// renders the page with the results
func (h *Handler) SubmitForm(c *gin.Context) {
	var form descriptionForm
	if err := c.ShouldBind(&form); err != nil {
		view := newPageView(form)
		view.Notice = "Could not read the form: " + err.Error()
		c.HTML(http.StatusBadRequest, indexTemplate, view)
		return
	}

	view := newPageView(form)

	if h.copyService == nil {
		view.Notice = "Description service not configured"
		c.HTML(http.StatusServiceUnavailable, indexTemplate, view)
		return
	}

	release, err := h.acquire(c)
	if err != nil {
		view.Notice = acquireMessage(err)
		c.HTML(acquireStatus(err), indexTemplate, view)
		return
	}
	defer release()

	record := usecase.RecordFromText(form.Name, form.Category, form.Attributes, form.Tone)
	view.Submission = h.copyService.Submit(c.Request.Context(), record)
	if view.Submission.EvaluationErr == nil && !view.Submission.Evaluation.ScoreInRange() {
		view.ScoreWarning = scoreWarning
	}

	c.HTML(http.StatusOK, indexTemplate, view)
}
