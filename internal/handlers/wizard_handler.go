package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/flows"
	"github.com/justsurfingit/jobboard/internal/runner"
	"github.com/justsurfingit/jobboard/internal/services"
	"github.com/justsurfingit/jobboard/internal/wizard"
)

// Assistant is the AI helper used to prefill wizards.
type Assistant interface {
	ExtractJob(ctx context.Context, rawHTML string) (*dtos.ExtractedJob, error)
	ParseResume(ctx context.Context, text string) (*dtos.ParsedResume, error)
}

type WizardHandler struct {
	Manager   *runner.WizardManager
	Assistant Assistant
}

func NewWizardHandler(m *runner.WizardManager, a Assistant) *WizardHandler {
	return &WizardHandler{Manager: m, Assistant: a}
}

// Register mounts the wizard routes on g.
func (h *WizardHandler) Register(g *gin.RouterGroup) {
	g.POST("/wizards", h.Create)
	g.GET("/wizards/:id", h.Get)
	g.DELETE("/wizards/:id", h.Discard)
	g.DELETE("/wizards/:id/session", h.SignOut)
	g.POST("/wizards/:id/advance", h.Advance)
	g.POST("/wizards/:id/retreat", h.Retreat)
	g.POST("/wizards/:id/jump", h.Jump)
	g.PUT("/wizards/:id/fields/:key", h.SetField)
	g.POST("/wizards/:id/fields/:key/items", h.AddItem)
	g.DELETE("/wizards/:id/fields/:key/items/:item", h.RemoveItem)
	g.POST("/wizards/:id/fields/:key/records", h.AppendRecord)
	g.DELETE("/wizards/:id/fields/:key/records/:index", h.RemoveRecord)
	g.POST("/wizards/:id/submit", h.Submit)
	g.POST("/wizards/:id/prefill/job", h.PrefillJob)
	g.POST("/wizards/:id/prefill/resume", h.PrefillResume)
}

func (h *WizardHandler) Create(c *gin.Context) {
	var req dtos.CreateWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	token, user := credentials(c)
	id, view, err := h.Manager.Create(req.Flow, token, user)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "wizard": view})
}

func (h *WizardHandler) Get(c *gin.Context) {
	view, err := h.Manager.View(c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "wizard": view})
}

func (h *WizardHandler) Discard(c *gin.Context) {
	if err := h.Manager.Discard(c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) SignOut(c *gin.Context) {
	view, err := h.Manager.SignOut(c.Param("id"))
	h.respond(c, view, err)
}

func (h *WizardHandler) Advance(c *gin.Context) {
	h.dispatch(c, wizard.Advance{})
}

func (h *WizardHandler) Retreat(c *gin.Context) {
	h.dispatch(c, wizard.Retreat{})
}

func (h *WizardHandler) Jump(c *gin.Context) {
	var req dtos.JumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	h.dispatch(c, wizard.JumpTo{Step: req.Step})
}

func (h *WizardHandler) SetField(c *gin.Context) {
	var req dtos.FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	view, err := h.Manager.View(c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	key := wizard.FieldKey(c.Param("key"))
	current, ok := view.Fields[key]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": wizard.ErrUnknownField.Error() + ": " + string(key), "wizard": view})
		return
	}
	value := wizard.Zero(current.Kind())
	if len(req.Value) > 0 && string(req.Value) != "null" {
		if value, err = wizard.Decode(current.Kind(), req.Value); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "wizard": view})
			return
		}
	}
	h.dispatch(c, wizard.SetField{Key: key, Value: value})
}

func (h *WizardHandler) AddItem(c *gin.Context) {
	var req dtos.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	h.dispatch(c, wizard.AddItem{Key: wizard.FieldKey(c.Param("key")), Item: req.Item})
}

func (h *WizardHandler) RemoveItem(c *gin.Context) {
	h.dispatch(c, wizard.RemoveItem{Key: wizard.FieldKey(c.Param("key")), Item: c.Param("item")})
}

func (h *WizardHandler) AppendRecord(c *gin.Context) {
	var req dtos.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	h.dispatch(c, wizard.AppendRecord{Key: wizard.FieldKey(c.Param("key")), Record: req.Record})
}

func (h *WizardHandler) RemoveRecord(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record index"})
		return
	}
	h.dispatch(c, wizard.RemoveRecord{Key: wizard.FieldKey(c.Param("key")), Index: index})
}

func (h *WizardHandler) Submit(c *gin.Context) {
	h.dispatch(c, wizard.Submit{})
}

// PrefillJob runs AI extraction over a job page and fills the job
// posting wizard with whatever it found.
func (h *WizardHandler) PrefillJob(c *gin.Context) {
	var req dtos.JobExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if !h.expectFlow(c, flows.JobPosting) {
		return
	}
	job, err := h.Assistant.ExtractJob(c.Request.Context(), req.RawHTML)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "AI Extraction failed: " + err.Error()})
		return
	}
	h.dispatch(c, flows.JobPrefill(job)...)
}

// PrefillResume parses a pasted resume into the profile wizard.
func (h *WizardHandler) PrefillResume(c *gin.Context) {
	var req dtos.ResumeParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if !h.expectFlow(c, flows.Profile) {
		return
	}
	parsed, err := h.Assistant.ParseResume(c.Request.Context(), req.ResumeText)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Resume parsing failed: " + err.Error()})
		return
	}
	h.dispatch(c, flows.ResumePrefill(parsed)...)
}

func (h *WizardHandler) expectFlow(c *gin.Context, flow string) bool {
	view, err := h.Manager.View(c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return false
	}
	if view.Flow != flow {
		c.JSON(http.StatusBadRequest, gin.H{"error": "this action only applies to " + flow + " wizards", "wizard": view})
		return false
	}
	return true
}

func (h *WizardHandler) dispatch(c *gin.Context, cmds ...wizard.Command) {
	token, user := credentials(c)
	view, err := h.Manager.Dispatch(c.Request.Context(), c.Param("id"), token, user, cmds...)
	h.respond(c, view, err)
}

func (h *WizardHandler) respond(c *gin.Context, view wizard.View, err error) {
	if err != nil {
		if errors.Is(err, runner.ErrWizardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "wizard": view})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "wizard": view})
}

// statusFor maps domain errors to HTTP status codes. Anything unknown
// came from the submission boundary.
func statusFor(err error) int {
	switch {
	case errors.Is(err, runner.ErrWizardNotFound), errors.Is(err, services.ErrJobNotFound):
		return http.StatusNotFound
	case errors.Is(err, flows.ErrUnknownFlow),
		errors.Is(err, wizard.ErrUnknownField),
		errors.Is(err, wizard.ErrFieldKind):
		return http.StatusBadRequest
	case errors.Is(err, wizard.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, wizard.ErrNotTerminalStep),
		errors.Is(err, wizard.ErrIncomplete),
		errors.Is(err, wizard.ErrAlreadySubmitted),
		errors.Is(err, services.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, flows.ErrPasswordMismatch),
		errors.Is(err, flows.ErrInvalidPayload):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrLLMDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
