package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rgehrsitz/herdsim/internal/calculation"
	"github.com/rgehrsitz/herdsim/internal/compare"
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/internal/output"
	"github.com/rgehrsitz/herdsim/internal/server/metrics"
)

// ProjectionHandler serves projections, exports and comparisons over HTTP.
type ProjectionHandler struct {
	projector calculation.Projector
	rules     domain.Rules
	compare   *compare.CompareEngine
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewProjectionHandler constructs the HTTP handler adapter.
func NewProjectionHandler(projector calculation.Projector, rules domain.Rules, m *metrics.Metrics, logger *zap.Logger) *ProjectionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.New()
	}
	return &ProjectionHandler{
		projector: projector,
		rules:     rules,
		compare:   compare.NewCompareEngine(projector),
		metrics:   m,
		logger:    logger,
	}
}

// CompareRequest is the body of POST /api/v1/compare
type CompareRequest struct {
	Base      domain.SimulationParameters `json:"base"`
	BaseName  string                      `json:"base_name"`
	Templates []string                    `json:"templates"`
}

// Rules returns the schedule every projection uses.
func (h *ProjectionHandler) Rules(c *gin.Context) {
	c.JSON(http.StatusOK, h.rules)
}

// Templates lists the comparison templates.
func (h *ProjectionHandler) Templates(c *gin.Context) {
	registry := h.compare.TemplateRegistry
	out := make([]gin.H, 0)
	for _, name := range registry.List() {
		t, _ := registry.Get(name)
		out = append(out, gin.H{"name": t.Name, "category": t.Category, "description": t.Description})
	}
	c.JSON(http.StatusOK, out)
}

// Project runs one projection. Omitted parameters take their defaults and
// ?ledger=false leaves out the per-animal ledger.
func (h *ProjectionHandler) Project(c *gin.Context) {
	result, ok := h.project(c)
	if !ok {
		return
	}

	if c.DefaultQuery("ledger", "true") == "false" {
		// the projector may hand out a shared cached result
		stripped := *result
		stripped.Ledger = nil
		result = &stripped
	}

	c.JSON(http.StatusOK, result)
}

// Export renders one projection with a registered output formatter.
func (h *ProjectionHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported format %q", format), "formats": output.FormatterNames()})
		return
	}

	result, ok := h.project(c)
	if !ok {
		return
	}

	data, err := formatter.Format(result)
	if err != nil {
		h.logger.Error("failed formatting projection", zap.String("format", format), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render projection"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="herd_projection.%s"`, output.Extension(format)))
	c.Data(http.StatusOK, output.ContentType(format), data)
}

// Compare projects the base parameters against the requested templates.
func (h *ProjectionHandler) Compare(c *gin.Context) {
	req := CompareRequest{Base: domain.DefaultParameters()}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid compare payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Templates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one template is required"})
		return
	}

	compSet, err := h.compare.Compare(c.Request.Context(), req.Base, compare.CompareOptions{
		BaseScenarioName: req.BaseName,
		Templates:        req.Templates,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, compSet)
}

// project binds the parameters and runs the projector, writing the error
// response itself when it fails.
func (h *ProjectionHandler) project(c *gin.Context) (*domain.ProjectionResult, bool) {
	params := domain.DefaultParameters()
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&params); err != nil {
			h.logger.Warn("invalid projection payload", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return nil, false
		}
	}

	start := time.Now()
	result, err := h.projector.Project(params)
	if err != nil {
		h.metrics.ObserveProjection("error", time.Since(start))
		h.writeError(c, err)
		return nil, false
	}
	h.metrics.ObserveProjection("ok", time.Since(start))

	return result, true
}

func (h *ProjectionHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidParameters),
		errors.Is(err, compare.ErrUnknownTemplate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request cancelled"})
	default:
		h.logger.Error("projection failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "projection failed"})
	}
}
