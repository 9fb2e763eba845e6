package handler

import (
	"context"
	"net/http"

	"retrofit_analysis_backend/internal/analysis/transport"
	"retrofit_analysis_backend/platform/httpkit"
	"retrofit_analysis_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// AnalysisService is the service dependency of the handler.
type AnalysisService interface {
	Analyze(ctx context.Context, req transport.AnalyzeRequest) (*transport.AnalysisReport, error)
}

// Handler exposes the analysis endpoint.
type Handler struct {
	svc      AnalysisService
	validate *validator.Validator
}

func NewHandler(svc AnalysisService, validate *validator.Validator) *Handler {
	return &Handler{svc: svc, validate: validate}
}

// Analyze handles POST /api/v1/analysis.
func (h *Handler) Analyze(c *gin.Context) {
	var req transport.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, "validation failed", err.Error())
		return
	}

	report, err := h.svc.Analyze(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, report)
}
