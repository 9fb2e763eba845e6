package geocode

import (
	"net/http"

	"retrofit_analysis_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the postcode lookup endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Lookup handles GET /api/v1/geocode?postcode=...
func (h *Handler) Lookup(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'postcode' is required (min 5 chars)", nil)
		return
	}

	result, err := h.svc.Lookup(c.Request.Context(), req.Postcode)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
