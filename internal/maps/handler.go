package maps

import (
	"retrofit_analysis_backend/platform/config"
	"retrofit_analysis_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// MapConfigResponse carries the map-provider settings for the frontend.
type MapConfigResponse struct {
	MapProviderToken string `json:"mapProviderToken"`
	Enabled          bool   `json:"enabled"`
}

// Handler exposes the map configuration endpoint.
type Handler struct {
	cfg config.MapsConfig
}

func NewHandler(cfg config.MapsConfig) *Handler {
	return &Handler{cfg: cfg}
}

// GetConfig handles GET /api/v1/maps/config
func (h *Handler) GetConfig(c *gin.Context) {
	httpkit.OK(c, MapConfigResponse{
		MapProviderToken: h.cfg.GetMapProviderToken(),
		Enabled:          h.cfg.IsMapsEnabled(),
	})
}
