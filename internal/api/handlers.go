package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/chef-ia/backend/config"
	"github.com/pageza/chef-ia/backend/internal/types"
)

// HealthHandler reports service status and the configured model
type HealthHandler struct {
	llm config.LLMConfig
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(llm config.LLMConfig) *HealthHandler {
	return &HealthHandler{llm: llm}
}

// HealthCheck returns the health status of the API. It does not depend on
// the credential being present.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status: "ok",
		Model:  h.llm.Model,
		Mode:   h.llm.Mode(),
	})
}

// RegisterRoutes registers the health routes
func (h *HealthHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/health", h.HealthCheck)
}
