package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pageza/chef-ia/backend/config"
	"github.com/pageza/chef-ia/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testConfig returns a complete configuration with a credential present.
func testConfig() *config.Config {
	return &config.Config{
		Environment: config.Test,
		Server: config.ServerConfig{
			Host:           "127.0.0.1",
			Port:           "8000",
			EnableRootStub: true,
		},
		LLM: config.LLMConfig{
			APIKey:   "test-api-key",
			Model:    "gemini-1.5-flash",
			JSONMode: true,
		},
		Recipe: config.RecipeConfig{
			FallbackPolicy:      config.FallbackSubstitute,
			DefaultTitle:        "Chef AI Recipe",
			DefaultInstructions: "The steps could not be generated.",
			StrictPrompt:        true,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
	}
}

// setupTestRouter wires the handlers around model the same way main does.
func setupTestRouter(cfg *config.Config, model service.Model) *gin.Engine {
	llmService := service.NewLLMService(model, cfg.LLM)
	recipeService := service.NewRecipeService(llmService, cfg.Recipe)

	router := gin.New()
	NewHealthHandler(cfg.LLM).RegisterRoutes(router)
	NewRecipeHandler(recipeService, cfg.Server.EnableRootStub).RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
