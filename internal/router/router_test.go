package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/chef-ia/backend/config"
	"github.com/pageza/chef-ia/backend/internal/api"
	"github.com/pageza/chef-ia/backend/internal/middleware"
	"github.com/pageza/chef-ia/backend/internal/mocks"
	"github.com/pageza/chef-ia/backend/internal/service"
	"github.com/pageza/chef-ia/backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(origins ...string) *gin.Engine {
	llmCfg := config.LLMConfig{APIKey: "key", Model: "gemini-1.5-flash", JSONMode: true}
	recipeCfg := config.RecipeConfig{
		FallbackPolicy:      config.FallbackSubstitute,
		DefaultTitle:        "Chef AI Recipe",
		DefaultInstructions: "The steps could not be generated.",
	}
	model := mocks.Replying(`{"title":"Omelette","instructions":"Beat and fry."}`)
	recipes := service.NewRecipeService(service.NewLLMService(model, llmCfg), recipeCfg)

	return SetupRouter(
		config.ServerConfig{EnableRootStub: true, AllowedOrigins: origins},
		api.NewHealthHandler(llmCfg),
		api.NewRecipeHandler(recipes, true),
	)
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRouter(t *testing.T) {
	r := newTestRouter()

	t.Run("health carries a request id", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

		var resp types.HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "gemini-1.5-flash", resp.Model)
	})

	t.Run("incoming request id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := serve(r, req)

		assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("recipe generation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/generate-recipe", strings.NewReader(`{"ingredients":"eggs"}`))
		req.Header.Set("Content-Type", "application/json")
		w := serve(r, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"title":"Omelette","instructions":"Beat and fry."}`, w.Body.String())
	})

	t.Run("unknown route", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"not found"}`, w.Body.String())
	})

	t.Run("wrong method", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/generate-recipe", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.JSONEq(t, `{"detail":"method not allowed"}`, w.Body.String())
	})
}

func TestSetupRouterCORS(t *testing.T) {
	t.Run("disabled without origins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := serve(newTestRouter(), req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := serve(newTestRouter("http://localhost:5173"), req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
