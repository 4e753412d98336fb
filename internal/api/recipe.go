package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pageza/chef-ia/backend/internal/service"
	"github.com/pageza/chef-ia/backend/internal/types"
)

// Placeholder body returned by the root smoke-test endpoint.
const (
	rootStubTitle        = "Server Active"
	rootStubInstructions = "Use /generate-recipe"
)

// RecipeHandler handles recipe generation requests
type RecipeHandler struct {
	recipes        service.IRecipeService
	enableRootStub bool
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipes service.IRecipeService, enableRootStub bool) *RecipeHandler {
	return &RecipeHandler{
		recipes:        recipes,
		enableRootStub: enableRootStub,
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/generate-recipe", h.GenerateRecipe)
	if h.enableRootStub {
		router.POST("/", h.RootCheck)
	}
}

// bindRecipeRequest requires a JSON object whose ingredients field is a
// string. An empty string is allowed.
func bindRecipeRequest(c *gin.Context) (types.RecipeRequest, bool) {
	var req struct {
		Ingredients *string `json:"ingredients"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{Detail: "invalid request body: " + err.Error()})
		return types.RecipeRequest{}, false
	}
	if req.Ingredients == nil {
		c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{Detail: "invalid request body: ingredients is required"})
		return types.RecipeRequest{}, false
	}
	return types.RecipeRequest{Ingredients: *req.Ingredients}, true
}

// RootCheck answers with a fixed placeholder recipe without calling the model
func (h *RecipeHandler) RootCheck(c *gin.Context) {
	if _, ok := bindRecipeRequest(c); !ok {
		return
	}
	c.JSON(http.StatusOK, types.RecipeResponse{
		Title:        rootStubTitle,
		Instructions: rootStubInstructions,
	})
}

// GenerateRecipe generates a recipe from the posted ingredients
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	req, ok := bindRecipeRequest(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Generate(c.Request.Context(), req.Ingredients)
	if err != nil {
		status, detail := errorDetail(err)
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Int("status", status).Msg("recipe generation failed")
		c.JSON(status, types.ErrorResponse{Detail: detail})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// errorDetail maps service errors to a status and caller-facing message.
func errorDetail(err error) (int, string) {
	var (
		cfgErr *service.ConfigurationError
		invErr *service.ModelInvocationError
		exErr  *service.ExtractionError
		valErr *service.ValidationError
	)
	switch {
	case errors.As(err, &cfgErr):
		return http.StatusInternalServerError, cfgErr.Error()
	case errors.As(err, &invErr):
		return http.StatusInternalServerError, "AI error: " + invErr.Cause.Error()
	case errors.As(err, &exErr):
		return http.StatusInternalServerError, "AI error: " + exErr.Error()
	case errors.As(err, &valErr):
		return http.StatusInternalServerError, "AI error: " + valErr.Error()
	default:
		return http.StatusInternalServerError, "AI error: unexpected failure"
	}
}
