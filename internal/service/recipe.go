package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pageza/chef-ia/backend/config"
	"github.com/pageza/chef-ia/backend/internal/types"
)

// RecipeService turns an ingredient list into a validated recipe
type RecipeService struct {
	llm *LLMService
	cfg config.RecipeConfig
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(llm *LLMService, cfg config.RecipeConfig) *RecipeService {
	return &RecipeService{
		llm: llm,
		cfg: cfg,
	}
}

// Generate builds the prompt, calls the model and recovers a recipe from the
// reply. Missing fields are filled with placeholders unless the fallback
// policy is strict.
func (s *RecipeService) Generate(ctx context.Context, ingredients string) (*types.RecipeResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("ingredients", ingredients).Msg("recipe requested")

	prompt := BuildRecipePrompt(ingredients, s.cfg.StrictPrompt)
	reply, err := s.llm.Invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	ex := ExtractRecipe(reply, s.cfg.RepairJSON)
	switch ex.Status {
	case ExtractionOK:
		return &ex.Recipe, nil

	case ExtractionMissingFields:
		if s.cfg.FallbackPolicy == config.FallbackStrict {
			logger.Error().Strs("missing", ex.Missing).Msg("model reply rejected")
			return nil, &ValidationError{Missing: ex.Missing}
		}
		logger.Warn().Strs("missing", ex.Missing).Msg("substituting placeholder recipe fields")
		recipe := ex.Recipe
		if recipe.Title == "" {
			recipe.Title = s.cfg.DefaultTitle
		}
		if recipe.Instructions == "" {
			recipe.Instructions = s.cfg.DefaultInstructions
		}
		return &recipe, nil

	case ExtractionUnparsable:
		logger.Error().Str("reason", ex.Reason).Str("reply", reply).Msg("model reply unparsable")
		return nil, &ExtractionError{Reason: ex.Reason}

	default:
		return nil, fmt.Errorf("unexpected extraction status %s", ex.Status)
	}
}
