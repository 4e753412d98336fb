package service

import (
	"context"

	"github.com/pageza/chef-ia/backend/internal/types"
)

// IRecipeService defines the interface for recipe generation
type IRecipeService interface {
	Generate(ctx context.Context, ingredients string) (*types.RecipeResponse, error)
}

var _ IRecipeService = (*RecipeService)(nil)
