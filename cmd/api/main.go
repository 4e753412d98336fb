package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pageza/chef-ia/backend/config"
	"github.com/pageza/chef-ia/backend/internal/api"
	"github.com/pageza/chef-ia/backend/internal/logging"
	"github.com/pageza/chef-ia/backend/internal/router"
	"github.com/pageza/chef-ia/backend/internal/server"
	"github.com/pageza/chef-ia/backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if err := logging.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logging")
	}
	if cfg.Environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Initialize services. Without a credential the server still starts and
	// generation requests fail with a configuration error.
	var model service.Model
	if cfg.LLM.HasCredential() {
		gemini, err := service.NewGeminiModel(ctx, cfg.LLM)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize gemini")
		}
		model = gemini
	} else {
		log.Error().Msgf("%s not found in environment; /generate-recipe will fail", config.GeminiAPIKeyEnv)
	}

	llmService := service.NewLLMService(model, cfg.LLM)
	recipeService := service.NewRecipeService(llmService, cfg.Recipe)

	r := router.SetupRouter(
		cfg.Server,
		api.NewHealthHandler(cfg.LLM),
		api.NewRecipeHandler(recipeService, cfg.Server.EnableRootStub),
	)

	log.Info().
		Str("env", string(cfg.Environment)).
		Str("model", cfg.LLM.Model).
		Bool("json_mode", cfg.LLM.JSONMode).
		Str("fallback_policy", string(cfg.Recipe.FallbackPolicy)).
		Msg("configuration loaded")

	if err := server.New(cfg.Server, r).Start(ctx); err != nil {
		log.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
