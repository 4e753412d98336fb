package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/pageza/chef-ia/backend/config"
)

var errEmptyReply = errors.New("empty reply from model")

// Model performs one raw text generation against a language model provider
type Model interface {
	GenerateText(ctx context.Context, prompt string, jsonMode bool) (string, error)
}

// GeminiModel calls the Gemini API through the genai SDK
type GeminiModel struct {
	client *genai.Client
	model  string
}

// NewGeminiModel creates a Gemini-backed Model. The client is safe for
// concurrent use and is shared by all requests.
func NewGeminiModel(ctx context.Context, cfg config.LLMConfig) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiModel{client: client, model: cfg.Model}, nil
}

// GenerateText sends prompt as a single user turn. jsonMode asks the provider
// for an application/json reply, which it may ignore.
func (m *GeminiModel) GenerateText(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	genCfg := &genai.GenerateContentConfig{}
	if jsonMode {
		genCfg.ResponseMIMEType = "application/json"
	}

	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), genCfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// LLMService wraps a Model with credential checks, a per-call timeout and
// uniform error reporting
type LLMService struct {
	model Model
	cfg   config.LLMConfig
}

// NewLLMService creates a new LLMService instance. model may be nil when no
// credential is configured.
func NewLLMService(model Model, cfg config.LLMConfig) *LLMService {
	return &LLMService{
		model: model,
		cfg:   cfg,
	}
}

// Invoke calls the model once and returns its raw reply text.
func (s *LLMService) Invoke(ctx context.Context, prompt string) (string, error) {
	logger := zerolog.Ctx(ctx).With().Str("model", s.cfg.Model).Logger()

	if !s.cfg.HasCredential() || s.model == nil {
		err := &ConfigurationError{Setting: config.GeminiAPIKeyEnv}
		logger.Error().Err(err).Msg("model invocation skipped")
		return "", err
	}

	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := s.generate(ctx, prompt)
	elapsed := time.Since(start)

	if err == nil && strings.TrimSpace(reply) == "" {
		err = errEmptyReply
	}
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("timed out after %s: %w", s.cfg.RequestTimeout, err)
		}
		logger.Error().Err(err).Dur("elapsed", elapsed).Msg("model invocation failed")
		return "", &ModelInvocationError{Model: s.cfg.Model, Cause: err}
	}

	logger.Info().Dur("elapsed", elapsed).Int("reply_bytes", len(reply)).Msg("model invocation succeeded")
	logger.Debug().Str("reply", reply).Msg("raw model reply")
	return reply, nil
}

// generate isolates the provider call so a panicking SDK surfaces as an error.
func (s *LLMService) generate(ctx context.Context, prompt string) (reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()
	return s.model.GenerateText(ctx, prompt, s.cfg.JSONMode)
}
