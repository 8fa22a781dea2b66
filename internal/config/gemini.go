package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/groundchat/pkg/log"
)

type GeminiConfig struct {
	// APIKey may be empty; the dispatcher refuses to place calls without it
	// instead of failing at startup, so the UI can explain what is missing.
	APIKey  string `env:"GEMINI_API_KEY"`
	Model   string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	BaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
}

func NewGeminiConfig(ctx context.Context) *GeminiConfig {
	c := &GeminiConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Gemini config")
	}
	return c
}
