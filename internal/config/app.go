package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/groundchat/pkg/log"
)

type AppConfig struct {
	// Transport selection; the TUI is the default chat surface.
	EnableTUI bool `env:"GROUND_TUI" envDefault:"true"`

	// Ingestion limits for attached documents.
	MaxDocumentBytes  int64 `env:"GROUND_MAX_DOC_BYTES" envDefault:"1048576"`
	ContextTokenAlert int   `env:"GROUND_CONTEXT_TOKEN_ALERT" envDefault:"8000"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}
