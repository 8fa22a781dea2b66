package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sandevgo/groundchat/internal/config"
	"github.com/sandevgo/groundchat/internal/providers/docs"
	"github.com/sandevgo/groundchat/internal/providers/llm"
	"github.com/sandevgo/groundchat/internal/service/chat"
	"github.com/sandevgo/groundchat/internal/service/dispatch"
	"github.com/sandevgo/groundchat/internal/service/ui"
	"github.com/sandevgo/groundchat/internal/transport/cli"
	"github.com/sandevgo/groundchat/internal/transport/tui"
	"github.com/sandevgo/groundchat/pkg/log"
	"github.com/sandevgo/groundchat/pkg/retry"
	"github.com/sandevgo/groundchat/pkg/srv"
)

func NewServices(ctx context.Context, stop context.CancelFunc, plain bool) ([]srv.Service, error) {
	logger := log.FromCtx(ctx)

	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("loaded .env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	geminiCfg := config.NewGeminiConfig(ctx)

	if geminiCfg.APIKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY is not set; sends will be refused until it is")
	}

	// 2. Dispatcher over the Gemini client, notices through the relay
	relay := ui.NewRelay()
	gemini := llm.NewGemini(geminiCfg)
	dispatcher := dispatch.NewDispatcher(gemini, relay, retry.NewDefaultConfig())

	// 3. Conversation state and document ingestion
	session := chat.NewSession(dispatcher)
	ingestor := docs.NewIngestor(appCfg.MaxDocumentBytes)

	// 4. Transport
	services := make([]srv.Service, 0, 1)
	if plain || !appCfg.EnableTUI {
		rl, err := cli.NewReadLine(appCfg, session, ingestor, relay, stop)
		if err != nil {
			return nil, fmt.Errorf("init readline: %w", err)
		}
		services = append(services, rl)
	} else {
		services = append(services, tui.New(appCfg, session, ingestor, relay, stop))
	}

	return services, nil
}
