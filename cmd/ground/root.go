package main

import (
	"context"
	"os"

	"github.com/sandevgo/groundchat/internal/config"
	"github.com/sandevgo/groundchat/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "ground",
	Short: "GroundChat — chat with Gemini over your own documents",
	Long: `GroundChat is a terminal chat client for the Gemini generateContent API.
Attach small text, markdown, HTML or PDF documents, pick one as grounding
material, and converse; rate-limited requests retry with exponential backoff.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
