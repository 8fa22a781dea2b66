package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sandevgo/groundchat/pkg/log"
	"github.com/sandevgo/groundchat/pkg/srv"
	"github.com/spf13/cobra"
)

var plain bool

var chatCmd = &cobra.Command{
	Use:           "chat",
	Short:         "Start an interactive chat session",
	Long:          `Opens the chat surface (TUI by default) against the configured Gemini model.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting groundchat")

		// The transport cancels this context when the user leaves the UI.
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		services, err := NewServices(ctx, cancel, plain)
		if err != nil {
			return err
		}

		srv.StartServices(ctx, services)
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("groundchat has been shut down gracefully")
		return nil
	},
}

func init() {
	chatCmd.Flags().BoolVar(&plain, "plain", false, "use the line-oriented transport instead of the TUI")
	rootCmd.AddCommand(chatCmd)
}
