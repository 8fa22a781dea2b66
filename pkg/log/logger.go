package log

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
)

// NewContextWithLogger installs a console logger on the context and returns
// a flush function the caller must defer.
func NewContextWithLogger(ctx context.Context, debug bool) (context.Context, func()) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Non-blocking writes through a diode ring buffer so logging never
	// stalls the chat loop. Logs go to stderr to keep the TUI intact.
	wr := diode.NewWriter(os.Stderr, 1000, 5*time.Millisecond, func(missed int) {
		fmt.Fprintf(os.Stderr, "logger dropped %d messages\n", missed)
	})

	output := zerolog.ConsoleWriter{
		Out:        wr,
		TimeFormat: time.DateTime,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			zerolog.MessageFieldName,
		},
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		Logger()

	log.Logger = logger

	return log.With().Logger().WithContext(ctx), func() {
		wr.Close()
	}
}

func FromCtx(ctx context.Context) *zerolog.Logger {
	return log.Ctx(ctx)
}
