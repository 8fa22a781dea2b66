package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/groundchat/internal/core"
	"github.com/sandevgo/groundchat/internal/providers/llm"
	"github.com/sandevgo/groundchat/pkg/log"
	"github.com/sandevgo/groundchat/pkg/retry"
)

var (
	// ErrRetriesExhausted is the terminal classification once every
	// permitted attempt came back rate limited.
	ErrRetriesExhausted = errors.New("rate limit retries exhausted")

	ErrEmptyInput = errors.New("empty input")
)

// Dispatcher turns one user input plus an optional grounding context into
// exactly one assistant reply or a classified error. It holds no state
// between invocations; transcript and context stores belong to the caller.
type Dispatcher struct {
	generator core.Generator
	notifier  core.Notifier
	retryCfg  *retry.Config
}

func NewDispatcher(generator core.Generator, notifier core.Notifier, retryCfg *retry.Config) *Dispatcher {
	if retryCfg == nil {
		retryCfg = retry.NewDefaultConfig()
	}
	return &Dispatcher{
		generator: generator,
		notifier:  notifier,
		retryCfg:  retryCfg,
	}
}

// Send dispatches one message. Only rate limiting retries; every other
// failure surfaces immediately.
func (d *Dispatcher) Send(ctx context.Context, input, contextText string) (string, error) {
	logger := log.FromCtx(ctx)

	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyInput
	}

	prompt := BuildPrompt(input, contextText)

	cfg := retry.Config{
		MaxAttempts: d.retryCfg.MaxAttempts,
		Unit:        d.retryCfg.Unit,
		OnWait: func(attempt int, wait time.Duration) {
			logger.Warn().Dur("wait", wait).Int("attempt", attempt).Msg("rate limited, backing off")
			d.notify(fmt.Sprintf("Rate limited. Retrying in %s (attempt %d/%d)...",
				wait, attempt, d.retryCfg.MaxAttempts))
		},
	}

	var reply string
	err := retry.NewRetrier(&cfg).Do(ctx, func() error {
		out, genErr := d.generator.Generate(ctx, prompt)
		if genErr != nil {
			var rle *llm.RateLimitError
			if errors.As(genErr, &rle) {
				return retry.Transient(genErr)
			}
			return genErr
		}
		reply = out
		return nil
	})
	if err != nil {
		if errors.Is(err, retry.ErrExhausted) {
			return "", ErrRetriesExhausted
		}
		return "", err
	}

	logger.Debug().Int("reply_chars", len(reply)).Msg("dispatch succeeded")
	return reply, nil
}

func (d *Dispatcher) notify(text string) {
	if d.notifier != nil {
		d.notifier.Notify(text)
	}
}

// Describe maps a dispatch failure to the human-readable message shown to
// the user.
func Describe(err error) string {
	switch {
	case errors.Is(err, llm.ErrMissingCredential):
		return "No API key configured. Set GEMINI_API_KEY and restart."
	case errors.Is(err, ErrRetriesExhausted):
		return "The provider kept rate limiting us and the retry budget ran out. Try again in a minute."
	case errors.Is(err, llm.ErrMalformedResponse):
		return "The provider returned an unexpected response. Try again."
	case errors.Is(err, ErrEmptyInput):
		return "Type a message before sending."
	}

	var re *llm.RequestError
	if errors.As(err, &re) {
		return fmt.Sprintf("Request failed: %s", re.Message)
	}
	return fmt.Sprintf("Request failed: %v", err)
}
