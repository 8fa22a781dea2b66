package core

import "context"

// Generator produces one reply for one prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Notifier is a fire-and-forget sink for user-visible notices: transient
// retry progress, terminal failures, credential problems.
type Notifier interface {
	Notify(text string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(text string)

func (f NotifierFunc) Notify(text string) { f(text) }
