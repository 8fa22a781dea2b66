package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/qmuntal/stateless"
	"github.com/sandevgo/groundchat/internal/core"
	"github.com/sandevgo/groundchat/internal/service/dispatch"
)

// ErrBusy rejects a send while another one is still in flight. Concurrent
// sends are refused rather than queued.
var ErrBusy = errors.New("a message is already in flight")

// Session guard states and triggers.
var (
	stateIdle stateless.State = "Idle"
	stateBusy stateless.State = "Busy"

	triggerSend    stateless.Trigger = "Send"
	triggerResolve stateless.Trigger = "Resolve"
)

// Sender is the dispatcher port the session depends on.
type Sender interface {
	Send(ctx context.Context, input, contextText string) (string, error)
}

// Session owns one conversation: the transcript, the uploaded contexts and
// the in-flight guard. The dispatcher stays pure; every transcript mutation
// happens here, after a dispatch resolves.
type Session struct {
	transcript *Transcript
	contexts   *ContextStore
	dispatcher Sender
	guard      *stateless.StateMachine
}

func NewSession(dispatcher Sender) *Session {
	guard := stateless.NewStateMachine(stateIdle)
	guard.Configure(stateIdle).Permit(triggerSend, stateBusy)
	guard.Configure(stateBusy).Permit(triggerResolve, stateIdle)

	return &Session{
		transcript: NewTranscript(),
		contexts:   NewContextStore(),
		dispatcher: dispatcher,
		guard:      guard,
	}
}

func (s *Session) Transcript() *Transcript { return s.transcript }

func (s *Session) Contexts() *ContextStore { return s.contexts }

func (s *Session) Busy() bool {
	return s.guard.MustState() == stateBusy
}

// Send dispatches one user message. On success exactly one user and one
// assistant message are appended; on any failure the transcript is left
// untouched and the error carries the classification.
func (s *Session) Send(ctx context.Context, input string) (core.Message, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return core.Message{}, dispatch.ErrEmptyInput
	}

	if err := s.guard.Fire(triggerSend); err != nil {
		return core.Message{}, ErrBusy
	}
	defer func() {
		_ = s.guard.Fire(triggerResolve)
	}()

	contextText := ""
	if cx, ok := s.contexts.Selected(); ok {
		contextText = cx.Content
	}

	reply, err := s.dispatcher.Send(ctx, input, contextText)
	if err != nil {
		return core.Message{}, err
	}

	s.transcript.Append(core.Message{Role: core.RoleUser, Content: input})
	assistant := core.Message{Role: core.RoleAssistant, Content: reply}
	s.transcript.Append(assistant)
	return assistant, nil
}
