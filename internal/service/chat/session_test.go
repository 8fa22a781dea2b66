package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/groundchat/internal/core"
	"github.com/sandevgo/groundchat/internal/service/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	reply        string
	err          error
	lastInput    string
	lastContext  string
	block        chan struct{} // when set, Send blocks until closed
	started      chan struct{} // signals that Send was entered
	timesInvoked int
}

func (f *fakeSender) Send(ctx context.Context, input, contextText string) (string, error) {
	f.timesInvoked++
	f.lastInput = input
	f.lastContext = contextText
	if f.started != nil {
		close(f.started)
		f.started = nil
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestSession_SendAppendsUserAndAssistant(t *testing.T) {
	sender := &fakeSender{reply: "hi, human"}
	s := NewSession(sender)

	msg, err := s.Send(context.Background(), "  hello  ")
	require.NoError(t, err)
	assert.Equal(t, core.RoleAssistant, msg.Role)
	assert.Equal(t, "hi, human", msg.Content)

	got := s.Transcript().Messages()
	require.Len(t, got, 2)
	assert.Equal(t, core.Message{Role: core.RoleUser, Content: "hello"}, got[0])
	assert.Equal(t, core.Message{Role: core.RoleAssistant, Content: "hi, human"}, got[1])
}

func TestSession_FailureLeavesTranscriptUntouched(t *testing.T) {
	sender := &fakeSender{err: errors.New("boom")}
	s := NewSession(sender)

	_, err := s.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, 0, s.Transcript().Len())
}

func TestSession_BlankInputRejected(t *testing.T) {
	sender := &fakeSender{reply: "never"}
	s := NewSession(sender)

	_, err := s.Send(context.Background(), "   ")
	require.ErrorIs(t, err, dispatch.ErrEmptyInput)
	assert.Equal(t, 0, sender.timesInvoked)
}

func TestSession_SelectedContextFlowsToDispatcher(t *testing.T) {
	sender := &fakeSender{reply: "grounded answer"}
	s := NewSession(sender)

	cx := s.Contexts().Add("manual.txt", "The button is red.", 5)
	s.Contexts().Select(cx.ID)

	_, err := s.Send(context.Background(), "what color?")
	require.NoError(t, err)
	assert.Equal(t, "The button is red.", sender.lastContext)
}

func TestSession_StaleSelectionFallsBackToNoContext(t *testing.T) {
	sender := &fakeSender{reply: "ungrounded answer"}
	s := NewSession(sender)

	s.Contexts().Add("manual.txt", "The button is red.", 5)
	s.Contexts().Select("no-such-id")

	_, err := s.Send(context.Background(), "what color?")
	require.NoError(t, err)
	assert.Equal(t, "", sender.lastContext)
}

func TestSession_SecondSendWhileBusyIsRejected(t *testing.T) {
	block := make(chan struct{})
	started := make(chan struct{})
	sender := &fakeSender{reply: "slow reply", block: block, started: started}
	s := NewSession(sender)

	done := make(chan error, 1)
	go func() {
		_, err := s.Send(context.Background(), "first")
		done <- err
	}()
	<-started
	assert.True(t, s.Busy())

	_, err := s.Send(context.Background(), "second")
	require.ErrorIs(t, err, ErrBusy)

	close(block)
	require.NoError(t, <-done)
	assert.False(t, s.Busy())

	// Only the first message made it through.
	got := s.Transcript().Messages()
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Content)
	assert.Equal(t, 1, sender.timesInvoked)
}

func TestSession_GuardRecoversAfterFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("boom")}
	s := NewSession(sender)

	_, err := s.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.False(t, s.Busy(), "guard must return to idle after a failed send")

	sender.err = nil
	sender.reply = "second try works"
	_, err = s.Send(context.Background(), "hello again")
	require.NoError(t, err)
}
