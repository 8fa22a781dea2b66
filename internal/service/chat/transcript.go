package chat

import (
	"sync"

	"github.com/sandevgo/groundchat/internal/core"
)

// Transcript is the append-only conversation log. Messages are never mutated
// or removed once appended.
type Transcript struct {
	mu       sync.RWMutex
	messages []core.Message
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

func (t *Transcript) Append(msg core.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, msg)
}

// Messages returns a snapshot copy; callers can render it without holding
// any lock.
func (t *Transcript) Messages() []core.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]core.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}
