package chat

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sandevgo/groundchat/internal/core"
)

// ContextStore holds the uploaded grounding documents in insertion order.
// Contexts are immutable once added; there is no delete operation. At most
// one context is selected at a time.
type ContextStore struct {
	mu       sync.RWMutex
	contexts []core.Context
	selected string
}

func NewContextStore() *ContextStore {
	return &ContextStore{selected: core.NoContextID}
}

func (s *ContextStore) Add(name, content string, tokens int) core.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	cx := core.Context{
		ID:      uuid.NewString(),
		Name:    name,
		Content: content,
		Tokens:  tokens,
	}
	s.contexts = append(s.contexts, cx)
	return cx
}

func (s *ContextStore) All() []core.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Context, len(s.contexts))
	copy(out, s.contexts)
	return out
}

// Select picks the context with the given id. An unknown or stale id falls
// back silently to no context, as does core.NoContextID itself.
func (s *ContextStore) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == core.NoContextID {
		s.selected = core.NoContextID
		return
	}
	for _, cx := range s.contexts {
		if cx.ID == id {
			s.selected = id
			return
		}
	}
	s.selected = core.NoContextID
}

// Selected returns the currently selected context, if any.
func (s *ContextStore) Selected() (core.Context, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == core.NoContextID {
		return core.Context{}, false
	}
	for _, cx := range s.contexts {
		if cx.ID == s.selected {
			return cx, true
		}
	}
	return core.Context{}, false
}
