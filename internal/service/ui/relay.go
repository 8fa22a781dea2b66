package ui

import "sync"

// Relay is a Notifier whose delivery target is bound late, after the
// transport that renders notices has started. Notices arriving before a
// target is set are dropped; they are informational only.
type Relay struct {
	mu     sync.RWMutex
	target func(text string)
}

func NewRelay() *Relay {
	return &Relay{}
}

func (r *Relay) SetTarget(fn func(text string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = fn
}

func (r *Relay) Notify(text string) {
	r.mu.RLock()
	fn := r.target
	r.mu.RUnlock()
	if fn != nil {
		fn(text)
	}
}
