// Package notify shows one ephemeral status message at a time ("Copied",
// "Reset", ...) that clears itself after a short delay.
package notify

import (
	"sync"
	"time"
)

// DefaultTTL is how long a message stays visible unless superseded.
const DefaultTTL = 1200 * time.Millisecond

// Service owns at most one pending expiry timer. A new Show cancels the
// previous timer before starting its own, so a superseded message can never
// clear its successor. Stop is not enough on its own: a timer that has
// already fired can be blocked on the mutex when Show runs, so each timer
// carries the generation it was armed for and expire ignores stale ones.
// The mutex is needed because the timer fires off the UI goroutine.
type Service struct {
	mu       sync.Mutex
	msg      string
	timer    *time.Timer
	gen      uint64
	ttl      time.Duration
	onExpire func()
}

// New returns a Service with the given TTL; ttl <= 0 means DefaultTTL.
func New(ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{ttl: ttl}
}

// OnExpire registers a hook invoked after a message expires. The TUI uses it
// to request a redraw, since expiry happens outside the update loop.
func (s *Service) OnExpire(fn func()) {
	s.mu.Lock()
	s.onExpire = fn
	s.mu.Unlock()
}

// Show replaces the current message and restarts the expiry timer. It never
// blocks the caller.
func (s *Service) Show(msg string) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.msg = msg
	s.timer = time.AfterFunc(s.ttl, func() { s.expire(gen) })
	s.mu.Unlock()
}

func (s *Service) expire(gen uint64) {
	s.mu.Lock()
	if gen != s.gen {
		// A newer Show or Stop superseded this timer after it fired.
		s.mu.Unlock()
		return
	}
	s.msg = ""
	s.timer = nil
	fn := s.onExpire
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Current returns the visible message, or "" when none is active.
func (s *Service) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.msg
}

// Stop cancels any pending timer and clears the message. Called on teardown
// so a late timer cannot fire into a dead program.
func (s *Service) Stop() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	s.msg = ""
	s.mu.Unlock()
}
