// Package inflight tracks form submissions that are still being processed.
//
// A key is held from the moment a submission is accepted until its backend
// call resolves, so a second submission for the same key is refused rather
// than queued.
package inflight

import "sync"

// Guard is a set of held keys. The zero value is ready to use.
type Guard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// TryAcquire claims key. When ok is false the key is already held and the
// caller must not proceed. The returned release is idempotent.
func (g *Guard) TryAcquire(key string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held == nil {
		g.held = make(map[string]struct{})
	}
	if _, busy := g.held[key]; busy {
		return func() {}, false
	}
	g.held[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, true
}

// Busy reports whether key is currently held.
func (g *Guard) Busy(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.held[key]
	return busy
}

// Key joins a session id and form name into a guard key.
func Key(sessionID, form string) string {
	return sessionID + "|" + form
}
