package dashboard

import (
	"context"
	"sync"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
)

// boardState is what one session's dashboard currently shows.
type boardState struct {
	Query   string
	Results []gateway.User
	Error   string
	// SelectedID points into Results, or at Detached for deep links.
	SelectedID string
	Detached   *gateway.User
}

// find returns the cached record for id, from the results or the detached
// selection.
func (s boardState) find(id string) (gateway.User, bool) {
	for _, user := range s.Results {
		if user.ID == id {
			return user, true
		}
	}
	if s.Detached != nil && s.Detached.ID == id {
		return *s.Detached, true
	}
	return gateway.User{}, false
}

// selected returns the record shown in the detail panel.
func (s boardState) selected() (gateway.User, bool) {
	if s.SelectedID == "" {
		return gateway.User{}, false
	}
	return s.find(s.SelectedID)
}

// board is one session's dashboard. Loads are ordered by generation: a new
// load cancels the one in flight and only the latest may write its result.
type board struct {
	mu         sync.Mutex
	state      boardState
	generation uint64
	cancel     context.CancelFunc
}

func (b *board) snapshot() boardState {
	b.mu.Lock()
	defer b.mu.Unlock()
	state := b.state
	state.Results = append([]gateway.User(nil), b.state.Results...)
	return state
}

func (b *board) update(fn func(*boardState)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(&b.state)
}

// begin starts a new load. The returned context is cancelled when a newer
// load begins or done is called.
func (b *board) begin(ctx context.Context) (uint64, context.Context, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel != nil {
		b.cancel()
	}
	b.generation++
	gen := b.generation
	loadCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	return gen, loadCtx, func() {
		cancel()
		b.mu.Lock()
		if b.generation == gen {
			b.cancel = nil
		}
		b.mu.Unlock()
	}
}

// finish applies fn when gen is still the latest load and reports whether it
// did.
func (b *board) finish(gen uint64, fn func(*boardState)) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.generation {
		return false
	}
	fn(&b.state)
	return true
}

func (b *board) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.generation++
	b.state = boardState{}
}

// boards holds one board per browser session.
type boards struct {
	mu        sync.Mutex
	bySession map[string]*board
}

func newBoards() *boards {
	return &boards{bySession: make(map[string]*board)}
}

func (bs *boards) get(sessionID string) *board {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	b, ok := bs.bySession[sessionID]
	if !ok {
		b = &board{}
		bs.bySession[sessionID] = b
	}
	return b
}

// discard drops a session's board and cancels its in-flight load.
func (bs *boards) discard(sessionID string) {
	bs.mu.Lock()
	b, ok := bs.bySession[sessionID]
	delete(bs.bySession, sessionID)
	bs.mu.Unlock()
	if ok {
		b.close()
	}
}

func (bs *boards) len() int {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	return len(bs.bySession)
}
