package resource

import (
	"sync"

	"clementus360/ai-helper-client/types"
)

// Guard tracks in-flight mutations. Each item id moves idle -> pending ->
// idle; a second acquire while pending fails with types.ErrBusy. One extra
// slot covers collection-wide writes such as create.
type Guard struct {
	mu         sync.Mutex
	pending    map[int64]struct{}
	collection bool
}

func NewGuard() *Guard {
	return &Guard{pending: make(map[int64]struct{})}
}

// Acquire marks id pending. The returned release must be called exactly once.
func (g *Guard) Acquire(id int64) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.pending[id]; busy {
		return nil, types.ErrBusy
	}
	g.pending[id] = struct{}{}
	return func() {
		g.mu.Lock()
		delete(g.pending, id)
		g.mu.Unlock()
	}, nil
}

// AcquireCollection takes the collection-wide slot.
func (g *Guard) AcquireCollection() (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.collection {
		return nil, types.ErrBusy
	}
	g.collection = true
	return func() {
		g.mu.Lock()
		g.collection = false
		g.mu.Unlock()
	}, nil
}

func (g *Guard) Pending(id int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.pending[id]
	return busy
}
