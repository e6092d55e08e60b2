package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Spok95/uniformhub/internal/domain/cart"
	"github.com/Spok95/uniformhub/internal/domain/users"
)

var ErrUnknownToken = errors.New("session: unknown token")

// Workspace is one client's session and cart. Callers hold Lock while they
// read or mutate either so every reader sees a whole cart.
type Workspace struct {
	sync.Mutex
	Token   string
	Session *Session
	Cart    *cart.Cart

	// LastSeen is guarded by the registry, not by the workspace lock.
	LastSeen time.Time
}

// Registry hands out workspaces by opaque token.
type Registry struct {
	mu    sync.Mutex
	dir   *users.Directory
	items map[string]*Workspace
	now   func() time.Time
}

func NewRegistry(dir *users.Directory) *Registry {
	return &Registry{
		dir:   dir,
		items: make(map[string]*Workspace),
		now:   time.Now,
	}
}

// Open creates an unauthenticated workspace with an empty cart.
func (r *Registry) Open() *Workspace {
	w := &Workspace{
		Token:    uuid.NewString(),
		Session:  New(r.dir),
		Cart:     cart.New(),
		LastSeen: r.now(),
	}
	r.mu.Lock()
	r.items[w.Token] = w
	r.mu.Unlock()
	return w
}

func (r *Registry) Get(token string) (*Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.items[token]
	if !ok {
		return nil, ErrUnknownToken
	}
	w.LastSeen = r.now()
	return w, nil
}

// Close discards the workspace; closing an unknown token is a no-op.
func (r *Registry) Close(token string) {
	r.mu.Lock()
	delete(r.items, token)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Expire drops workspaces idle for longer than ttl and returns how many went.
func (r *Registry) Expire(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for token, w := range r.items {
		if w.LastSeen.Before(cutoff) {
			delete(r.items, token)
			n++
		}
	}
	return n
}
