package service

import (
	"sync"

	"github.com/critmass/availability-bot/internal/domain/entity"
)

// scopeState is one scope's in-memory state. All mutations and reads of
// avail, threshold and reached happen under mu, so a batch update and
// its critical mass evaluation are atomic to outside observers. States
// for different scopes never share locks.
type scopeState struct {
	mu sync.Mutex

	id          int64
	channelID   string
	channelName string

	threshold int
	reached   bool

	// avail maps date -> slack user id -> user. A date key exists only
	// while its user set is non-empty.
	avail map[entity.Date]map[string]entity.User
}

func newScopeState(id int64, channelID, channelName string, threshold int) *scopeState {
	return &scopeState{
		id:          id,
		channelID:   channelID,
		channelName: channelName,
		threshold:   threshold,
		avail:       make(map[entity.Date]map[string]entity.User),
	}
}

// registry holds every loaded scope, replacing the ambient process-wide
// maps of earlier designs so tests can build isolated scopes.
type registry struct {
	mu     sync.RWMutex
	scopes map[string]*scopeState
}

func newRegistry() *registry {
	return &registry{scopes: make(map[string]*scopeState)}
}

func (r *registry) get(channelID string) (*scopeState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.scopes[channelID]
	return st, ok
}

// putIfAbsent registers st unless the channel is already loaded, and
// returns whichever state is registered afterwards.
func (r *registry) putIfAbsent(st *scopeState) *scopeState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.scopes[st.channelID]; ok {
		return existing
	}
	r.scopes[st.channelID] = st
	return st
}

func (r *registry) remove(channelID string) (*scopeState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.scopes[channelID]
	if ok {
		delete(r.scopes, channelID)
	}
	return st, ok
}
