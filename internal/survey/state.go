package survey

import (
	"context"
	"sync"
)

// State is the transient per-conversation scratch of an in-progress survey.
// It survives across inbound messages for the same chat but not process
// restarts.
type State struct {
	Survey   string              `json:"survey"`
	Step     int                 `json:"step"`
	Lang     string              `json:"lang"`
	Selected []string            `json:"selected"`
	Answers  map[string][]string `json:"answers"`
}

func newState(survey, lang string) *State {
	return &State{
		Survey:  survey,
		Lang:    lang,
		Answers: make(map[string][]string),
	}
}

func (s *State) selectedSet() map[string]bool {
	set := make(map[string]bool, len(s.Selected))
	for _, v := range s.Selected {
		set[v] = true
	}
	return set
}

func (s *State) toggle(option string) {
	for i, v := range s.Selected {
		if v == option {
			s.Selected = append(s.Selected[:i], s.Selected[i+1:]...)
			return
		}
	}
	s.Selected = append(s.Selected, option)
}

// StateStore persists conversation state keyed by chat id.
type StateStore interface {
	Get(ctx context.Context, chatID int64) (*State, error)
	Set(ctx context.Context, chatID int64, state *State) error
	Clear(ctx context.Context, chatID int64) error
}

// MemoryStore is an in-process StateStore, used when Redis is unavailable.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[int64]*State
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[int64]*State)}
}

// Get returns the chat's state, or nil when no survey is in progress.
func (m *MemoryStore) Get(_ context.Context, chatID int64) (*State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.states[chatID], nil
}

// Set stores the chat's state.
func (m *MemoryStore) Set(_ context.Context, chatID int64, state *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[chatID] = state
	return nil
}

// Clear drops the chat's state.
func (m *MemoryStore) Clear(_ context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, chatID)
	return nil
}
