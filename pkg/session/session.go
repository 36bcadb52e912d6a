package session

import (
	"context"
	"encoding/json"
	"sync"
)

// State is the lifecycle of a session between process start and resolution.
type State int

const (
	StateUninitialized State = iota
	StateResolving
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "uninitialized"
	}
}

// Manager resolves the persisted session on startup and tracks its state.
type Manager struct {
	client *Client
	store  Store

	mu       sync.RWMutex
	state    State
	identity *Identity
}

func NewManager(client *Client, store Store) *Manager {
	return &Manager{
		client: client,
		store:  store,
		state:  StateUninitialized,
	}
}

// Bootstrap restores the session and returns the state it settled on.
// Without a stored access token it settles on anonymous immediately, making
// no network call. With one, it validates against /auth/me: any failure,
// whether a rejection, a server error or a transport fault, drops every
// persisted key and settles on anonymous.
func (m *Manager) Bootstrap(ctx context.Context) State {
	m.setState(StateResolving, m.cachedIdentity())

	token, ok := m.store.Get(KeyAccessToken)
	if !ok || token == "" {
		m.setState(StateAnonymous, nil)
		return StateAnonymous
	}

	identity, err := m.client.Me(ctx)
	if err != nil {
		m.client.ClearCredentials()
		m.setState(StateAnonymous, nil)
		return StateAnonymous
	}

	if data, marshalErr := json.Marshal(identity); marshalErr == nil {
		m.store.Set(KeyIdentity, string(data))
	}
	m.setState(StateAuthenticated, identity)
	return StateAuthenticated
}

// Login authenticates and moves the session to authenticated.
func (m *Manager) Login(ctx context.Context, email, password string) (*Identity, error) {
	identity, err := m.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	m.setState(StateAuthenticated, identity)
	return identity, nil
}

// Logout revokes the credential and settles on anonymous.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.client.Logout(ctx)
	m.setState(StateAnonymous, nil)
	return err
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Identity returns the resolved identity, nil unless authenticated.
func (m *Manager) Identity() *Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity
}

// cachedIdentity returns the persisted identity snapshot, adopted
// provisionally while the credential is being confirmed.
func (m *Manager) cachedIdentity() *Identity {
	raw, ok := m.store.Get(KeyIdentity)
	if !ok {
		return nil
	}
	var identity Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return nil
	}
	return &identity
}

func (m *Manager) setState(state State, identity *Identity) {
	m.mu.Lock()
	m.state = state
	m.identity = identity
	m.mu.Unlock()
}
