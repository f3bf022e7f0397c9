package rest

import "sync"

// Token is an authentication credential pair for one server.
type Token struct {
	AuthToken string `json:"authToken"`
	UserID    string `json:"userId"`
}

// TokenStore looks up tokens by server URL. The client reads from it on
// every request; it never mutates the store.
type TokenStore interface {
	// Get returns the token for serverURL, or false when none is stored.
	Get(serverURL string) (Token, bool)
}

// MemoryTokenStore is a mutex-guarded in-memory TokenStore.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]Token
}

// NewMemoryTokenStore creates an empty in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]Token)}
}

// Get returns the token stored for serverURL.
func (s *MemoryTokenStore) Get(serverURL string) (Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tok, ok := s.tokens[serverURL]
	return tok, ok
}

// Save stores a token for serverURL, replacing any previous one.
func (s *MemoryTokenStore) Save(serverURL string, token Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[serverURL] = token
}

// Clear removes the token stored for serverURL, if any.
func (s *MemoryTokenStore) Clear(serverURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, serverURL)
}
