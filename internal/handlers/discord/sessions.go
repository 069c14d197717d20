package discord

import (
	"sync"

	"github.com/KirkDiggler/dnd-levelup/internal/services/levelup"
)

// activeSession ties a level-up session to the character it was started for
type activeSession struct {
	CharacterID string
	Session     *levelup.Session
}

// sessionStore keeps one in-flight level-up per user. Sessions live only
// as long as the process; an interrupted level-up is simply restarted.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*activeSession
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*activeSession),
	}
}

func (s *sessionStore) Get(userID string) (*activeSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

func (s *sessionStore) Put(userID string, sess *activeSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
}

func (s *sessionStore) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
