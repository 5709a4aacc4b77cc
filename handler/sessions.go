package handler

import (
	"sync"

	"ResumeBot/model"
)

// Session is the in-flight conversation of one user.
type Session struct {
	State  model.ConversationState
	Record model.Record
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Sessions keeps one conversation per user. Messages of the same user are
// serialized through WithLock; different users never wait on each other.
type Sessions struct {
	mu    sync.Mutex
	locks map[int64]*lockEntry
	data  map[int64]Session
}

func NewSessions() *Sessions {
	return &Sessions{
		locks: make(map[int64]*lockEntry),
		data:  make(map[int64]Session),
	}
}

func (s *Sessions) acquire(userID int64) *lockEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.locks[userID]
	if !ok {
		entry = &lockEntry{}
		s.locks[userID] = entry
	}
	entry.refs++
	return entry
}

func (s *Sessions) release(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.locks[userID]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(s.locks, userID)
	}
}

// WithLock runs fn while holding the lock of userID.
func (s *Sessions) WithLock(userID int64, fn func()) {
	entry := s.acquire(userID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		s.release(userID)
	}()
	fn()
}

func (s *Sessions) Get(userID int64) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.data[userID]
	return sess, ok
}

func (s *Sessions) Put(userID int64, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = sess
}

// Delete discards the conversation and reports whether there was one.
func (s *Sessions) Delete(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[userID]
	delete(s.data, userID)
	return ok
}

// Len is the number of open conversations.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

func (s *Sessions) lockCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}
