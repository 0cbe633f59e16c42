package memory

import (
	"context"
	"sync"

	"github.com/Shu5555/jinro-app/internal/model"
	"github.com/Shu5555/jinro-app/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	distributions map[model.DistributionID]string
	sessions      map[model.SessionID]*model.Session
	chats         map[chatKey][]model.ChatMessage
	wordPool      []string
}

type chatKey struct {
	sessionID model.SessionID
	room      string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		distributions: make(map[model.DistributionID]string),
		sessions:      make(map[model.SessionID]*model.Session),
		chats:         make(map[chatKey][]model.ChatMessage),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Distribution operations

func (s *Storage) SaveDistribution(ctx context.Context, id model.DistributionID, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.distributions[id] = payload
	return nil
}

func (s *Storage) GetDistribution(ctx context.Context, id model.DistributionID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.distributions[id]
	if !ok {
		return "", model.ErrDistributionNotFound
	}
	return payload, nil
}

func (s *Storage) DeleteDistribution(ctx context.Context, id model.DistributionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.distributions, id)
	return nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Chat operations

func (s *Storage) AppendChatMessage(ctx context.Context, sessionID model.SessionID, room string, msg model.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := chatKey{sessionID: sessionID, room: room}
	s.chats[key] = append(s.chats[key], msg)
	return nil
}

func (s *Storage) GetChatMessages(ctx context.Context, sessionID model.SessionID, room string) ([]model.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := s.chats[chatKey{sessionID: sessionID, room: room}]
	out := make([]model.ChatMessage, len(messages))
	copy(out, messages)
	return out, nil
}

// Word pool operations

func (s *Storage) SaveWordPool(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wordPool = make([]string, len(words))
	copy(s.wordPool, words)
	return nil
}

func (s *Storage) GetWordPool(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.wordPool == nil {
		return nil, model.ErrWordPoolNotLoaded
	}
	out := make([]string, len(s.wordPool))
	copy(out, s.wordPool)
	return out, nil
}
