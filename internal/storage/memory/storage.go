package memory

import (
	"context"
	"sync"

	"github.com/no1453/woggle/internal/model"
	"github.com/no1453/woggle/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions        map[model.SessionID]*model.Session
	solutions       map[solutionKey]model.SolutionSet
	dictionaryWords []string
}

type solutionKey struct {
	sessionID model.SessionID
	revision  int
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions:  make(map[model.SessionID]*model.Session),
		solutions: make(map[solutionKey]model.SolutionSet),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

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

// Solution set operations

func (s *Storage) SaveSolution(ctx context.Context, id model.SessionID, revision int, solution model.SolutionSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.solutions[solutionKey{sessionID: id, revision: revision}] = solution
	return nil
}

func (s *Storage) GetSolution(ctx context.Context, id model.SessionID, revision int) (model.SolutionSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	solution, ok := s.solutions[solutionKey{sessionID: id, revision: revision}]
	if !ok {
		return nil, model.ErrSolutionNotFound
	}
	return solution, nil
}

func (s *Storage) DeleteSolutions(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.solutions {
		if key.sessionID == id {
			delete(s.solutions, key)
		}
	}
	return nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dictionaryWords == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	result := make([]string, len(s.dictionaryWords))
	copy(result, s.dictionaryWords)
	return result, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaryWords = make([]string, len(words))
	copy(s.dictionaryWords, words)
	return nil
}
