package storage

import (
	"context"

	"github.com/no1453/woggle/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error

	// Solution set operations. Solutions are keyed by session and
	// board revision so a reshuffle naturally orphans stale results.
	SaveSolution(ctx context.Context, id model.SessionID, revision int, solution model.SolutionSet) error
	GetSolution(ctx context.Context, id model.SessionID, revision int) (model.SolutionSet, error)
	DeleteSolutions(ctx context.Context, id model.SessionID) error

	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}
