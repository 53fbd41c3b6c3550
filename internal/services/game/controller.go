package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/no1453/woggle/internal/dependencies/clock"
	"github.com/no1453/woggle/internal/dependencies/random"
	"github.com/no1453/woggle/internal/model"
	"github.com/no1453/woggle/internal/services/board"
	"github.com/no1453/woggle/internal/services/solver"
	"github.com/no1453/woggle/internal/services/validator"
	"github.com/no1453/woggle/internal/storage"
)

const sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller manages game sessions: board lifecycle, word submission,
// the round timer, and cheat-mode solutions. All state lives in the
// session value; nothing is ambient.
type Controller struct {
	storage          storage.Storage
	boardService     *board.Service
	validatorService *validator.Service
	solverService    *solver.Service
	clock            clock.Clock
	random           random.Random
	logger           *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	validatorService *validator.Service,
	solverService *solver.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:          storage,
		boardService:     boardService,
		validatorService: validatorService,
		solverService:    solverService,
		clock:            clock,
		random:           random,
		logger:           logger,
	}
}

// NewSession starts a new game with a freshly generated board
func (c *Controller) NewSession(ctx context.Context) (*model.Session, error) {
	now := c.clock.Now()
	session := &model.Session{
		ID:        model.SessionID(c.random.String(12, sessionIDAlphabet)),
		Board:     c.boardService.Generate(),
		TimeLimit: model.DefaultTimeLimit,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
	)
	return session, nil
}

// GetSession retrieves a session by ID
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// DeleteSession removes a session and any cached solutions
func (c *Controller) DeleteSession(ctx context.Context, id model.SessionID) error {
	if err := c.storage.DeleteSolutions(ctx, id); err != nil {
		return err
	}
	return c.storage.DeleteSession(ctx, id)
}

// SubmitPath validates a user-entered tile path against the session's
// board, rejects words already found this round, and on success records
// the word and adds its score.
func (c *Controller) SubmitPath(ctx context.Context, id model.SessionID, path model.Path) (*model.PlayResult, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := c.validatorService.Validate(session.Board, path)
	if err != nil {
		return nil, err
	}

	if session.HasFound(result.Word) {
		return nil, model.ErrWordAlreadyFound
	}

	session.FoundWords = append(session.FoundWords, model.FoundWord{
		Word:  result.Word,
		Tiles: result.Tiles,
		Score: result.Score,
	})
	session.Score += result.Score
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("word played",
		slog.String("session_id", string(id)),
		slog.String("word", result.Word),
		slog.Int("score", result.Score),
	)
	return result, nil
}

// Reshuffle regenerates the board from scratch and resets found words,
// score, and timer. The board revision is bumped so any solution set
// computed for the old board is orphaned, never served.
func (c *Controller) Reshuffle(ctx context.Context, id model.SessionID) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Board = c.boardService.Generate()
	session.BoardRevision++
	session.FoundWords = nil
	session.Score = 0
	session.TimerRunning = false
	session.TimerStartedAt = time.Time{}
	session.ElapsedBeforePause = 0
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("board reshuffled",
		slog.String("session_id", string(id)),
		slog.Int("board_revision", session.BoardRevision),
	)
	return session, nil
}

// Solutions returns the complete solution set for the session's current
// board, for cheat mode. The solve runs lazily on first request and is
// cached per board revision; the result is fully materialized before it
// is returned, never streamed.
func (c *Controller) Solutions(ctx context.Context, id model.SessionID) (model.SolutionSet, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	cached, err := c.storage.GetSolution(ctx, id, session.BoardRevision)
	if err == nil {
		return cached, nil
	}

	solutions := c.solverService.Solve(session.Board)
	if err := c.storage.SaveSolution(ctx, id, session.BoardRevision, solutions); err != nil {
		return nil, err
	}

	c.logger.Info("solutions computed",
		slog.String("session_id", string(id)),
		slog.Int("board_revision", session.BoardRevision),
		slog.Int("words", len(solutions)),
	)
	return solutions, nil
}

// StartTimer starts or resumes the round timer
func (c *Controller) StartTimer(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.updateSession(ctx, id, func(session *model.Session, now time.Time) {
		if session.TimerRunning {
			return
		}
		session.TimerRunning = true
		session.TimerStartedAt = now
	})
}

// PauseTimer pauses the round timer, banking the elapsed time
func (c *Controller) PauseTimer(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.updateSession(ctx, id, func(session *model.Session, now time.Time) {
		if !session.TimerRunning {
			return
		}
		session.ElapsedBeforePause += now.Sub(session.TimerStartedAt)
		session.TimerRunning = false
		session.TimerStartedAt = time.Time{}
	})
}

// ResetTimer stops the timer and clears all elapsed time
func (c *Controller) ResetTimer(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.updateSession(ctx, id, func(session *model.Session, now time.Time) {
		session.TimerRunning = false
		session.TimerStartedAt = time.Time{}
		session.ElapsedBeforePause = 0
	})
}

func (c *Controller) updateSession(ctx context.Context, id model.SessionID, update func(*model.Session, time.Time)) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	update(session, now)
	session.UpdatedAt = now

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
