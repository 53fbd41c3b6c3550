package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/no1453/woggle/internal/factory"
	"github.com/no1453/woggle/internal/model"
)

// Board layout used by most tests:
//
//	C  A  T  S
//	E  I  O  P
//	N  R  D  L
//	G  H  M  W
func testBoard() *model.Board {
	return model.NewBoard([16]string{
		"C", "A", "T", "S",
		"E", "I", "O", "P",
		"N", "R", "D", "L",
		"G", "H", "M", "W",
	})
}

func p(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}

type ControllerSuite struct {
	suite.Suite
	app *factory.TestApp
	ctx context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.Require().NoError(s.app.LoadTestDictionary())
	s.ctx = context.Background()
}

// newSession creates a session and pins its board to the known layout
func (s *ControllerSuite) newSession(id string) *model.Session {
	s.app.MockRandom.QueueString(id)
	session, err := s.app.GameController.NewSession(s.ctx)
	s.Require().NoError(err)

	session.Board = testBoard()
	s.Require().NoError(s.app.Storage.SaveSession(s.ctx, session))
	return session
}

func (s *ControllerSuite) TestNewSession() {
	s.app.MockRandom.QueueString("SESSIONABC12")
	session, err := s.app.GameController.NewSession(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.SessionID("SESSIONABC12"), session.ID)
	s.Len(session.Board.Faces(), 16)
	s.Equal(0, session.BoardRevision)
	s.Equal(0, session.Score)
	s.False(session.TimerRunning)
	s.Equal(model.DefaultTimeLimit, session.TimeLimit)

	stored, err := s.app.GameController.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(session.ID, stored.ID)
}

func (s *ControllerSuite) TestGetSessionMissing() {
	_, err := s.app.GameController.GetSession(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ControllerSuite) TestSubmitPath() {
	session := s.newSession("SUBMIT000001")

	result, err := s.app.GameController.SubmitPath(s.ctx, session.ID,
		model.Path{p(0, 0), p(0, 1), p(0, 2)})
	s.Require().NoError(err)

	s.Equal("CAT", result.Word)
	s.Equal(1, result.Score)

	stored, err := s.app.GameController.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(1, stored.Score)
	s.Require().Len(stored.FoundWords, 1)
	s.Equal("CAT", stored.FoundWords[0].Word)
}

func (s *ControllerSuite) TestSubmitDuplicateWord() {
	session := s.newSession("SUBMIT000002")
	catPath := model.Path{p(0, 0), p(0, 1), p(0, 2)}

	_, err := s.app.GameController.SubmitPath(s.ctx, session.ID, catPath)
	s.Require().NoError(err)

	_, err = s.app.GameController.SubmitPath(s.ctx, session.ID, catPath)
	s.ErrorIs(err, model.ErrWordAlreadyFound)

	stored, err := s.app.GameController.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(1, stored.Score, "duplicate must not score twice")
	s.Len(stored.FoundWords, 1)
}

func (s *ControllerSuite) TestSubmitRejectionLeavesSessionUntouched() {
	session := s.newSession("SUBMIT000003")

	_, err := s.app.GameController.SubmitPath(s.ctx, session.ID,
		model.Path{p(0, 0), p(0, 1)})
	s.ErrorIs(err, model.ErrPathTooShort)

	stored, err := s.app.GameController.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(0, stored.Score)
	s.Empty(stored.FoundWords)
}

func (s *ControllerSuite) TestScoreAccumulates() {
	session := s.newSession("SUBMIT000004")

	// CAT (3 tiles, 1 point) then CATS (4 tiles, 1 point)
	_, err := s.app.GameController.SubmitPath(s.ctx, session.ID,
		model.Path{p(0, 0), p(0, 1), p(0, 2)})
	s.Require().NoError(err)
	_, err = s.app.GameController.SubmitPath(s.ctx, session.ID,
		model.Path{p(0, 0), p(0, 1), p(0, 2), p(0, 3)})
	s.Require().NoError(err)

	stored, err := s.app.GameController.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(2, stored.Score)
}

func (s *ControllerSuite) TestReshuffleResetsRound() {
	session := s.newSession("SHUFFLE00001")

	_, err := s.app.GameController.SubmitPath(s.ctx, session.ID,
		model.Path{p(0, 0), p(0, 1), p(0, 2)})
	s.Require().NoError(err)
	_, err = s.app.GameController.StartTimer(s.ctx, session.ID)
	s.Require().NoError(err)

	reshuffled, err := s.app.GameController.Reshuffle(s.ctx, session.ID)
	s.Require().NoError(err)

	s.Equal(1, reshuffled.BoardRevision)
	s.Equal(0, reshuffled.Score)
	s.Empty(reshuffled.FoundWords)
	s.False(reshuffled.TimerRunning)
	s.Equal(time.Duration(0), reshuffled.Elapsed(s.app.MockClock.Now()))
}

func (s *ControllerSuite) TestSolutions() {
	session := s.newSession("SOLVE0000001")

	solutions, err := s.app.GameController.Solutions(s.ctx, session.ID)
	s.Require().NoError(err)

	s.Contains(solutions, "CAT")
	s.Contains(solutions, "CATS")
	s.Contains(solutions, "TOP")
}

func (s *ControllerSuite) TestSolutionsCachedUntilReshuffle() {
	session := s.newSession("SOLVE0000002")

	first, err := s.app.GameController.Solutions(s.ctx, session.ID)
	s.Require().NoError(err)
	s.NotEmpty(first)

	// Swap the stored board without bumping the revision; the cached
	// result must still be served
	session.Board = model.NewBoard([16]string{
		"Z", "Z", "Z", "Z",
		"Z", "Z", "Z", "Z",
		"Z", "Z", "Z", "Z",
		"Z", "Z", "Z", "Z",
	})
	s.Require().NoError(s.app.Storage.SaveSession(s.ctx, session))

	again, err := s.app.GameController.Solutions(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(first, again)

	// Reshuffle bumps the revision and orphans the cache
	_, err = s.app.GameController.Reshuffle(s.ctx, session.ID)
	s.Require().NoError(err)

	fresh, err := s.app.GameController.Solutions(s.ctx, session.ID)
	s.Require().NoError(err)
	s.NotEqual(first, fresh)
}

func (s *ControllerSuite) TestTimerLifecycle() {
	session := s.newSession("TIMER0000001")

	_, err := s.app.GameController.StartTimer(s.ctx, session.ID)
	s.Require().NoError(err)

	s.app.MockClock.Advance(30 * time.Second)
	paused, err := s.app.GameController.PauseTimer(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(30*time.Second, paused.Elapsed(s.app.MockClock.Now()))

	// Time passing while paused does not count
	s.app.MockClock.Advance(1 * time.Minute)
	stored, err := s.app.GameController.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(30*time.Second, stored.Elapsed(s.app.MockClock.Now()))

	// Resume accumulates on top of the banked time
	_, err = s.app.GameController.StartTimer(s.ctx, session.ID)
	s.Require().NoError(err)
	s.app.MockClock.Advance(10 * time.Second)
	stored, err = s.app.GameController.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(40*time.Second, stored.Elapsed(s.app.MockClock.Now()))

	reset, err := s.app.GameController.ResetTimer(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(time.Duration(0), reset.Elapsed(s.app.MockClock.Now()))
	s.Equal(model.DefaultTimeLimit, reset.Remaining(s.app.MockClock.Now()))
}

func (s *ControllerSuite) TestStartTimerIdempotentWhileRunning() {
	session := s.newSession("TIMER0000002")

	_, err := s.app.GameController.StartTimer(s.ctx, session.ID)
	s.Require().NoError(err)
	s.app.MockClock.Advance(20 * time.Second)

	// A second start must not restart the running stretch
	_, err = s.app.GameController.StartTimer(s.ctx, session.ID)
	s.Require().NoError(err)
	s.app.MockClock.Advance(5 * time.Second)

	stored, err := s.app.GameController.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(25*time.Second, stored.Elapsed(s.app.MockClock.Now()))
}

func (s *ControllerSuite) TestDeleteSession() {
	session := s.newSession("DELETE000001")

	_, err := s.app.GameController.Solutions(s.ctx, session.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.app.GameController.DeleteSession(s.ctx, session.ID))

	_, err = s.app.GameController.GetSession(s.ctx, session.ID)
	s.ErrorIs(err, model.ErrSessionNotFound)

	_, err = s.app.Storage.GetSolution(s.ctx, session.ID, 0)
	s.ErrorIs(err, model.ErrSolutionNotFound)
}
