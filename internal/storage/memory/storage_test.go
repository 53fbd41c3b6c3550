package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/no1453/woggle/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) testSession(id model.SessionID) *model.Session {
	return &model.Session{
		ID: id,
		Board: model.NewBoard([16]string{
			"C", "A", "T", "S",
			"E", "I", "O", "P",
			"N", "R", "D", "L",
			"G", "H", "M", "W",
		}),
		TimeLimit: model.DefaultTimeLimit,
	}
}

func (s *StorageSuite) TestSessionRoundTrip() {
	session := s.testSession("ROUNDTRIP001")
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	got, err := s.storage.GetSession(s.ctx, "ROUNDTRIP001")
	s.Require().NoError(err)
	s.Equal(session.ID, got.ID)
	s.Equal(session.Board, got.Board)
}

func (s *StorageSuite) TestGetSessionMissing() {
	_, err := s.storage.GetSession(s.ctx, "MISSING")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	session := s.testSession("DELETE000001")
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))
	s.Require().NoError(s.storage.DeleteSession(s.ctx, session.ID))

	_, err := s.storage.GetSession(s.ctx, session.ID)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSessionIdempotent() {
	s.NoError(s.storage.DeleteSession(s.ctx, "NEVER-EXISTED"))
}

func (s *StorageSuite) TestSolutionsKeyedByRevision() {
	solutionsV0 := model.SolutionSet{
		"CAT": {{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	}
	solutionsV1 := model.SolutionSet{
		"DOG": {{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}},
	}

	s.Require().NoError(s.storage.SaveSolution(s.ctx, "SESS", 0, solutionsV0))
	s.Require().NoError(s.storage.SaveSolution(s.ctx, "SESS", 1, solutionsV1))

	got, err := s.storage.GetSolution(s.ctx, "SESS", 0)
	s.Require().NoError(err)
	s.Equal(solutionsV0, got)

	got, err = s.storage.GetSolution(s.ctx, "SESS", 1)
	s.Require().NoError(err)
	s.Equal(solutionsV1, got)

	_, err = s.storage.GetSolution(s.ctx, "SESS", 2)
	s.ErrorIs(err, model.ErrSolutionNotFound)
}

func (s *StorageSuite) TestDeleteSolutionsRemovesAllRevisions() {
	set := model.SolutionSet{"CAT": {{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}}
	s.Require().NoError(s.storage.SaveSolution(s.ctx, "SESS", 0, set))
	s.Require().NoError(s.storage.SaveSolution(s.ctx, "SESS", 1, set))
	s.Require().NoError(s.storage.SaveSolution(s.ctx, "OTHER", 0, set))

	s.Require().NoError(s.storage.DeleteSolutions(s.ctx, "SESS"))

	_, err := s.storage.GetSolution(s.ctx, "SESS", 0)
	s.ErrorIs(err, model.ErrSolutionNotFound)
	_, err = s.storage.GetSolution(s.ctx, "SESS", 1)
	s.ErrorIs(err, model.ErrSolutionNotFound)

	// Other sessions are untouched
	_, err = s.storage.GetSolution(s.ctx, "OTHER", 0)
	s.NoError(err)
}

func (s *StorageSuite) TestDictionaryWords() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)

	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, []string{"cat", "dog"}))

	words, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"cat", "dog"}, words)
}

func (s *StorageSuite) TestDictionaryWordsCopied() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, []string{"cat", "dog"}))

	words, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	words[0] = "mutated"

	again, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"cat", "dog"}, again)
}
