package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/no1453/woggle/internal/model"
	"github.com/no1453/woggle/internal/services/dictionary"
	"github.com/no1453/woggle/internal/storage/memory"
	"github.com/no1453/woggle/internal/testutil"
)

// Board layout:
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

type ServiceSuite struct {
	suite.Suite
	board   *model.Board
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	dict := dictionary.New(memory.New(), testutil.NopLogger())
	s.Require().NoError(dict.LoadWords([]string{
		"cat", "cats", "rid", "quid",
	}))
	s.board = testBoard()
	s.service = New(dict)
}

func (s *ServiceSuite) TestValidPlay() {
	result, err := s.service.Validate(s.board, model.Path{p(0, 0), p(0, 1), p(0, 2)})
	s.Require().NoError(err)

	s.Equal("CAT", result.Word)
	s.Equal(3, result.Tiles)
	s.Equal(1, result.Score)
}

func (s *ServiceSuite) TestTooShort() {
	_, err := s.service.Validate(s.board, model.Path{p(0, 0), p(0, 1)})
	s.ErrorIs(err, model.ErrPathTooShort)
}

func (s *ServiceSuite) TestOutOfBounds() {
	_, err := s.service.Validate(s.board, model.Path{p(0, 0), p(0, 1), p(0, 4)})
	s.ErrorIs(err, model.ErrInvalidPosition)
}

func (s *ServiceSuite) TestNotAdjacent() {
	// (0,0) to (0,2) skips a column
	_, err := s.service.Validate(s.board, model.Path{p(0, 0), p(0, 2), p(0, 1)})
	s.ErrorIs(err, model.ErrPathNotAdjacent)
}

func (s *ServiceSuite) TestRepeatedTile() {
	_, err := s.service.Validate(s.board, model.Path{p(0, 0), p(0, 1), p(0, 0)})
	s.ErrorIs(err, model.ErrPathRepeatsTile)
}

func (s *ServiceSuite) TestNotAWord() {
	// "CAI" is adjacent and repeat-free but not in the dictionary
	_, err := s.service.Validate(s.board, model.Path{p(0, 0), p(0, 1), p(1, 1)})
	s.ErrorIs(err, model.ErrWordNotInDictionary)
}

func (s *ServiceSuite) TestLengthCheckedBeforeBounds() {
	// A one-tile path that is also out of bounds reports the length error
	_, err := s.service.Validate(s.board, model.Path{p(9, 9)})
	s.ErrorIs(err, model.ErrPathTooShort)
}

func (s *ServiceSuite) TestAdjacencyCheckedBeforeUniqueness() {
	// Both flaws present: the jump from (0,0) to (2,2) is reported, not
	// the later repeat of (0,0)
	_, err := s.service.Validate(s.board, model.Path{p(0, 0), p(2, 2), p(1, 1), p(0, 0)})
	s.ErrorIs(err, model.ErrPathNotAdjacent)
}

func (s *ServiceSuite) TestQuTileValidates() {
	board := model.NewBoard([16]string{
		"QU", "I", "T", "S",
		"E", "D", "O", "P",
		"N", "R", "A", "L",
		"G", "H", "M", "W",
	})

	result, err := s.service.Validate(board, model.Path{p(0, 0), p(0, 1), p(1, 1)})
	s.Require().NoError(err)

	s.Equal("QUID", result.Word)
	s.Equal(3, result.Tiles)
	s.Equal(1, result.Score, "three tiles score 1 even though the word has four letters")
}

func (s *ServiceSuite) TestDiagonalStep() {
	// R(2,1) up to I(1,1), then diagonally down to D(2,2)
	result, err := s.service.Validate(s.board, model.Path{p(2, 1), p(1, 1), p(2, 2)})
	s.Require().NoError(err)
	s.Equal("RID", result.Word)
	s.Equal(1, result.Score)
}

func TestScore(t *testing.T) {
	cases := map[int]int{
		0:  0,
		2:  0,
		3:  1,
		4:  1,
		5:  2,
		6:  3,
		7:  5,
		8:  11,
		9:  11,
		16: 11,
	}
	for tiles, want := range cases {
		if got := Score(tiles); got != want {
			t.Errorf("Score(%d) = %d, want %d", tiles, got, want)
		}
	}
}
