package validator

import (
	"github.com/no1453/woggle/internal/model"
	"github.com/no1453/woggle/internal/services/dictionary"
)

// Service validates user-submitted tile paths against a board and the
// dictionary, and scores successful plays.
type Service struct {
	dictionary *dictionary.Service
}

// New creates a new validator Service
func New(dictionary *dictionary.Service) *Service {
	return &Service{
		dictionary: dictionary,
	}
}

// Validate checks a path in fixed order: minimum length, adjacency
// chain, tile uniqueness, then dictionary membership of the flattened
// word. Only the first failing check is reported. On success it returns
// the word, its tile count, and its score.
func (s *Service) Validate(board *model.Board, path model.Path) (*model.PlayResult, error) {
	if len(path) < model.MinWordTiles {
		return nil, model.ErrPathTooShort
	}

	for _, pos := range path {
		if !pos.InBounds() {
			return nil, model.ErrInvalidPosition
		}
	}

	for i := 1; i < len(path); i++ {
		if !path[i-1].Adjacent(path[i]) {
			return nil, model.ErrPathNotAdjacent
		}
	}

	seen := make(map[model.Position]bool, len(path))
	for _, pos := range path {
		if seen[pos] {
			return nil, model.ErrPathRepeatsTile
		}
		seen[pos] = true
	}

	word := board.Word(path)
	if !s.dictionary.Contains(word) {
		return nil, model.ErrWordNotInDictionary
	}

	return &model.PlayResult{
		Word:  word,
		Tiles: len(path),
		Score: Score(len(path)),
	}, nil
}

// Score is the classic step table over tile count: 3-4 tiles score 1,
// 5 scores 2, 6 scores 3, 7 scores 5, and 8 or more score 11. Tile
// count, not character count, so a Qu word is scored by its tiles.
func Score(tiles int) int {
	switch {
	case tiles < model.MinWordTiles:
		return 0
	case tiles <= 4:
		return 1
	case tiles == 5:
		return 2
	case tiles == 6:
		return 3
	case tiles == 7:
		return 5
	default:
		return 11
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	Validate(board *model.Board, path model.Path) (*model.PlayResult, error)
}

var _ ServiceInterface = (*Service)(nil)
