package solver

import (
	"log/slog"

	"github.com/no1453/woggle/internal/model"
	"github.com/no1453/woggle/internal/services/dictionary"
)

// neighbourOffsets is the 8-way adjacency stencil, in row-major order.
// The order fixes the witness-path tie-break: the first path found with
// row-major start cells and this neighbour order wins.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Service finds every word reachable on a board. It is stateless: each
// Solve is a pure function of the board and dictionary.
type Service struct {
	dictionary *dictionary.Service
	logger     *slog.Logger
}

// New creates a new solver Service
func New(dictionary *dictionary.Service, logger *slog.Logger) *Service {
	return &Service{
		dictionary: dictionary,
		logger:     logger,
	}
}

// Solve exhaustively searches the board with a depth-first traversal of
// simple paths, pruning any branch whose accumulated letters are not a
// prefix of some dictionary word. It returns every distinct valid word
// with one witness path each. The word set is deterministic for a fixed
// board and dictionary.
func (s *Service) Solve(board *model.Board) model.SolutionSet {
	solutions := make(model.SolutionSet)
	search := &boardSearch{
		board:     board,
		dict:      s.dictionary,
		solutions: solutions,
		path:      make(model.Path, 0, model.BoardSize*model.BoardSize),
		word:      make([]byte, 0, 2*model.BoardSize*model.BoardSize),
	}

	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			search.visit(model.Position{Row: row, Col: col})
		}
	}

	s.logger.Debug("board solved", slog.Int("words", len(solutions)))
	return solutions
}

// boardSearch carries the traversal state for one Solve call. The
// visited mask and path/word buffers are reused across the whole
// search; visit marks on descent and unmarks on backtrack.
type boardSearch struct {
	board     *model.Board
	dict      *dictionary.Service
	solutions model.SolutionSet
	visited   [model.BoardSize * model.BoardSize]bool
	path      model.Path
	word      []byte
}

func (bs *boardSearch) visit(pos model.Position) {
	face := bs.board.Face(pos)

	bs.visited[pos.Index()] = true
	bs.path = append(bs.path, pos)
	bs.word = append(bs.word, face...)

	word := string(bs.word)
	if bs.dict.HasPrefix(word) {
		if len(bs.path) >= model.MinWordTiles && bs.dict.Contains(word) {
			// Keep only the first witness path per word
			if _, found := bs.solutions[word]; !found {
				bs.solutions[word] = bs.path.Clone()
			}
		}

		// Continue past exact matches: a word may extend to a longer one
		for _, off := range neighbourOffsets {
			next := model.Position{Row: pos.Row + off[0], Col: pos.Col + off[1]}
			if next.InBounds() && !bs.visited[next.Index()] {
				bs.visit(next)
			}
		}
	}

	bs.word = bs.word[:len(bs.word)-len(face)]
	bs.path = bs.path[:len(bs.path)-1]
	bs.visited[pos.Index()] = false
}

// Interface for dependency injection
type ServiceInterface interface {
	Solve(board *model.Board) model.SolutionSet
}

var _ ServiceInterface = (*Service)(nil)
