package board

import (
	"log/slog"

	"github.com/no1453/woggle/internal/dependencies/random"
	"github.com/no1453/woggle/internal/model"
)

// Service generates boards using the classic weighted-dice policy: the
// 16 dice are assigned to cells by a uniform random permutation, then
// one face is drawn uniformly from each die.
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new board Service
func New(random random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: random,
		logger: logger,
	}
}

// Generate produces a fresh board. A reshuffle is a new Generate call;
// the previous board is discarded wholesale.
func (s *Service) Generate() *model.Board {
	// Permute die-to-cell assignment (Fisher-Yates)
	order := make([]int, len(model.Dice))
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	var faces [model.BoardSize * model.BoardSize]string
	for cell, die := range order {
		faces[cell] = model.Dice[die][s.random.Intn(6)]
	}

	board := model.NewBoard(faces)
	s.logger.Debug("board generated", slog.Any("faces", board.Faces()))
	return board
}

// Interface for dependency injection
type ServiceInterface interface {
	Generate() *model.Board
}

var _ ServiceInterface = (*Service)(nil)
