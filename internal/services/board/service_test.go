package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/no1453/woggle/internal/dependencies/random"
	"github.com/no1453/woggle/internal/model"
	"github.com/no1453/woggle/internal/testutil"
)

func TestGenerateFillsEveryCell(t *testing.T) {
	service := New(random.NewSeeded(1), testutil.NopLogger())
	board := service.Generate()

	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			face := board.Face(model.Position{Row: row, Col: col})
			assert.NotEmpty(t, face, "cell (%d,%d)", row, col)
		}
	}
}

func TestGenerateDrawsFacesFromDice(t *testing.T) {
	dieFaces := make(map[string]bool)
	for _, die := range model.Dice {
		for _, f := range die {
			dieFaces[f] = true
		}
	}

	service := New(random.NewSeeded(7), testutil.NopLogger())
	for i := 0; i < 20; i++ {
		board := service.Generate()
		for _, face := range board.Faces() {
			require.True(t, dieFaces[face], "face %q is not on any die", face)
		}
	}
}

func TestGenerateAtMostOneQu(t *testing.T) {
	service := New(random.NewSeeded(3), testutil.NopLogger())
	for i := 0; i < 50; i++ {
		board := service.Generate()
		qu := 0
		for _, face := range board.Faces() {
			if face == model.QuFace {
				qu++
			}
		}
		assert.LessOrEqual(t, qu, 1, "only one die carries the Qu face")
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	first := New(random.NewSeeded(42), testutil.NopLogger()).Generate()
	second := New(random.NewSeeded(42), testutil.NopLogger()).Generate()

	assert.Equal(t, first.Faces(), second.Faces())
}

func TestGenerateVariesAcrossSeeds(t *testing.T) {
	first := New(random.NewSeeded(1), testutil.NopLogger()).Generate()
	second := New(random.NewSeeded(2), testutil.NopLogger()).Generate()

	assert.NotEqual(t, first.Faces(), second.Faces())
}
