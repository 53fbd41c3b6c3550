package response

import (
	"time"

	"github.com/no1453/woggle/internal/model"
)

// Board represents a board in API responses: 4x4 tile faces, with the
// Qu tile rendered as "QU"
type Board struct {
	Faces [][]string `json:"faces"`
}

// BoardFromModel converts a model.Board to a response Board
func BoardFromModel(b *model.Board) Board {
	faces := make([][]string, model.BoardSize)
	for row := 0; row < model.BoardSize; row++ {
		faces[row] = make([]string, model.BoardSize)
		for col := 0; col < model.BoardSize; col++ {
			faces[row][col] = b.Tiles[row][col].Face
		}
	}
	return Board{Faces: faces}
}

// FoundWord represents one played word
type FoundWord struct {
	Word  string `json:"word"`
	Tiles int    `json:"tiles"`
	Score int    `json:"score"`
}

// Timer represents the round timer state
type Timer struct {
	Running          bool `json:"running"`
	ElapsedSeconds   int  `json:"elapsed_seconds"`
	RemainingSeconds int  `json:"remaining_seconds"`
	LimitSeconds     int  `json:"limit_seconds"`
}

// Session represents a game session in API responses
type Session struct {
	ID            string      `json:"id"`
	Board         Board       `json:"board"`
	BoardRevision int         `json:"board_revision"`
	FoundWords    []FoundWord `json:"found_words"`
	Score         int         `json:"score"`
	Timer         Timer       `json:"timer"`
	CreatedAt     time.Time   `json:"created_at"`
}

// SessionFromModel converts a model.Session, evaluating the timer at
// the given instant
func SessionFromModel(s *model.Session, now time.Time) Session {
	found := make([]FoundWord, len(s.FoundWords))
	for i, fw := range s.FoundWords {
		found[i] = FoundWord{Word: fw.Word, Tiles: fw.Tiles, Score: fw.Score}
	}

	return Session{
		ID:            string(s.ID),
		Board:         BoardFromModel(s.Board),
		BoardRevision: s.BoardRevision,
		FoundWords:    found,
		Score:         s.Score,
		Timer: Timer{
			Running:          s.TimerRunning,
			ElapsedSeconds:   int(s.Elapsed(now).Seconds()),
			RemainingSeconds: int(s.Remaining(now).Seconds()),
			LimitSeconds:     int(s.TimeLimit.Seconds()),
		},
		CreatedAt: s.CreatedAt,
	}
}

// PlayResult is the response for a successful word submission
type PlayResult struct {
	Word       string `json:"word"`
	Tiles      int    `json:"tiles"`
	Score      int    `json:"score"`
	TotalScore int    `json:"total_score"`
}

// Cell is one step of a witness path
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Solution is one cheat-mode entry: a discoverable word and a witness
// path that spells it
type Solution struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
	Path  []Cell `json:"path"`
}

// Solutions is the cheat-mode response: every discoverable word for the
// current board, sorted, with the total available points
type Solutions struct {
	BoardRevision  int        `json:"board_revision"`
	Words          []Solution `json:"words"`
	TotalWords     int        `json:"total_words"`
	AvailableScore int        `json:"available_score"`
}

// SolutionsFromModel converts a solution set, scoring each word with
// the given tile-count scoring function
func SolutionsFromModel(set model.SolutionSet, revision int, score func(tiles int) int) Solutions {
	words := make([]Solution, 0, len(set))
	total := 0
	for _, word := range set.Words() {
		path := set[word]
		cells := make([]Cell, len(path))
		for i, pos := range path {
			cells[i] = Cell{Row: pos.Row, Col: pos.Col}
		}
		s := score(len(path))
		total += s
		words = append(words, Solution{Word: word, Score: s, Path: cells})
	}

	return Solutions{
		BoardRevision:  revision,
		Words:          words,
		TotalWords:     len(words),
		AvailableScore: total,
	}
}
