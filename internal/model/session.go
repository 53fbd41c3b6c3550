package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// DefaultTimeLimit is the classic round length
const DefaultTimeLimit = 180 * time.Second

// FoundWord is a word the player has successfully played this round
type FoundWord struct {
	Word  string `json:"word"`
	Tiles int    `json:"tiles"`
	Score int    `json:"score"`
}

// Session holds one player's game state: the current board, the words
// found so far, the running score, and the round timer.
type Session struct {
	ID    SessionID
	Board *Board

	// BoardRevision increments on every reshuffle. Cached solution
	// sets are keyed by it, so results for a discarded board are
	// never served.
	BoardRevision int

	FoundWords []FoundWord
	Score      int

	// Timer state. ElapsedBeforePause accumulates across pauses;
	// TimerStartedAt is only meaningful while TimerRunning.
	TimerRunning       bool
	TimerStartedAt     time.Time
	ElapsedBeforePause time.Duration
	TimeLimit          time.Duration

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasFound reports whether the word was already played this round
func (s *Session) HasFound(word string) bool {
	for _, fw := range s.FoundWords {
		if fw.Word == word {
			return true
		}
	}
	return false
}

// Elapsed returns total timer runtime as of now
func (s *Session) Elapsed(now time.Time) time.Duration {
	elapsed := s.ElapsedBeforePause
	if s.TimerRunning {
		elapsed += now.Sub(s.TimerStartedAt)
	}
	return elapsed
}

// Remaining returns the time left on the round clock, floored at zero
func (s *Session) Remaining(now time.Time) time.Duration {
	remaining := s.TimeLimit - s.Elapsed(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
