package model

import "sort"

// SolutionSet maps every word findable on a board to one witness path.
// Produced fresh by the solver for a board/dictionary pair; a reshuffle
// invalidates it entirely.
type SolutionSet map[string]Path

// Words returns the discovered words in sorted order
func (s SolutionSet) Words() []string {
	words := make([]string, 0, len(s))
	for word := range s {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// TotalScore sums the score of every word in the set, using the given
// tile-count scoring function
func (s SolutionSet) TotalScore(score func(tiles int) int) int {
	total := 0
	for _, path := range s {
		total += score(len(path))
	}
	return total
}
