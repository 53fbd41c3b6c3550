package model

// MinWordTiles is the minimum path length, in tiles, for a playable word
const MinWordTiles = 3

// Path is an ordered sequence of grid positions. A valid path has at
// least MinWordTiles positions, no repeats, and each consecutive pair
// 8-adjacent; the validator enforces those rules.
type Path []Position

// Contains reports whether the path already visits the given position
func (p Path) Contains(pos Position) bool {
	for _, visited := range p {
		if visited == pos {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the path
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// PlayResult is a successful validation: the flattened word, the number
// of tiles used, and the points it scores.
type PlayResult struct {
	Word  string `json:"word"`
	Tiles int    `json:"tiles"`
	Score int    `json:"score"`
}
