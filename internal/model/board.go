package model

// BoardSize is the grid dimension. Woggle is always played on 4x4.
const BoardSize = 4

// QuFace is the combined-tile face. It occupies one cell and counts as
// one tile, but contributes two letters to the word string.
const QuFace = "QU"

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// InBounds returns true if the position is on the grid
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Index returns the position's row-major index in [0, 16)
func (p Position) Index() int {
	return p.Row*BoardSize + p.Col
}

// Adjacent reports whether two positions touch under 8-way adjacency
// (including diagonals). A position is never adjacent to itself.
func (p Position) Adjacent(other Position) bool {
	if p == other {
		return false
	}
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// Tile is one cell of the board and its face value. Faces are single
// uppercase letters, except the Qu combo tile whose face is "QU".
type Tile struct {
	Pos  Position
	Face string
}

// Board is an immutable 4x4 grid of tiles. Generated once per game or
// reshuffle and read-only thereafter.
type Board struct {
	Tiles [BoardSize][BoardSize]Tile
}

// NewBoard builds a board from 16 faces in row-major order
func NewBoard(faces [BoardSize * BoardSize]string) *Board {
	b := &Board{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			pos := Position{Row: row, Col: col}
			b.Tiles[row][col] = Tile{Pos: pos, Face: faces[pos.Index()]}
		}
	}
	return b
}

// At returns the tile at the given position
func (b *Board) At(pos Position) Tile {
	return b.Tiles[pos.Row][pos.Col]
}

// Face returns the face value at the given position
func (b *Board) Face(pos Position) string {
	return b.Tiles[pos.Row][pos.Col].Face
}

// Word flattens a path's tile faces into a single letter string.
// The Qu tile contributes "QU", so tile count and string length can differ.
func (b *Board) Word(path Path) string {
	var word []byte
	for _, pos := range path {
		word = append(word, b.Face(pos)...)
	}
	return string(word)
}

// Faces returns all 16 faces in row-major order
func (b *Board) Faces() []string {
	faces := make([]string, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			faces = append(faces, b.Tiles[row][col].Face)
		}
	}
	return faces
}
