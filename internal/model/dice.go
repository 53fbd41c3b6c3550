package model

// Dice is the canonical 16-die multiset for the 4x4 grid. Each die has
// six faces; the multiset gives realistic English letter frequency. One
// face is the Qu combo tile.
var Dice = [BoardSize * BoardSize][6]string{
	{"A", "A", "C", "I", "O", "T"},
	{"A", "B", "I", "L", "T", "Y"},
	{"A", "B", "J", "M", "O", "QU"},
	{"A", "C", "D", "E", "M", "P"},
	{"A", "C", "E", "L", "R", "S"},
	{"A", "D", "E", "N", "V", "Z"},
	{"A", "H", "M", "O", "R", "S"},
	{"B", "I", "F", "O", "R", "X"},
	{"D", "E", "N", "O", "S", "W"},
	{"D", "K", "N", "O", "T", "U"},
	{"E", "E", "F", "H", "I", "Y"},
	{"E", "G", "I", "N", "T", "V"},
	{"E", "G", "K", "L", "U", "Y"},
	{"E", "H", "I", "N", "P", "S"},
	{"E", "L", "P", "S", "T", "U"},
	{"G", "I", "L", "R", "U", "W"},
}
