package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Dictionary load errors
	ErrDictionaryNotLoaded  = errors.New("dictionary not loaded")
	ErrDictionaryEmpty      = errors.New("dictionary contains no usable words")
	ErrDictionaryUnreadable = errors.New("dictionary source could not be read")

	// Path validation errors, reported one per attempt in this order
	ErrPathTooShort        = errors.New("path is shorter than three tiles")
	ErrPathNotAdjacent     = errors.New("path contains non-adjacent tiles")
	ErrPathRepeatsTile     = errors.New("path uses a tile more than once")
	ErrWordNotInDictionary = errors.New("word is not in the dictionary")

	// Gameplay errors
	ErrWordAlreadyFound = errors.New("word has already been found")
	ErrInvalidPosition  = errors.New("invalid board position")

	// Solution cache errors
	ErrSolutionNotFound = errors.New("no solution set for this board")
)
