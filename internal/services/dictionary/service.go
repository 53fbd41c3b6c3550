package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/no1453/woggle/internal/model"
	"github.com/no1453/woggle/internal/storage"
)

// MaxWordTiles is the longest word a 16-cell board can hold
const MaxWordTiles = model.BoardSize * model.BoardSize

// Service provides word membership and prefix-existence queries over an
// immutable word list. Words are normalized on load: trimmed, filtered
// to alphabetic-only lines, uppercased, and kept only when their tile
// length (the Qu digraph counts as one tile) is at least three.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu      sync.RWMutex
	words   *trie
	skipped int
	loaded  bool
}

// New creates a new dictionary Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		words:   newTrie(),
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
// and saves the raw lines to storage for future loads
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrDictionaryUnreadable, err)
	}
	defer func() { _ = file.Close() }()

	return s.LoadFromReader(ctx, file)
}

// LoadFromReader loads dictionary words from a line-oriented stream.
// Lines that are not valid UTF-8 are skipped rather than aborting the
// load; the count of skipped lines is available via SkippedLines.
func (s *Service) LoadFromReader(ctx context.Context, r io.Reader) error {
	var words []string
	skipped := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if !utf8.Valid(line) {
			skipped++
			continue
		}
		word := strings.TrimSpace(string(line))
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %w", model.ErrDictionaryUnreadable, err)
	}

	// Save raw words to storage for future use
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	if err := s.loadWordsSkipped(words, skipped); err != nil {
		return err
	}

	s.logger.Info("dictionary loaded",
		slog.Int("words", s.WordCount()),
		slog.Int("skipped_lines", skipped),
	)
	return nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	return s.loadWordsSkipped(words, 0)
}

func (s *Service) loadWordsSkipped(words []string, skipped int) error {
	t := newTrie()
	for _, raw := range words {
		word, ok := Normalize(raw)
		if !ok {
			continue
		}
		t.insert(word)
	}
	if t.len() == 0 {
		return model.ErrDictionaryEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = t
	s.skipped = skipped
	s.loaded = true
	return nil
}

// Normalize prepares one raw line for the dictionary. It trims
// whitespace and uppercases; it reports false for lines containing
// non-alphabetic characters or whose tile length falls outside the
// playable range.
func Normalize(raw string) (string, bool) {
	word := strings.ToUpper(strings.TrimSpace(raw))
	if word == "" {
		return "", false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return "", false
		}
	}
	tiles := TileLength(word)
	if tiles < model.MinWordTiles || tiles > MaxWordTiles {
		return "", false
	}
	return word, true
}

// TileLength returns the number of board tiles the word occupies. A
// "QU" digraph is one tile, so "QUID" is three tiles despite its four
// characters.
func TileLength(word string) int {
	tiles := 0
	for i := 0; i < len(word); {
		if word[i] == 'Q' && i+1 < len(word) && word[i+1] == 'U' {
			i += 2
		} else {
			i++
		}
		tiles++
	}
	return tiles
}

// Contains checks exact membership of an uppercase letter string
func (s *Service) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return false
	}
	return s.words.contains(word)
}

// HasPrefix reports whether any dictionary word starts with the given
// character sequence. This is the solver's pruning query.
func (s *Service) HasPrefix(prefix string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return false
	}
	return s.words.hasPrefix(prefix)
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words.len()
}

// SkippedLines returns how many undecodable lines the last load
// dropped. Non-fatal diagnostic for the caller.
func (s *Service) SkippedLines() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.skipped
}

// Words returns the normalized word list in sorted order
func (s *Service) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words.words()
}

// Interface check
type ServiceInterface interface {
	Contains(word string) bool
	HasPrefix(prefix string) bool
	IsLoaded() bool
	WordCount() int
	SkippedLines() int
	Words() []string
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadFromReader(ctx context.Context, r io.Reader) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)
