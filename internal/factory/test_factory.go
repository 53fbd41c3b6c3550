package factory

import (
	"time"

	"github.com/no1453/woggle/internal/dependencies/mocks"
	"github.com/no1453/woggle/internal/storage/memory"
	"github.com/no1453/woggle/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 1, 19, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing. Words are
// chosen to exercise Qu handling, prefixes that extend (CAT/CATS), and
// every score band.
func (t *TestApp) LoadTestDictionary() error {
	return t.DictionaryService.LoadWords(TestWords())
}

// TestWords returns the shared test word list
func TestWords() []string {
	return []string{
		// 3-tile words
		"ace", "act", "ant", "ate", "cat", "dot", "eat", "ion", "net",
		"not", "oat", "pat", "pet", "pin", "quid", "rat", "sat", "set",
		"tan", "tap", "tea", "ten", "tin", "toe", "ton", "top",
		// 4-tile words
		"ants", "cats", "dote", "neat", "nets", "note", "pant", "pats",
		"pine", "quids", "rate", "rats", "sate", "tape", "taps", "teas",
		"tens", "tone", "tops",
		// longer words for the upper score bands
		"antes", "notes", "paste", "pastes", "pasted", "toasted",
		"notepads", "patented",
	}
}
