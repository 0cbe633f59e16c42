package factory

import (
	"time"

	"github.com/Shu5555/jinro-app/internal/dependencies/mocks"
	"github.com/Shu5555/jinro-app/internal/storage/memory"
	"github.com/Shu5555/jinro-app/internal/testutil"
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
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWords loads a small password pool for testing
func (t *TestApp) LoadTestWords() {
	t.WordsService.LoadWords([]string{
		"apple", "orange", "banana", "strawberry", "grape", "cherry",
		"peach", "watermelon", "melon", "lemon", "pineapple", "pear",
	})
}
