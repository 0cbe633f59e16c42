package words

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/Shu5555/jinro-app/internal/model"
	"github.com/Shu5555/jinro-app/internal/storage"
)

// defaultWords is the built-in password vocabulary: simple everyday
// words that are easy to say out loud at a table.
var defaultWords = []string{
	"apple", "orange", "banana", "strawberry", "grape", "cherry", "peach", "watermelon",
	"melon", "lemon", "pineapple", "pear", "persimmon", "kiwi", "loquat", "apricot",
	"dog", "cat", "rabbit", "panda", "giraffe", "elephant", "lion", "tiger",
	"monkey", "sheep", "horse", "deer", "bear", "squirrel", "hamster", "penguin",
	"spring", "summer", "autumn", "winter", "sky", "cloud", "sun", "moon",
	"star", "wind", "rain", "snow", "mountain", "river", "sea", "forest",
}

// Service holds the password word pool that assignment runs draw from.
// Words are unique within the pool; pool size bounds the number of
// participants one run can serve.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  []string
	loaded bool
}

// New creates a new word pool service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// LoadFromStorage loads the word pool from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetWordPool(ctx)
	if err != nil {
		return err
	}
	s.loadWords(words)
	return nil
}

// LoadFromFile loads the word pool from a file (one word per line) and
// saves it to storage for future use
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := s.storage.SaveWordPool(ctx, words); err != nil {
		return err
	}

	s.loadWords(words)
	return nil
}

// LoadDefault loads the built-in vocabulary
func (s *Service) LoadDefault() {
	s.loadWords(defaultWords)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) {
	s.loadWords(words)
}

func (s *Service) loadWords(words []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(words))
	s.words = s.words[:0]
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		s.words = append(s.words, word)
	}
	s.loaded = true

	if s.logger != nil {
		s.logger.Info("word pool loaded", slog.Int("words", len(s.words)))
	}
}

// Words returns a copy of the pool
func (s *Service) Words() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, model.ErrWordPoolNotLoaded
	}

	out := make([]string, len(s.words))
	copy(out, s.words)
	return out, nil
}

// Count returns the number of words in the pool
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// IsLoaded returns whether a pool has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
