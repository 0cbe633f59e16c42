package lottery

import (
	"log/slog"
	"strings"

	"github.com/Shu5555/jinro-app/internal/dependencies/random"
	"github.com/Shu5555/jinro-app/internal/model"
)

// Coin faces
const (
	Heads = "heads"
	Tails = "tails"
)

// Service provides the small table utilities: a coin toss and a
// draw-lots picker
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new lottery service
func New(random random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: random,
		logger: logger,
	}
}

// CoinToss returns "heads" or "tails" with equal probability
func (s *Service) CoinToss() string {
	if s.random.Intn(2) == 0 {
		return Heads
	}
	return Tails
}

// Draw picks one winner uniformly from the candidate list. Blank
// entries are ignored.
func (s *Service) Draw(candidates []string) (string, error) {
	var cleaned []string
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c != "" {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		return "", model.ErrNoCandidates
	}
	return cleaned[s.random.Intn(len(cleaned))], nil
}
