package distribution

import (
	"context"
	"log/slog"

	"github.com/Shu5555/jinro-app/internal/catalog"
	"github.com/Shu5555/jinro-app/internal/dependencies/clock"
	"github.com/Shu5555/jinro-app/internal/dependencies/random"
	"github.com/Shu5555/jinro-app/internal/model"
	"github.com/Shu5555/jinro-app/internal/services/assign"
	"github.com/Shu5555/jinro-app/internal/services/codec"
	"github.com/Shu5555/jinro-app/internal/services/words"
	"github.com/Shu5555/jinro-app/internal/storage"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Service runs assignment generation end to end: draw assignments,
// encode them, and persist the payload under a fresh distribution ID so
// players can reveal their roles from another device.
type Service struct {
	storage storage.Storage
	engine  *assign.Engine
	words   *words.Service
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new distribution service
func New(
	storage storage.Storage,
	engine *assign.Engine,
	words *words.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage: storage,
		engine:  engine,
		words:   words,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Result is one stored generation run
type Result struct {
	Distribution *model.Distribution
	Payload      string
}

// Generate produces a new assignment set and stores its encoded
// payload. Each call is a fresh run; previously issued passwords for
// the same game are simply superseded.
func (s *Service) Generate(ctx context.Context, cat *catalog.Catalog, req assign.Request) (*Result, error) {
	pool, err := s.words.Words()
	if err != nil {
		return nil, err
	}

	assignments, err := s.engine.Assign(cat, req, pool)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Encode(assignments)
	if err != nil {
		return nil, err
	}

	dist := &model.Distribution{
		ID:          model.DistributionID(s.random.String(12, idAlphabet)),
		Assignments: assignments,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.storage.SaveDistribution(ctx, dist.ID, payload); err != nil {
		s.logger.Error("failed to save distribution",
			slog.String("distribution_id", string(dist.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("distribution created",
		slog.String("distribution_id", string(dist.ID)),
		slog.Int("participants", len(assignments)),
	)

	return &Result{Distribution: dist, Payload: payload}, nil
}

// GetPayload returns the stored payload for a distribution
func (s *Service) GetPayload(ctx context.Context, id model.DistributionID) (string, error) {
	return s.storage.GetDistribution(ctx, id)
}

// Delete removes a stored distribution
func (s *Service) Delete(ctx context.Context, id model.DistributionID) error {
	return s.storage.DeleteDistribution(ctx, id)
}
