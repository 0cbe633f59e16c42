package reveal

import (
	"context"
	"log/slog"

	"github.com/Shu5555/jinro-app/internal/model"
	"github.com/Shu5555/jinro-app/internal/services/codec"
	"github.com/Shu5555/jinro-app/internal/storage"
)

// Service resolves a player's password to their own assignment without
// exposing anyone else's
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new reveal service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// RevealByID fetches a stored distribution and looks up the assignment
// for the given password. A missing distribution, an undecodable
// payload, and a wrong password are all distinct errors.
func (s *Service) RevealByID(ctx context.Context, id model.DistributionID, password string) (*model.Assignment, error) {
	payload, err := s.storage.GetDistribution(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.RevealPayload(payload, password)
}

// RevealPayload decodes a payload directly (e.g. carried in a URL
// fragment) and looks up the assignment for the given password
func (s *Service) RevealPayload(payload, password string) (*model.Assignment, error) {
	assignments, err := codec.Decode(payload)
	if err != nil {
		return nil, err
	}

	assignment, ok := model.FindByPassword(assignments, password)
	if !ok {
		return nil, model.ErrWrongPassword
	}
	return assignment, nil
}
