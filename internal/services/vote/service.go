package vote

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Shu5555/jinro-app/internal/dependencies/clock"
	"github.com/Shu5555/jinro-app/internal/dependencies/random"
	"github.com/Shu5555/jinro-app/internal/model"
	"github.com/Shu5555/jinro-app/internal/storage"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Service manages voting sessions: one vote per participant with
// overwrite-on-revote, a GM-only tally, and pairwise GM<->player chat
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new vote service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// CreateSession starts a voting session for the given participants.
// The GM is implicit in every session and must not appear in the list.
// The passphrase gates the tally and is stored only as a bcrypt hash.
func (s *Service) CreateSession(ctx context.Context, participants []string, gmPassphrase string) (*model.Session, error) {
	var cleaned []string
	for _, p := range participants {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p == model.GMName {
			return nil, fmt.Errorf("participant name %q is reserved", model.GMName)
		}
		cleaned = append(cleaned, p)
	}
	if len(cleaned) == 0 {
		return nil, model.ErrNoParticipants
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(gmPassphrase), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	session := &model.Session{
		ID:           model.SessionID(s.random.String(8, idAlphabet)),
		Participants: cleaned,
		GMPassHash:   string(hash),
		Votes:        make(map[string]string),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.Int("participants", len(cleaned)),
	)

	return session, nil
}

// GetSession retrieves a session by ID
func (s *Service) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return s.storage.GetSession(ctx, id)
}

// CastVote records voter's vote for target, overwriting any earlier
// vote by the same voter. The GM neither votes nor receives votes.
func (s *Service) CastVote(ctx context.Context, id model.SessionID, voter, target string) error {
	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return err
	}

	if voter == model.GMName || !session.HasParticipant(voter) {
		return model.ErrUnknownVoter
	}
	if target == model.GMName {
		return model.ErrTargetIsGM
	}
	if !session.HasParticipant(target) {
		return model.ErrUnknownTarget
	}

	session.Votes[voter] = target
	session.UpdatedAt = s.clock.Now()

	return s.storage.SaveSession(ctx, session)
}

// Tally counts votes per target. Only the GM may read it.
func (s *Service) Tally(ctx context.Context, id model.SessionID, gmPassphrase string) (map[string]int, error) {
	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := verifyGM(session, gmPassphrase); err != nil {
		return nil, err
	}

	return session.Tally(), nil
}

// PostMessage appends a message to the chat room between the GM and one
// player. Exactly one end of every room is the GM; players cannot chat
// with each other.
func (s *Service) PostMessage(ctx context.Context, id model.SessionID, from, player, text string) (*model.ChatMessage, error) {
	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if player == model.GMName || !session.HasParticipant(player) {
		return nil, model.ErrUnknownChatRoom
	}
	if from != model.GMName && from != player {
		return nil, model.ErrUnknownChatRoom
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("message text is empty")
	}

	to := model.GMName
	if from == model.GMName {
		to = player
	}

	msg := model.ChatMessage{
		From:      from,
		To:        to,
		Text:      text,
		Timestamp: s.clock.Now(),
	}

	room := model.ChatRoomID(model.GMName, player)
	if err := s.storage.AppendChatMessage(ctx, id, room, msg); err != nil {
		return nil, err
	}

	return &msg, nil
}

// Messages returns the chat history between the GM and one player, in
// append order
func (s *Service) Messages(ctx context.Context, id model.SessionID, player string) ([]model.ChatMessage, error) {
	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if player == model.GMName || !session.HasParticipant(player) {
		return nil, model.ErrUnknownChatRoom
	}

	return s.storage.GetChatMessages(ctx, id, model.ChatRoomID(model.GMName, player))
}

func verifyGM(session *model.Session, passphrase string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(session.GMPassHash), []byte(passphrase)); err != nil {
		return model.ErrNotGM
	}
	return nil
}
