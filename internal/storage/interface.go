package storage

import (
	"context"

	"github.com/Shu5555/jinro-app/internal/model"
)

// Storage defines the interface for data persistence.
//
// Distribution payloads are opaque encoded strings: the store never
// inspects them, it only moves them between the generating session and
// the revealing session.
type Storage interface {
	// Distribution payload operations
	SaveDistribution(ctx context.Context, id model.DistributionID, payload string) error
	GetDistribution(ctx context.Context, id model.DistributionID) (string, error)
	DeleteDistribution(ctx context.Context, id model.DistributionID) error

	// Voting session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error

	// Chat operations; room is a key from model.ChatRoomID
	AppendChatMessage(ctx context.Context, sessionID model.SessionID, room string, msg model.ChatMessage) error
	GetChatMessages(ctx context.Context, sessionID model.SessionID, room string) ([]model.ChatMessage, error)

	// Password word pool operations
	SaveWordPool(ctx context.Context, words []string) error
	GetWordPool(ctx context.Context) ([]string, error)
}
