package response

import (
	"time"

	"github.com/Shu5555/jinro-app/internal/model"
)

// Role represents a role in API responses
type Role struct {
	Name             string `json:"name"`
	Team             string `json:"team"`
	Category         string `json:"category,omitempty"`
	Ability          string `json:"ability,omitempty"`
	WinCondition     string `json:"win_condition,omitempty"`
	FortuneResult    string `json:"fortune_result,omitempty"`
	RelatedRole      string `json:"related_role,omitempty"`
	RelatedRoleCount int    `json:"related_role_count,omitempty"`
	Author           string `json:"author,omitempty"`
}

// RoleFromModel converts a model.Role to a response Role
func RoleFromModel(r model.Role) Role {
	return Role{
		Name:             r.Name,
		Team:             string(r.Team),
		Category:         r.Category,
		Ability:          r.Ability,
		WinCondition:     r.WinCondition,
		FortuneResult:    r.FortuneResult,
		RelatedRole:      r.RelatedRoleName,
		RelatedRoleCount: r.RelatedRoleCount,
		Author:           r.Author,
	}
}

// ConvertResponse is the response for survey conversion
type ConvertResponse struct {
	Roles []Role `json:"roles"`
}

// Assignment represents one revealed assignment
type Assignment struct {
	ParticipantName string `json:"participant_name"`
	Password        string `json:"password"`
	Role            Role   `json:"role"`
}

// AssignmentFromModel converts a model.Assignment
func AssignmentFromModel(a *model.Assignment) Assignment {
	return Assignment{
		ParticipantName: a.ParticipantName,
		Password:        a.Password,
		Role:            RoleFromModel(a.Role),
	}
}

// Distribution is the GM's view of a generation run: the storage ID,
// the opaque payload for URL sharing, and the password sheet. It never
// includes the role bindings themselves.
type Distribution struct {
	ID        string            `json:"id"`
	Payload   string            `json:"payload"`
	Passwords map[string]string `json:"passwords"`
	CreatedAt time.Time         `json:"created_at"`
}

// DistributionFromModel builds the GM view of a distribution
func DistributionFromModel(d *model.Distribution, payload string) Distribution {
	return Distribution{
		ID:        string(d.ID),
		Payload:   payload,
		Passwords: d.PasswordSheet(),
		CreatedAt: d.CreatedAt,
	}
}

// Payload is the response for fetching a stored payload
type Payload struct {
	ID      string `json:"id"`
	Payload string `json:"payload"`
}

// Session is the public view of a voting session; it exposes neither
// the votes nor the GM passphrase hash
type Session struct {
	ID           string    `json:"id"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SessionFromModel converts a model.Session to its public view
func SessionFromModel(s *model.Session) Session {
	return Session{
		ID:           string(s.ID),
		Participants: s.Participants,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// Tally is the GM's vote count view
type Tally struct {
	Votes map[string]int `json:"votes"`
}

// ChatMessage represents one chat message
type ChatMessage struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatMessageFromModel converts a model.ChatMessage
func ChatMessageFromModel(m model.ChatMessage) ChatMessage {
	return ChatMessage{
		From:      m.From,
		To:        m.To,
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

// ChatHistory is the response for a chat room's history
type ChatHistory struct {
	Room     string        `json:"room"`
	Messages []ChatMessage `json:"messages"`
}

// CoinToss is the response for a coin toss
type CoinToss struct {
	Result string `json:"result"`
}

// DrawResult is the response for drawing lots
type DrawResult struct {
	Winner string `json:"winner"`
}
