package model

import (
	"sort"
	"strings"
	"time"
)

// SessionID uniquely identifies a voting session
type SessionID string

// GMName is the reserved participant name for the game master.
// The GM moderates chat and reads the tally but never votes and can
// never be a vote target.
const GMName = "GM"

// Session is one voting/chat session for a game in progress
type Session struct {
	ID           SessionID
	Participants []string
	GMPassHash   string

	// Votes maps voter name -> target name; re-voting overwrites
	Votes map[string]string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasParticipant reports whether name is a participant in this session
func (s *Session) HasParticipant(name string) bool {
	for _, p := range s.Participants {
		if p == name {
			return true
		}
	}
	return false
}

// Tally counts votes per target. Participants with no vote recorded do
// not appear in the result.
func (s *Session) Tally() map[string]int {
	tally := make(map[string]int)
	for _, target := range s.Votes {
		tally[target]++
	}
	return tally
}

// ChatMessage is one message in a GM<->player chat room
type ChatMessage struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRoomID builds the canonical room key for a pair of members:
// the two names sorted lexicographically and joined with "-"
func ChatRoomID(a, b string) string {
	members := []string{a, b}
	sort.Strings(members)
	return strings.Join(members, "-")
}
