package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatRoomIDIsOrderInsensitive(t *testing.T) {
	assert.Equal(t, ChatRoomID("GM", "alice"), ChatRoomID("alice", "GM"))
	assert.Equal(t, "GM-alice", ChatRoomID("alice", "GM"))
	assert.Equal(t, "GM-bob", ChatRoomID("GM", "bob"))
}

func TestHasParticipant(t *testing.T) {
	s := &Session{Participants: []string{"alice", "bob"}}
	assert.True(t, s.HasParticipant("alice"))
	assert.False(t, s.HasParticipant("carol"))
	assert.False(t, s.HasParticipant(GMName))
}

func TestTallyCountsVotesPerTarget(t *testing.T) {
	s := &Session{
		Participants: []string{"alice", "bob", "carol"},
		Votes: map[string]string{
			"alice": "bob",
			"bob":   "alice",
			"carol": "bob",
		},
	}

	tally := s.Tally()
	assert.Equal(t, map[string]int{"bob": 2, "alice": 1}, tally)
}

func TestTallyEmptyWhenNoVotes(t *testing.T) {
	s := &Session{Participants: []string{"alice", "bob"}}
	assert.Empty(t, s.Tally())
}
