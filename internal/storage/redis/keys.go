package redis

import (
	"fmt"

	"github.com/Shu5555/jinro-app/internal/model"
)

// Key prefix for all session-tool data
const keyPrefix = "jinro"

// distributionKey returns the Redis key for a stored distribution payload
func distributionKey(id model.DistributionID) string {
	return fmt.Sprintf("%s:dist:%s", keyPrefix, id)
}

// sessionKey returns the Redis key for a voting session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// chatKey returns the Redis key for a chat room's message list
func chatKey(sessionID model.SessionID, room string) string {
	return fmt.Sprintf("%s:chat:%s:%s", keyPrefix, sessionID, room)
}

// wordPoolKey returns the Redis key for the password word pool set
func wordPoolKey() string {
	return fmt.Sprintf("%s:wordpool", keyPrefix)
}
