package redis

import (
	"fmt"

	"github.com/no1453/woggle/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "woggle"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// solutionKey returns the Redis key for a session's solution set at a
// given board revision
func solutionKey(id model.SessionID, revision int) string {
	return fmt.Sprintf("%s:solution:%s:%d", keyPrefix, id, revision)
}

// solutionsForSessionIndexKey returns the Redis key for the SET of
// solution keys belonging to a session
func solutionsForSessionIndexKey(id model.SessionID) string {
	return fmt.Sprintf("%s:idx:solutions_for_session:%s", keyPrefix, id)
}

// dictionaryKey returns the Redis key for the dictionary word list
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}
