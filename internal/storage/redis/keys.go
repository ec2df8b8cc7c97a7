package redis

import (
	"fmt"

	"github.com/soomtochukwu/XLMate/internal/model"
)

// Key prefix for all registry data
const keyPrefix = "xlmate"

// rolesKey returns the Redis key for the singleton role record
func rolesKey() string {
	return fmt.Sprintf("%s:roles", keyPrefix)
}

// gameKey returns the Redis key for a GameRecord
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}
