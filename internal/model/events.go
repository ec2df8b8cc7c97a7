package model

import "time"

// TopicGameFinalized is the stable topic name for commit notifications.
const TopicGameFinalized = "game_finalized"

// GameFinalized is the notification emitted once per successful commit.
// The field set is fixed; external indexers rely on it to build queryable
// history without reading the registry itself.
type GameFinalized struct {
	GameID     GameID    `json:"game_id"`
	Winner     Identity  `json:"winner"`
	White      Identity  `json:"white"`
	Black      Identity  `json:"black"`
	Timestamp  time.Time `json:"timestamp"`
	RecordedAt time.Time `json:"recorded_at"`
}
