package response

import (
	"time"

	"github.com/soomtochukwu/XLMate/internal/model"
)

// GameRecord represents a committed game result in API responses
type GameRecord struct {
	GameID     string    `json:"game_id"`
	Winner     *string   `json:"winner"`
	Draw       bool      `json:"draw"`
	White      string    `json:"white"`
	Black      string    `json:"black"`
	Timestamp  time.Time `json:"timestamp"`
	RecordedAt time.Time `json:"recorded_at"`
}

// GameRecordFromModel converts a model.GameRecord to a response GameRecord
func GameRecordFromModel(id model.GameID, r *model.GameRecord) GameRecord {
	var winner *string
	if !r.IsDraw() {
		w := string(r.Winner)
		winner = &w
	}
	return GameRecord{
		GameID:     string(id),
		Winner:     winner,
		Draw:       r.IsDraw(),
		White:      string(r.White),
		Black:      string(r.Black),
		Timestamp:  r.Timestamp,
		RecordedAt: r.RecordedAt,
	}
}

// Roles represents the current role slots in API responses
type Roles struct {
	Admin  string `json:"admin"`
	Server string `json:"server"`
}

// RolesFromModel converts a model.RoleState to a response Roles
func RolesFromModel(r *model.RoleState) Roles {
	return Roles{
		Admin:  string(r.Admin),
		Server: string(r.Server),
	}
}
