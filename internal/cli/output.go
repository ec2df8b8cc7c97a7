package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameResult:
		o.printGame(v)
	case RolesResult:
		o.printRoles(v)
	case HealthResult:
		o.printHealth(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GameResult response type (matches API)
type GameResult struct {
	GameID     string    `json:"game_id"`
	Winner     *string   `json:"winner"`
	Draw       bool      `json:"draw"`
	White      string    `json:"white"`
	Black      string    `json:"black"`
	Timestamp  time.Time `json:"timestamp"`
	RecordedAt time.Time `json:"recorded_at"`
}

// RolesResult response type
type RolesResult struct {
	Admin  string `json:"admin"`
	Server string `json:"server"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g GameResult) {
	fmt.Printf("Game:       %s\n", g.GameID)
	if g.Draw {
		fmt.Println("Result:     draw")
	} else {
		fmt.Printf("Winner:     %s\n", *g.Winner)
	}
	fmt.Printf("White:      %s\n", g.White)
	fmt.Printf("Black:      %s\n", g.Black)
	fmt.Printf("Finished:   %s\n", g.Timestamp.Format(time.RFC3339))
	fmt.Printf("Recorded:   %s\n", g.RecordedAt.Format(time.RFC3339))
}

func (o *Output) printRoles(r RolesResult) {
	fmt.Printf("Admin:  %s\n", r.Admin)
	fmt.Printf("Server: %s\n", r.Server)
}

func (o *Output) printHealth(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
