package server

import (
	"encoding/json"

	"github.com/samdwyer/dungeongen/internal/world"
)

// Message types.
const (
	TypeHello    = "hello"
	TypeGenerate = "generate"
	TypeDungeon  = "dungeon"
	TypeError    = "error"
)

// Envelope wraps every message sent by the server.
type Envelope struct {
	Sequence uint64 `json:"sequence"`
	RunID    string `json:"runId,omitempty"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// Request is a message sent by a client. A generate payload is a partial
// world.Config laid over the server defaults.
type Request struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// HelloPayload greets a new connection with the server defaults.
type HelloPayload struct {
	Defaults world.Config `json:"defaults"`
}

// DungeonPayload is a finished dungeon, one string per row.
type DungeonPayload struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Seed   int64       `json:"seed"`
	Rows   []string    `json:"rows"`
	Stats  world.Stats `json:"stats"`
}

// ErrorPayload reports a rejected request to the client that sent it.
type ErrorPayload struct {
	Message string `json:"message"`
}

// NewDungeonPayload converts a dungeon for the wire.
func NewDungeonPayload(d *world.Dungeon) DungeonPayload {
	return DungeonPayload{
		Width:  d.Width(),
		Height: d.Height(),
		Seed:   d.Seed,
		Rows:   d.Rows(),
		Stats:  d.Stats,
	}
}
