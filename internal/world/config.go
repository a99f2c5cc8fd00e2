package world

import (
	"errors"
	"fmt"
)

const (
	// Default dungeon dimensions. Both must stay odd.
	DefaultWidth  = 79
	DefaultHeight = 23

	DefaultNumRoomTries         = 50
	DefaultExtraConnectorChance = 10
	DefaultWindingPercent       = 50
)

var (
	// ErrInvalidConfig is returned before any generation work when a Config cannot be used.
	ErrInvalidConfig = errors.New("invalid dungeon config")
	// ErrConnectorsExhausted means regions were left unconnected with no connector to join them.
	ErrConnectorsExhausted = errors.New("connector candidates exhausted")
)

// Config holds every input of the generator. Identical configs with a
// non-zero Seed produce identical dungeons.
type Config struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`

	// NumRoomTries is how many room placements are attempted. Overlapping attempts are discarded.
	NumRoomTries int `yaml:"num_room_tries" json:"numRoomTries"`
	// ExtraConnectorChance is the inverse probability (1 in N) of carving a redundant connector.
	ExtraConnectorChance int `yaml:"extra_connector_chance" json:"extraConnectorChance"`
	// ExtraRoomSize grows the upper bound of room sizes.
	ExtraRoomSize int `yaml:"extra_room_size" json:"extraRoomSize"`
	// WindingPercent is the chance (0-100) that a corridor turns when it could continue straight.
	WindingPercent int  `yaml:"winding_percent" json:"windingPercent"`
	RemoveDeadEnds bool `yaml:"remove_dead_ends" json:"removeDeadEnds"`

	// Seed for random number generation. A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed" json:"seed"`
}

// DefaultConfig returns a terminal-sized dungeon with rooms and winding corridors.
func DefaultConfig() Config {
	return Config{
		Width:                DefaultWidth,
		Height:               DefaultHeight,
		NumRoomTries:         DefaultNumRoomTries,
		ExtraConnectorChance: DefaultExtraConnectorChance,
		WindingPercent:       DefaultWindingPercent,
	}
}

// Validate reports the first problem that would stop generation.
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Width%2 == 0 || c.Height%2 == 0:
		return fmt.Errorf("%w: dimensions must be odd, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.ExtraConnectorChance <= 0:
		return fmt.Errorf("%w: extra connector chance must be positive, got %d", ErrInvalidConfig, c.ExtraConnectorChance)
	case c.NumRoomTries < 0:
		return fmt.Errorf("%w: room tries must not be negative, got %d", ErrInvalidConfig, c.NumRoomTries)
	case c.ExtraRoomSize < 0:
		return fmt.Errorf("%w: extra room size must not be negative, got %d", ErrInvalidConfig, c.ExtraRoomSize)
	case c.WindingPercent < 0 || c.WindingPercent > 100:
		return fmt.Errorf("%w: winding percent must be within [0,100], got %d", ErrInvalidConfig, c.WindingPercent)
	}
	return nil
}
