// Package world provides dungeon generation: room placement, maze carving,
// region merging and dead-end pruning on an odd-sized tile grid.
package world

import "fmt"

// Tile classifies a single map cell.
type Tile uint8

const (
	// TileWall is solid rock. It is also the value of every cell before carving.
	TileWall Tile = iota
	// TileRoomFloor is the floor of a placed room, or an open junction.
	TileRoomFloor
	// TileCorridorFloor is a cell carved by the maze.
	TileCorridorFloor
	// TileOpenDoor is a junction rendered as an open door.
	TileOpenDoor
	// TileClosedDoor is a junction rendered as a closed door.
	TileClosedDoor
)

// Tiles lists every tile value in declaration order.
var Tiles = []Tile{TileWall, TileRoomFloor, TileCorridorFloor, TileOpenDoor, TileClosedDoor}

// IsPassable returns true if the tile can be walked on. Doors count as passable.
func (t Tile) IsPassable() bool {
	return t != TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case TileWall:
		return '#'
	case TileRoomFloor:
		return '.'
	case TileCorridorFloor:
		return ','
	case TileOpenDoor:
		return '\''
	case TileClosedDoor:
		return '+'
	default:
		return '?'
	}
}

// String returns the tile's name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileRoomFloor:
		return "room_floor"
	case TileCorridorFloor:
		return "corridor_floor"
	case TileOpenDoor:
		return "open_door"
	case TileClosedDoor:
		return "closed_door"
	default:
		return "unknown"
	}
}

// MarshalText lets tiles key JSON objects by name.
func (t Tile) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText is the inverse of MarshalText. Unknown names are an error.
func (t *Tile) UnmarshalText(text []byte) error {
	name := string(text)
	for _, candidate := range Tiles {
		if candidate.String() == name {
			*t = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown tile %q", name)
}
