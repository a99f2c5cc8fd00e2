package world

import (
	"context"
	"encoding/json"
	"testing"
)

func TestTileMethods(t *testing.T) {
	tests := []struct {
		tile     Tile
		name     string
		glyph    rune
		passable bool
	}{
		{TileWall, "wall", '#', false},
		{TileRoomFloor, "room_floor", '.', true},
		{TileCorridorFloor, "corridor_floor", ',', true},
		{TileOpenDoor, "open_door", '\'', true},
		{TileClosedDoor, "closed_door", '+', true},
		{Tile(99), "unknown", '?', true},
	}

	for _, tt := range tests {
		if got := tt.tile.String(); got != tt.name {
			t.Errorf("Tile(%d).String() = %q, want %q", tt.tile, got, tt.name)
		}
		if got := tt.tile.Rune(); got != tt.glyph {
			t.Errorf("Tile(%d).Rune() = %q, want %q", tt.tile, got, tt.glyph)
		}
		if got := tt.tile.IsPassable(); got != tt.passable {
			t.Errorf("Tile(%d).IsPassable() = %v, want %v", tt.tile, got, tt.passable)
		}
	}
}

func TestTileCountsMarshalByName(t *testing.T) {
	counts := map[Tile]int{TileWall: 3, TileClosedDoor: 1}
	data, err := json.Marshal(counts)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"closed_door":1,"wall":3}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var decoded map[Tile]int
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if len(decoded) != len(counts) || decoded[TileWall] != 3 || decoded[TileClosedDoor] != 1 {
		t.Errorf("json.Unmarshal() = %v, want %v", decoded, counts)
	}
}

func TestTileUnmarshalText(t *testing.T) {
	for _, want := range Tiles {
		var got Tile
		if err := got.UnmarshalText([]byte(want.String())); err != nil {
			t.Errorf("UnmarshalText(%q) error = %v", want.String(), err)
			continue
		}
		if got != want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", want.String(), got, want)
		}
	}

	var tile Tile
	if err := tile.UnmarshalText([]byte("lava")); err == nil {
		t.Error("UnmarshalText(\"lava\") error = nil, want error")
	}
}

func TestStatsJSONRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 3
	d, err := Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := json.Marshal(d.Stats)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var got Stats
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	for _, tile := range Tiles {
		if got.Tiles[tile] != d.Stats.Tiles[tile] {
			t.Errorf("Tiles[%v] = %d, want %d", tile, got.Tiles[tile], d.Stats.Tiles[tile])
		}
	}
	if got.Junctions != d.Stats.Junctions || got.Rooms != d.Stats.Rooms {
		t.Errorf("decoded stats = %+v, want %+v", got, d.Stats)
	}
}

func TestRoomIntersects(t *testing.T) {
	base := Room{X: 3, Y: 3, Width: 5, Height: 5}

	tests := []struct {
		name  string
		other Room
		want  bool
	}{
		{"identical", base, true},
		{"contained", Room{X: 5, Y: 5, Width: 1, Height: 1}, true},
		{"partial overlap", Room{X: 7, Y: 7, Width: 3, Height: 3}, true},
		{"touching right edge", Room{X: 8, Y: 3, Width: 3, Height: 3}, false},
		{"touching bottom edge", Room{X: 3, Y: 8, Width: 3, Height: 3}, false},
		{"far away", Room{X: 21, Y: 21, Width: 3, Height: 3}, false},
	}

	for _, tt := range tests {
		if got := base.Intersects(tt.other); got != tt.want {
			t.Errorf("%s: Intersects() = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.other.Intersects(base); got != tt.want {
			t.Errorf("%s: reversed Intersects() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRoomContains(t *testing.T) {
	r := Room{X: 1, Y: 1, Width: 3, Height: 5}

	tests := []struct {
		x, y int
		want bool
	}{
		{1, 1, true},
		{3, 5, true},
		{4, 1, false},
		{1, 6, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}
