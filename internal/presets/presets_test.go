package presets

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/dungeongen/internal/world"
)

func TestLoadRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	want := []string{"classic", "labyrinth", "rooms", "sparse"}
	got := registry.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if len(registry.All()) != len(want) {
		t.Errorf("All() has %d presets, want %d", len(registry.All()), len(want))
	}
}

func TestClassicPresetIsPureMaze(t *testing.T) {
	cfg, err := MustLoadRegistry().Get("classic")
	if err != nil {
		t.Fatalf("Get(classic) error = %v", err)
	}

	want := world.Config{
		Width:                51,
		Height:               51,
		ExtraConnectorChance: 10,
		WindingPercent:       50,
	}
	if cfg != want {
		t.Errorf("Get(classic) = %+v, want %+v", cfg, want)
	}
}

func TestGetUnknownPreset(t *testing.T) {
	_, err := MustLoadRegistry().Get("castle")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Get(castle) error = %v, want ErrUnknownPreset", err)
	}
}

func TestEveryPresetGenerates(t *testing.T) {
	for _, p := range MustLoadRegistry().All() {
		cfg := p.Config
		cfg.Seed = 2024

		d, err := world.Generate(context.Background(), cfg)
		if err != nil {
			t.Errorf("preset %s: Generate() error = %v", p.Name, err)
			continue
		}
		if d.Stats.Components != 1 {
			t.Errorf("preset %s: Components = %d, want 1", p.Name, d.Stats.Components)
		}
	}
}

func TestLoadPalette(t *testing.T) {
	palette, err := LoadPalette()
	if err != nil {
		t.Fatalf("LoadPalette() error = %v", err)
	}

	for _, tile := range world.Tiles {
		style, ok := palette[tile]
		if !ok {
			t.Errorf("no style for %s", tile)
			continue
		}
		if style.GlyphRune() != tile.Rune() {
			t.Errorf("%s glyph = %q, want %q", tile, style.GlyphRune(), tile.Rune())
		}
		if style.TCellColor() == 0 {
			t.Errorf("%s TCellColor() returned zero color", tile)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#4a4a4a", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestTileStyleFallbacks(t *testing.T) {
	style := TileStyle{Glyph: "", Color: "nope"}
	if style.GlyphRune() != '?' {
		t.Errorf("GlyphRune() = %q, want '?'", style.GlyphRune())
	}
	if style.TCellColor() != 0 {
		t.Errorf("TCellColor() = %v, want default color", style.TCellColor())
	}
}
