package presets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/world"
)

// TileStyle defines how a renderer draws one tile type.
type TileStyle struct {
	Tile  string `yaml:"tile"`  // Tile name as returned by world.Tile.String
	Glyph string `yaml:"glyph"` // Single character for rendering
	Color string `yaml:"color"` // Hex color, e.g. "#A0A0A0"
}

// GlyphRune returns the glyph as a rune for rendering.
func (s TileStyle) GlyphRune() rune {
	if len(s.Glyph) == 0 {
		return '?'
	}
	return []rune(s.Glyph)[0]
}

// TCellColor returns the style color, or the terminal default if it does not parse.
func (s TileStyle) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorDefault
	}
	return color
}

// PaletteFile represents the structure of palette.yaml.
type PaletteFile struct {
	Tiles []TileStyle `yaml:"tiles"`
}

// Palette maps every tile type to its style.
type Palette map[world.Tile]TileStyle

// LoadPalette loads the embedded palette.yaml. Every tile type must have a style.
func LoadPalette() (Palette, error) {
	file, err := Load[PaletteFile]("palette.yaml")
	if err != nil {
		return nil, err
	}

	palette := make(Palette, len(file.Tiles))
	for _, style := range file.Tiles {
		var tile world.Tile
		if err := tile.UnmarshalText([]byte(style.Tile)); err != nil {
			return nil, fmt.Errorf("palette.yaml: %w", err)
		}
		if _, err := ParseHexColor(style.Color); err != nil {
			return nil, fmt.Errorf("palette.yaml: tile %s: %w", style.Tile, err)
		}
		palette[tile] = style
	}
	for _, tile := range world.Tiles {
		if _, ok := palette[tile]; !ok {
			return nil, fmt.Errorf("palette.yaml: no style for %s", tile)
		}
	}
	return palette, nil
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() Palette {
	palette, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return palette
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid red component in %s: %w", hex, err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid green component in %s: %w", hex, err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid blue component in %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
