package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/presets"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Renderer handles drawing a dungeon to the screen.
type Renderer struct {
	screen  *Screen
	palette presets.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette presets.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the part of the dungeon starting at (offsetX, offsetY) and a
// status line on the last screen row.
func (r *Renderer) Render(dungeon *world.Dungeon, offsetX, offsetY int, status string) {
	r.screen.Clear()

	width, height := r.screen.Size()
	for y := 0; y < height-1; y++ {
		for x := 0; x < width; x++ {
			dx, dy := x+offsetX, y+offsetY
			if dx >= dungeon.Width() || dy >= dungeon.Height() {
				continue
			}
			tile := dungeon.GetTile(dx, dy)
			r.screen.SetContent(x, y, r.glyph(tile), r.getTileStyle(tile))
		}
	}

	r.RenderMessage(status, height-1)
	r.screen.Show()
}

// glyph returns the palette glyph for a tile, or the tile's own rune.
func (r *Renderer) glyph(tile world.Tile) rune {
	if style, ok := r.palette[tile]; ok {
		return style.GlyphRune()
	}
	return tile.Rune()
}

// getTileStyle returns the appropriate style for a tile type.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	style, ok := r.palette[tile]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(style.TCellColor())
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
