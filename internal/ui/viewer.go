package ui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/presets"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Viewer shows generated dungeons and regenerates them on demand.
type Viewer struct {
	screen   *Screen
	renderer *Renderer
	cfg      world.Config
	dungeon  *world.Dungeon
	offsetX  int
	offsetY  int
	message  string
	running  bool
}

// NewViewer creates a viewer for dungeons generated from cfg.
func NewViewer(screen *Screen, palette presets.Palette, cfg world.Config) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: NewRenderer(screen, palette),
		cfg:      cfg,
		running:  true,
	}
}

// Run generates the first dungeon and processes input until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.screen.Close()

	if err := v.regenerate(ctx, false); err != nil {
		return err
	}

	for v.running {
		v.render()
		v.handleInput(ctx)
	}
	return nil
}

// regenerate builds a new dungeon. With newSeed the seed is cleared so the
// generator picks one; the chosen seed is kept for replay.
func (v *Viewer) regenerate(ctx context.Context, newSeed bool) error {
	cfg := v.cfg
	if newSeed {
		cfg.Seed = 0
	}

	d, err := world.Generate(ctx, cfg)
	if err != nil {
		return err
	}

	v.cfg.Seed = d.Seed
	v.dungeon = d
	v.offsetX, v.offsetY = 0, 0
	v.message = ""
	slog.InfoContext(ctx, "dungeon generated", "seed", d.Seed, "rooms", d.Stats.Rooms, "junctions", d.Stats.Junctions)
	return nil
}

func (v *Viewer) render() {
	status := fmt.Sprintf("seed %d  rooms %d  junctions %d  [n]ew [r]eplay [arrows] pan [q]uit",
		v.dungeon.Seed, v.dungeon.Stats.Rooms, v.dungeon.Stats.Junctions)
	if v.message != "" {
		status = v.message
	}
	v.renderer.Render(v.dungeon, v.offsetX, v.offsetY, status)
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.screen.Sync()
	}
}

// handleKey processes keyboard input.
func (v *Viewer) handleKey(ctx context.Context, key tcell.Key, ch rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyUp:
		v.pan(0, -1)
	case tcell.KeyDown:
		v.pan(0, 1)
	case tcell.KeyLeft:
		v.pan(-1, 0)
	case tcell.KeyRight:
		v.pan(1, 0)

	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			v.running = false
		case 'n', 'N':
			v.tryRegenerate(ctx, true)
		case 'r', 'R':
			v.tryRegenerate(ctx, false)
		}
	}
}

func (v *Viewer) tryRegenerate(ctx context.Context, newSeed bool) {
	if err := v.regenerate(ctx, newSeed); err != nil {
		v.message = "generation failed: " + err.Error()
		slog.ErrorContext(ctx, "generation failed", "error", err)
	}
}

// pan scrolls the view, keeping it within the dungeon.
func (v *Viewer) pan(dx, dy int) {
	width, height := v.screen.Size()
	v.offsetX = clamp(v.offsetX+dx, 0, max(0, v.dungeon.Width()-width))
	v.offsetY = clamp(v.offsetY+dy, 0, max(0, v.dungeon.Height()-(height-1)))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
