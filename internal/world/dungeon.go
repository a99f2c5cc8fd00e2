package world

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeongen/internal/grid"
	"github.com/samdwyer/dungeongen/internal/telemetry"
)

// Dungeon is a finished layout. It is never mutated after Generate returns it.
type Dungeon struct {
	Tiles *grid.Grid[Tile]
	// Seed is the seed actually used, even when Config.Seed was 0.
	Seed  int64
	Stats Stats
}

// Generator owns all working state of a single generation run.
type Generator struct {
	rng     *rand.Rand
	tiles   *grid.Grid[Tile]
	regions *grid.Grid[int]
	tracker *RegionTracker
	rooms   []Room
	stats   Stats
}

// NewGenerator creates a generator for a width x height map filled with walls.
// All randomness is drawn from rng.
func NewGenerator(width, height int, rng *rand.Rand) *Generator {
	return &Generator{
		rng:     rng,
		tiles:   grid.NewFilled(width, height, TileWall),
		regions: grid.NewFilled(width, height, -1),
		tracker: NewRegionTracker(),
		rooms:   make([]Room, 0),
	}
}

// Generate validates cfg and runs the full pipeline: rooms, mazes, connectors
// and, when enabled, dead-end removal.
func Generate(ctx context.Context, cfg Config) (*Dungeon, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid config")
		return nil, err
	}

	startTime := time.Now()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := NewGenerator(cfg.Width, cfg.Height, rand.New(rand.NewSource(seed)))

	g.PlaceRooms(cfg.NumRoomTries, cfg.ExtraRoomSize)
	span.AddEvent("rooms.placed", traceInt("rooms", len(g.rooms)))
	slog.DebugContext(ctx, "rooms placed", "tries", cfg.NumRoomTries, "rooms", len(g.rooms))

	g.CarveMazes(cfg.WindingPercent)
	span.AddEvent("mazes.carved", traceInt("regions", g.tracker.Count()))
	slog.DebugContext(ctx, "mazes carved", "regions", g.tracker.Count())

	if err := g.ConnectRegions(cfg.ExtraConnectorChance); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "connect regions")
		return nil, err
	}
	slog.DebugContext(ctx, "regions connected",
		"junctions", g.stats.Junctions, "extra_junctions", g.stats.ExtraJunctions)

	if cfg.RemoveDeadEnds {
		g.PruneDeadEnds()
		slog.DebugContext(ctx, "dead ends removed", "cells", g.stats.DeadEndsRemoved)
	}

	d := g.Dungeon(seed)

	span.SetAttributes(
		attribute.Int("dungeon.width", cfg.Width),
		attribute.Int("dungeon.height", cfg.Height),
		attribute.Int64("dungeon.seed", seed),
		attribute.Int("dungeon.room_count", d.Stats.Rooms),
		attribute.Int("dungeon.region_count", d.Stats.Regions),
		attribute.Int("dungeon.junction_count", d.Stats.Junctions),
		attribute.Int("dungeon.dead_ends_removed", d.Stats.DeadEndsRemoved),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return d, nil
}

// Dungeon hands the carved tiles to the caller. The generator must not be used afterwards.
func (g *Generator) Dungeon(seed int64) *Dungeon {
	stats := g.stats
	stats.Rooms = len(g.rooms)
	stats.Regions = g.tracker.Count()
	stats.Tiles = CountTiles(g.tiles)
	stats.Components = Components(g.tiles)

	return &Dungeon{
		Tiles: g.tiles,
		Seed:  seed,
		Stats: stats,
	}
}

// carve sets the tile at p and tags it with the current region.
func (g *Generator) carve(p point, t Tile) {
	g.tiles.Set(p.x, p.y, t)
	g.regions.Set(p.x, p.y, g.tracker.Current())
}

// randInt returns a value in [lo, hi), or lo when the range is empty.
func (g *Generator) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo)
}

// oneIn returns true with probability 1/n.
func (g *Generator) oneIn(n int) bool {
	return g.rng.Intn(n) == 0
}

// Width returns the dungeon width.
func (d *Dungeon) Width() int { return d.Tiles.Width() }

// Height returns the dungeon height.
func (d *Dungeon) Height() int { return d.Tiles.Height() }

// IsPassable returns true if the given position can be walked on.
func (d *Dungeon) IsPassable(x, y int) bool {
	if !d.Tiles.InBounds(x, y) {
		return false
	}
	return d.Tiles.Get(x, y).IsPassable()
}

// GetTile returns the tile at the given position.
func (d *Dungeon) GetTile(x, y int) Tile {
	if !d.Tiles.InBounds(x, y) {
		return TileWall
	}
	return d.Tiles.Get(x, y)
}

// Rows renders each row as a string of tile runes.
func (d *Dungeon) Rows() []string {
	rows := make([]string, d.Height())
	var sb strings.Builder
	for y := range rows {
		sb.Reset()
		for x := 0; x < d.Width(); x++ {
			sb.WriteRune(d.Tiles.Get(x, y).Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders the dungeon one row per line.
func (d *Dungeon) String() string {
	return strings.Join(d.Rows(), "\n")
}

func traceInt(key string, v int) trace.EventOption {
	return trace.WithAttributes(attribute.Int(key, v))
}
