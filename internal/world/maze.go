package world

import "slices"

// CarveMazes fills every uncarved odd cell with a growing-tree maze. Each
// start point becomes its own region.
func (g *Generator) CarveMazes(windingPercent int) {
	for y := 1; y < g.tiles.Height(); y += 2 {
		for x := 1; x < g.tiles.Width(); x += 2 {
			if g.tiles.Get(x, y) != TileWall {
				continue
			}
			g.growMaze(point{x, y}, windingPercent)
		}
	}
}

// growMaze carves a maze from start using a stack of active cells. The most
// recent cell is always extended; cells with nothing left to carve are popped.
func (g *Generator) growMaze(start point, windingPercent int) {
	var lastDir point // zero value is not a cardinal direction

	g.tracker.Start()
	g.carve(start, TileCorridorFloor)

	cells := []point{start}
	open := make([]point, 0, len(cardinals))

	for len(cells) > 0 {
		cell := cells[len(cells)-1]

		open = open[:0]
		for _, dir := range cardinals {
			if g.canCarve(cell, dir) {
				open = append(open, dir)
			}
		}

		if len(open) == 0 {
			cells = cells[:len(cells)-1]
			lastDir = point{}
			continue
		}

		var dir point
		if lastDir != (point{}) && slices.Contains(open, lastDir) && g.rng.Intn(100) > windingPercent {
			dir = lastDir
		} else {
			dir = open[g.rng.Intn(len(open))]
		}

		// Two cells at a time keeps a wall between parallel corridors.
		g.carve(cell.add(dir), TileCorridorFloor)
		g.carve(cell.add(dir.scale(2)), TileCorridorFloor)

		cells = append(cells, cell.add(dir.scale(2)))
		lastDir = dir
	}
}

// canCarve reports whether a corridor can run from pos two cells towards dir.
// The destination must still be wall and keep one cell of margin to the map edge.
func (g *Generator) canCarve(pos, dir point) bool {
	margin := pos.add(dir.scale(3))
	if !g.tiles.InBounds(margin.x, margin.y) {
		return false
	}
	dest := pos.add(dir.scale(2))
	return g.tiles.Get(dest.x, dest.y) == TileWall
}
