package world

// PruneDeadEnds fills in passable cells with a single exit until none are
// left, and returns how many cells were filled.
func (g *Generator) PruneDeadEnds() int {
	removed := 0

	for done := false; !done; {
		done = true

		for y := 1; y < g.tiles.Height()-1; y++ {
			for x := 1; x < g.tiles.Width()-1; x++ {
				if g.tiles.Get(x, y) == TileWall {
					continue
				}
				if exits(g.tiles, point{x, y}) != 1 {
					continue
				}

				g.tiles.Set(x, y, TileWall)
				removed++
				done = false
			}
		}
	}

	g.stats.DeadEndsRemoved += removed
	return removed
}
