package world

import "github.com/samdwyer/dungeongen/internal/grid"

// Stats summarises a generation run.
type Stats struct {
	Rooms           int `json:"rooms"`
	Regions         int `json:"regions"`
	Connectors      int `json:"connectors"`
	Junctions       int `json:"junctions"`
	ExtraJunctions  int `json:"extraJunctions"`
	DeadEndsRemoved int `json:"deadEndsRemoved"`
	// Components is the number of passable areas. A finished dungeon has at most one.
	Components int          `json:"components"`
	Tiles      map[Tile]int `json:"tiles"`
}

// CountTiles returns how many cells hold each tile value.
func CountTiles(tiles *grid.Grid[Tile]) map[Tile]int {
	counts := make(map[Tile]int, len(Tiles))
	for _, t := range tiles.Cells() {
		counts[t]++
	}
	return counts
}

// Components counts the passable areas under 4-way adjacency.
func Components(tiles *grid.Grid[Tile]) int {
	seen := grid.New[bool](tiles.Width(), tiles.Height())
	count := 0

	for y := 0; y < tiles.Height(); y++ {
		for x := 0; x < tiles.Width(); x++ {
			if seen.Get(x, y) || !tiles.Get(x, y).IsPassable() {
				continue
			}
			count++

			seen.Set(x, y, true)
			stack := []point{{x, y}}
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, dir := range cardinals {
					n := p.add(dir)
					if !tiles.InBounds(n.x, n.y) || seen.Get(n.x, n.y) || !tiles.Get(n.x, n.y).IsPassable() {
						continue
					}
					seen.Set(n.x, n.y, true)
					stack = append(stack, n)
				}
			}
		}
	}

	return count
}

// exits counts the passable cardinal neighbours of p, which must not be on the border.
func exits(tiles *grid.Grid[Tile], p point) int {
	n := 0
	for _, dir := range cardinals {
		q := p.add(dir)
		if tiles.Get(q.x, q.y).IsPassable() {
			n++
		}
	}
	return n
}
