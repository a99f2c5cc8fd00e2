package world

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// connector is a wall cell touching two or more regions.
type connector struct {
	pos     point
	regions []int // raw region ids, ascending
}

// ConnectRegions carves junctions until every region is joined into one.
// Connectors made redundant by a merge are discarded, but each is carved
// anyway with probability 1/extraConnectorChance so the dungeon keeps loops.
func (g *Generator) ConnectRegions(extraConnectorChance int) error {
	connectors := g.findConnectors()
	g.stats.Connectors = len(connectors)

	open := mapset.New[int]()
	for id := 0; id < g.tracker.Count(); id++ {
		open.Put(id)
	}

	// The surviving representative stays open, so stop at one.
	for open.Size() > 1 {
		if len(connectors) == 0 {
			return fmt.Errorf("%w: %d regions left unconnected", ErrConnectorsExhausted, open.Size())
		}

		junction := connectors[g.rng.Intn(len(connectors))]
		g.addJunction(junction.pos)
		g.stats.Junctions++

		regions := g.tracker.ResolveAll(junction.regions)
		dest, sources := regions[0], regions[1:]
		g.tracker.Merge(dest, sources)
		for _, id := range sources {
			open.Remove(id)
		}

		kept := connectors[:0]
		for _, c := range connectors {
			// Don't allow connectors right next to each other.
			if c.pos.distanceSq(junction.pos) < 4 {
				continue
			}
			if len(g.tracker.ResolveAll(c.regions)) > 1 {
				kept = append(kept, c)
				continue
			}
			if g.oneIn(extraConnectorChance) {
				g.addJunction(c.pos)
				g.stats.ExtraJunctions++
			}
		}
		connectors = kept
	}

	return nil
}

// findConnectors scans interior walls for cells bordering distinct regions.
func (g *Generator) findConnectors() []connector {
	var connectors []connector

	for y := 1; y < g.tiles.Height()-1; y++ {
		for x := 1; x < g.tiles.Width()-1; x++ {
			if g.tiles.Get(x, y) != TileWall {
				continue
			}

			pos := point{x, y}
			var regions []int
			for _, dir := range cardinals {
				n := pos.add(dir)
				region := g.regions.Get(n.x, n.y)
				if region != -1 && !slices.Contains(regions, region) {
					regions = append(regions, region)
				}
			}
			if len(regions) < 2 {
				continue
			}

			slices.Sort(regions)
			connectors = append(connectors, connector{pos: pos, regions: regions})
		}
	}

	return connectors
}

// addJunction turns a connector into a door or an opening. Closed doors are
// the common case.
func (g *Generator) addJunction(p point) {
	tile := TileClosedDoor
	if g.oneIn(4) {
		tile = TileRoomFloor
		if g.oneIn(3) {
			tile = TileOpenDoor
		}
	}
	g.tiles.Set(p.x, p.y, tile)
}
