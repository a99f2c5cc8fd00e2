package world

// PlaceRooms makes maxTries attempts at stamping a random room. Attempts that
// overlap an accepted room, or do not fit the map, are skipped rather than retried.
func (g *Generator) PlaceRooms(maxTries, extraRoomSize int) {
	for i := 0; i < maxTries; i++ {
		// Odd sizes keep rooms aligned with the maze lattice.
		size := g.randInt(1, 3+extraRoomSize)*2 + 1
		rectangularity := g.randInt(0, 1+size/2) * 2

		width, height := size, size
		if g.rng.Intn(2) == 0 {
			width += rectangularity
		} else {
			height += rectangularity
		}

		xSlots := (g.tiles.Width() - width) / 2
		ySlots := (g.tiles.Height() - height) / 2
		if xSlots < 1 || ySlots < 1 {
			continue
		}

		room := Room{
			X:      g.rng.Intn(xSlots)*2 + 1,
			Y:      g.rng.Intn(ySlots)*2 + 1,
			Width:  width,
			Height: height,
		}
		if g.overlapsRoom(room) {
			continue
		}

		g.rooms = append(g.rooms, room)
		g.carveRoom(room)
	}
}

// overlapsRoom returns true if room intersects any accepted room.
func (g *Generator) overlapsRoom(room Room) bool {
	for _, other := range g.rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom sets all tiles within the room to floor under a new region.
func (g *Generator) carveRoom(room Room) {
	g.tracker.Start()
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			g.carve(point{x, y}, TileRoomFloor)
		}
	}
}
