package world

// point is a cell coordinate, also used as a direction vector.
type point struct {
	x, y int
}

// cardinals lists the four directions in north, east, south, west order.
var cardinals = [4]point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

func (p point) add(o point) point {
	return point{p.x + o.x, p.y + o.y}
}

func (p point) scale(n int) point {
	return point{p.x * n, p.y * n}
}

// distanceSq returns the squared Euclidean distance between p and o.
func (p point) distanceSq(o point) int {
	dx, dy := p.x-o.x, p.y-o.y
	return dx*dx + dy*dy
}
