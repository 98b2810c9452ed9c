package sim

// Dimensions bound the grid to [0,Width) x [0,Height).
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Terrain is the set of impassable cells. It never contains a map's
// entry or exit cell.
type Terrain map[Point]struct{}

func (t Terrain) Blocked(p Point) bool {
	_, ok := t[p]
	return ok
}

// IsPassable reports whether p lies inside dims and off terrain.
// Out-of-range positions are simply impassable, not an error.
func IsPassable(p Point, dims Dimensions, terrain Terrain) bool {
	if p.X < 0 || p.X >= dims.Width || p.Y < 0 || p.Y >= dims.Height {
		return false
	}
	return !terrain.Blocked(p)
}
