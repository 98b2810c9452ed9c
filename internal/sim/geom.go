package sim

// Point addresses one grid cell.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Manhattan is the |dx|+|dy| grid distance between a and b.
func Manhattan(a, b Point) int { return abs(a.X-b.X) + abs(a.Y-b.Y) }

// NoTargetDistance is the distance Nearest pairs with its zero Point
// when the candidate list is empty. Larger than any in-grid distance,
// and an exact int so distance comparisons stay uniform.
const NoTargetDistance = 1 << 30

// Nearest returns the candidate closest to origin by Manhattan
// distance. Ties keep the earliest candidate in iteration order.
func Nearest(origin Point, candidates []Point) (Point, int) {
	best := Point{}
	bestDist := NoTargetDistance
	for _, c := range candidates {
		if d := Manhattan(origin, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist
}
