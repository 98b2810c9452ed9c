package sim

// StepToward advances current one cell toward target, consuming
// exactly one axis per call: the axis with the larger remaining
// distance, Y on an exact tie. Returns current unchanged when the
// two coincide.
func StepToward(current, target Point) Point {
	dx := target.X - current.X
	dy := target.Y - current.Y
	if dx == 0 && dy == 0 {
		return current
	}
	if abs(dx) > abs(dy) {
		return Point{X: current.X + sign(dx), Y: current.Y}
	}
	return Point{X: current.X, Y: current.Y + sign(dy)}
}

// StepAwayFrom moves one cell directly away from threat, on the axis
// with the larger threat component, Y on ties. An axis the agent has
// already fully fled (away component 0) yields to the other. Returns
// current when coincident with the threat.
func StepAwayFrom(current, threat Point) Point {
	ax := sign(current.X - threat.X)
	ay := sign(current.Y - threat.Y)
	if ax == 0 && ay == 0 {
		return current
	}
	if abs(current.X-threat.X) > abs(current.Y-threat.Y) && ax != 0 {
		return Point{X: current.X + ax, Y: current.Y}
	}
	if ay != 0 {
		return Point{X: current.X, Y: current.Y + ay}
	}
	return Point{X: current.X + ax, Y: current.Y}
}

// StepAwayBiased flees threat like StepAwayFrom, but when exactly one
// away-axis also runs toward goal, flight follows that axis. With no
// uniquely goal-aligned axis it falls back to the plain distance
// priority.
func StepAwayBiased(current, threat, goal Point) Point {
	ax := sign(current.X - threat.X)
	ay := sign(current.Y - threat.Y)
	if ax == 0 && ay == 0 {
		return current
	}
	xHelps := ax != 0 && ax == sign(goal.X-current.X)
	yHelps := ay != 0 && ay == sign(goal.Y-current.Y)
	if xHelps != yHelps {
		if xHelps {
			return Point{X: current.X + ax, Y: current.Y}
		}
		return Point{X: current.X, Y: current.Y + ay}
	}
	return StepAwayFrom(current, threat)
}

// PerpendicularEscapes returns the two cells adjacent to current on
// the axis the threat vector does not dominate: an X-dominant threat
// (|dx| >= |dy|) yields the Y neighbors, and vice versa. No bounds or
// terrain validation happens here; that is the caller's job.
func PerpendicularEscapes(current, threat Point) [2]Point {
	dx := abs(threat.X - current.X)
	dy := abs(threat.Y - current.Y)
	if dx >= dy {
		return [2]Point{
			{X: current.X, Y: current.Y - 1},
			{X: current.X, Y: current.Y + 1},
		}
	}
	return [2]Point{
		{X: current.X - 1, Y: current.Y},
		{X: current.X + 1, Y: current.Y},
	}
}

// StepWithSpeed applies StepToward up to speed times, validating each
// candidate against bounds and terrain. It short-circuits on the
// first invalid cell and returns the last valid position, so no
// sub-step ever jumps over a blocked cell.
func StepWithSpeed(current, target Point, speed int, dims Dimensions, terrain Terrain) Point {
	for i := 0; i < speed; i++ {
		next := StepToward(current, target)
		if next == current || !IsPassable(next, dims, terrain) {
			break
		}
		current = next
	}
	return current
}
