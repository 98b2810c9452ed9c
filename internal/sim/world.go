package sim

import (
	"sort"

	"hobbit_sim/internal/config"
)

// World is one tick's snapshot of the simulation. The runner builds a
// fresh snapshot per tick; decision policies read it and return
// proposed positions, they never write back into it.
type World struct {
	MapID   string
	MapName string
	Dims    Dimensions
	Terrain Terrain
	Entry   Point
	Exit    Point

	// Starting counts for the current map, used by the loss check.
	StartingHobbits int
	StartingWraiths int

	// Hobbits carry a stable id assigned at spawn and preserved
	// across map transitions. Wraiths are fungible and respawn fresh
	// on each map.
	Hobbits map[int]Point
	Wraiths []Point

	Tick int
}

func newWorld(def *config.MapDef, hobbits map[int]Point, tick int) World {
	wraiths := make([]Point, len(def.WraithSpawns))
	for i, s := range def.WraithSpawns {
		wraiths[i] = Point{X: s.X, Y: s.Y}
	}
	return World{
		MapID:           def.ID,
		MapName:         def.Name,
		Dims:            Dimensions{Width: def.Width, Height: def.Height},
		Terrain:         buildTerrain(def),
		Entry:           Point{X: def.Entry.X, Y: def.Entry.Y},
		Exit:            Point{X: def.Exit.X, Y: def.Exit.Y},
		StartingHobbits: len(hobbits),
		StartingWraiths: len(wraiths),
		Hobbits:         hobbits,
		Wraiths:         wraiths,
		Tick:            tick,
	}
}

// buildTerrain compiles a map definition into the impassable cell
// set: an optional one-cell border plus wall rectangles. Entry and
// exit cells are always carved back out.
func buildTerrain(def *config.MapDef) Terrain {
	t := Terrain{}
	if def.Border {
		for x := 0; x < def.Width; x++ {
			t[Point{X: x, Y: 0}] = struct{}{}
			t[Point{X: x, Y: def.Height - 1}] = struct{}{}
		}
		for y := 0; y < def.Height; y++ {
			t[Point{X: 0, Y: y}] = struct{}{}
			t[Point{X: def.Width - 1, Y: y}] = struct{}{}
		}
	}
	for _, w := range def.Walls {
		ww, wh := w.W, w.H
		if ww < 1 {
			ww = 1
		}
		if wh < 1 {
			wh = 1
		}
		for x := w.X; x < w.X+ww; x++ {
			for y := w.Y; y < w.Y+wh; y++ {
				t[Point{X: x, Y: y}] = struct{}{}
			}
		}
	}
	delete(t, Point{X: def.Entry.X, Y: def.Entry.Y})
	delete(t, Point{X: def.Exit.X, Y: def.Exit.Y})
	return t
}

// HobbitIDs lists live hobbit ids in ascending order. All per-tick
// processing walks hobbits in this order, which is what keeps
// collision avoidance deterministic.
func (w World) HobbitIDs() []int {
	ids := make([]int, 0, len(w.Hobbits))
	for id := range w.Hobbits {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Escaped reports whether the hobbit at p counts as exited on the
// current map. Exited hobbits stay on the board at the exit cell but
// are settled: they no longer move, are not chased, and cannot be
// captured.
func (w World) Escaped(p Point) bool { return p == w.Exit }

// AllEscaped reports whether every live hobbit sits on the exit cell.
func (w World) AllEscaped() bool {
	if len(w.Hobbits) == 0 {
		return false
	}
	for _, p := range w.Hobbits {
		if p != w.Exit {
			return false
		}
	}
	return true
}

// EscapedCount counts hobbits on the current exit cell.
func (w World) EscapedCount() int {
	n := 0
	for _, p := range w.Hobbits {
		if p == w.Exit {
			n++
		}
	}
	return n
}

// chaseTargets lists the positions wraiths may pursue: every live,
// non-exited hobbit, in stable id order so nearest-target ties
// resolve deterministically.
func (w World) chaseTargets() []Point {
	targets := make([]Point, 0, len(w.Hobbits))
	for _, id := range w.HobbitIDs() {
		if p := w.Hobbits[id]; !w.Escaped(p) {
			targets = append(targets, p)
		}
	}
	return targets
}

// clone copies the mutable entity state. Terrain is immutable for the
// lifetime of a map and stays shared.
func (w World) clone() World {
	hobbits := make(map[int]Point, len(w.Hobbits))
	for id, p := range w.Hobbits {
		hobbits[id] = p
	}
	wraiths := make([]Point, len(w.Wraiths))
	copy(wraiths, w.Wraiths)
	w.Hobbits = hobbits
	w.Wraiths = wraiths
	return w
}
