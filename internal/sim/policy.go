package sim

// DangerDistance is the Manhattan radius at which a hobbit abandons
// goal-seeking and evades the nearest wraith.
const DangerDistance = 6

// Default per-tick sub-step counts. The wraith speed feeds
// StepWithSpeed, so higher values still never jump blocked cells.
const (
	DefaultHobbitSpeed = 2
	DefaultWraithSpeed = 1
)

// hobbitSubStep picks one validated step for a hobbit at cur. Wraith
// positions are the pre-move snapshot for this tick; occupied holds
// the cells claimed by other hobbits (claimed destinations of already
// processed hobbits plus current cells of unprocessed ones), so no
// two non-exited hobbits can end the tick stacked.
//
// Within danger range the candidates are tried in priority order:
// goal-biased flight, the two perpendicular dodges (goal-nearest
// first), then a plain step toward the goal. Outside danger range the
// goal step is the only candidate. When everything is blocked the
// hobbit stands still, which is a valid outcome, not a failure.
func hobbitSubStep(cur Point, wraiths []Point, w World, occupied map[Point]bool) Point {
	valid := func(p Point) bool {
		if !IsPassable(p, w.Dims, w.Terrain) {
			return false
		}
		// Stacking is allowed on the exit cell only.
		return p == w.Exit || !occupied[p]
	}

	threat, dist := Nearest(cur, wraiths)
	var candidates []Point
	if dist <= DangerDistance {
		esc := PerpendicularEscapes(cur, threat)
		a, b := esc[0], esc[1]
		if Manhattan(b, w.Exit) < Manhattan(a, w.Exit) {
			a, b = b, a
		}
		candidates = []Point{StepAwayBiased(cur, threat, w.Exit), a, b, StepToward(cur, w.Exit)}
	} else {
		candidates = []Point{StepToward(cur, w.Exit)}
	}
	for _, c := range candidates {
		if c != cur && valid(c) {
			return c
		}
	}
	return cur
}

// moveHobbits runs the hobbit step policy for every live hobbit, in
// stable id order, speed sub-steps each. Perception is re-evaluated
// after every sub-step, so a hobbit can change its mind mid-turn.
// Returns the ids that reached the exit this tick, in id order.
func moveHobbits(w *World, speed int) []int {
	occupied := make(map[Point]bool, len(w.Hobbits))
	for _, p := range w.Hobbits {
		occupied[p] = true
	}

	var arrived []int
	for _, id := range w.HobbitIDs() {
		cur := w.Hobbits[id]
		if w.Escaped(cur) {
			continue
		}
		delete(occupied, cur)
		pos := cur
		for s := 0; s < speed; s++ {
			pos = hobbitSubStep(pos, w.Wraiths, *w, occupied)
		}
		occupied[pos] = true
		w.Hobbits[id] = pos
		if w.Escaped(pos) {
			arrived = append(arrived, id)
		}
	}
	return arrived
}

// moveWraiths advances every wraith one turn toward its nearest
// non-exited hobbit, using the hobbits' already-committed positions.
// Occupancy mirrors the hobbit pass: claimed is seeded with every
// wraith's current cell, a wraith releases its own cell when its turn
// starts and claims its committed destination after. A wraith whose
// destination is claimed yields and stays put, and a wraith stopped
// by terrain keeps a cell no earlier mover can have taken. Wraiths
// may land on a hobbit's cell; the returned destination set is the
// capture signal the runner reads afterwards.
func moveWraiths(w *World, speed int) map[Point]bool {
	targets := w.chaseTargets()
	claimed := make(map[Point]bool, len(w.Wraiths))
	for _, p := range w.Wraiths {
		claimed[p] = true
	}
	for i, cur := range w.Wraiths {
		delete(claimed, cur)
		dest := cur
		if len(targets) > 0 {
			tgt, _ := Nearest(cur, targets)
			dest = StepWithSpeed(cur, tgt, speed, w.Dims, w.Terrain)
			if claimed[dest] {
				dest = cur
			}
		}
		claimed[dest] = true
		w.Wraiths[i] = dest
	}
	return claimed
}
