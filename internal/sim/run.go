package sim

import (
	"encoding/json"
	"fmt"

	"hobbit_sim/internal/config"
)

// Outcome is the simulation state machine's state. Terminal outcomes
// are final: no transition leaves them.
type Outcome int

const (
	Running Outcome = iota
	Victory
	Defeat
	Timeout
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "RUNNING"
	case Victory:
		return "VICTORY"
	case Defeat:
		return "DEFEAT"
	case Timeout:
		return "TIMEOUT"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) MarshalJSON() ([]byte, error) { return json.Marshal(o.String()) }

// Result is the terminal record of one run.
type Result struct {
	Outcome  Outcome `json:"outcome"`
	Ticks    int     `json:"ticks"`
	Escaped  int     `json:"hobbits_escaped"`
	Captured int     `json:"hobbits_captured"`
}

// Options tune one run. Zero speeds take the defaults; Budget 0 means
// no tick limit. Emit and Observer are optional collaborator hooks
// and may be nil.
type Options struct {
	HobbitSpeed int
	WraithSpeed int
	Budget      int
	Emit        func(Event)
	Observer    func(World)
}

// Runner drives the world through ticks and map transitions until a
// terminal outcome. It owns the world exclusively; policies see
// per-tick snapshots and only propose moves.
type Runner struct {
	catalog  *config.Catalog
	mapIndex int
	opts     Options
	world    World
	state    Outcome
	captured int
}

// NewRunner spawns the journey at the map startID names. An unknown
// id is a caller defect and fails immediately.
func NewRunner(catalog *config.Catalog, startID string, opts Options) (*Runner, error) {
	idx, err := catalog.IndexOf(startID)
	if err != nil {
		return nil, err
	}
	if opts.HobbitSpeed <= 0 {
		opts.HobbitSpeed = DefaultHobbitSpeed
	}
	if opts.WraithSpeed <= 0 {
		opts.WraithSpeed = DefaultWraithSpeed
	}
	def := &catalog.Maps[idx]
	hobbits := make(map[int]Point, len(def.HobbitSpawns))
	for i, s := range def.HobbitSpawns {
		hobbits[i] = Point{X: s.X, Y: s.Y}
	}
	r := &Runner{catalog: catalog, mapIndex: idx, opts: opts, state: Running}
	r.world = newWorld(def, hobbits, 0)
	r.emit(StageEntered{
		Tick:    0,
		MapID:   def.ID,
		MapName: def.Name,
		Hobbits: len(hobbits),
		Wraiths: r.world.StartingWraiths,
	})
	return r, nil
}

func (r *Runner) emit(ev Event) {
	if r.opts.Emit != nil {
		r.opts.Emit(ev)
	}
}

func (r *Runner) observe() {
	if r.opts.Observer != nil {
		r.opts.Observer(r.world)
	}
}

// State reports the current state machine state.
func (r *Runner) State() Outcome { return r.state }

// World returns the latest snapshot. Callers must treat it as
// read-only.
func (r *Runner) World() World { return r.world }

// Result summarizes the run so far.
func (r *Runner) Result() Result {
	return Result{
		Outcome:  r.state,
		Ticks:    r.world.Tick,
		Escaped:  r.world.EscapedCount(),
		Captured: r.captured,
	}
}

// Step performs one state machine transition: budget check, exit /
// map-transition check, loss check, then a movement tick. A map
// transition consumes the call but not a tick. Calling Step in a
// terminal state is a no-op.
func (r *Runner) Step() {
	if r.state != Running {
		return
	}
	if r.opts.Budget > 0 && r.world.Tick >= r.opts.Budget {
		r.finish(Timeout)
		return
	}
	if r.world.AllEscaped() {
		if r.mapIndex+1 < len(r.catalog.Maps) {
			r.advanceMap()
			return
		}
		r.finish(Victory)
		return
	}
	if len(r.world.Hobbits) < r.world.StartingHobbits {
		r.finish(Defeat)
		return
	}
	r.tick()
}

// Run drives the state machine to a terminal outcome and returns the
// run record.
func (r *Runner) Run() Result {
	for r.state == Running {
		r.Step()
	}
	return r.Result()
}

// tick moves every agent once: hobbits first in stable id order, then
// wraiths against the hobbits' committed positions, then end-of-tick
// capture resolution.
func (r *Runner) tick() {
	w := r.world.clone()

	arrived := moveHobbits(&w, r.opts.HobbitSpeed)
	for _, id := range arrived {
		r.emit(HobbitEscaped{Tick: w.Tick, ID: id, At: w.Hobbits[id]})
	}

	wraithCells := moveWraiths(&w, r.opts.WraithSpeed)

	for _, id := range w.HobbitIDs() {
		p := w.Hobbits[id]
		if w.Escaped(p) || !wraithCells[p] {
			continue
		}
		delete(w.Hobbits, id)
		r.captured++
		r.emit(HobbitCaptured{Tick: w.Tick, ID: id, At: p})
	}

	w.Tick++
	r.world = w
	r.observe()
}

// advanceMap moves the journey to the next stage: surviving hobbit
// ids transfer to the new entry cell, wraiths respawn fresh from the
// new map's spawn list, terrain and bounds reset.
func (r *Runner) advanceMap() {
	r.emit(StageCleared{Tick: r.world.Tick, MapID: r.world.MapID, MapName: r.world.MapName})
	r.mapIndex++
	def := &r.catalog.Maps[r.mapIndex]
	entry := Point{X: def.Entry.X, Y: def.Entry.Y}
	hobbits := make(map[int]Point, len(r.world.Hobbits))
	for id := range r.world.Hobbits {
		hobbits[id] = entry
	}
	r.world = newWorld(def, hobbits, r.world.Tick)
	r.emit(StageEntered{
		Tick:    r.world.Tick,
		MapID:   def.ID,
		MapName: def.Name,
		Hobbits: len(hobbits),
		Wraiths: r.world.StartingWraiths,
	})
	r.observe()
}

func (r *Runner) finish(o Outcome) {
	r.state = o
	res := r.Result()
	r.emit(RunEnded{Tick: res.Ticks, Outcome: o, Escaped: res.Escaped, Captured: res.Captured})
}

// MarshalPretty renders v as indented JSON for result files.
func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
