package sim

import (
	"strings"
	"testing"

	"hobbit_sim/internal/config"
)

func singleMap(def config.MapDef) *config.Catalog {
	return &config.Catalog{Maps: []config.MapDef{def}}
}

func TestNewRunnerUnknownMapFailsFast(t *testing.T) {
	catalog := singleMap(config.MapDef{
		ID: "shire", Width: 5, Height: 5,
		Exit:         config.PointDef{X: 4, Y: 4},
		HobbitSpawns: []config.PointDef{{X: 0, Y: 0}},
	})
	if _, err := NewRunner(catalog, "mordor", Options{}); err == nil {
		t.Fatal("unknown start map should be rejected")
	} else if !strings.Contains(err.Error(), "mordor") {
		t.Fatalf("error should name the bad id, got %v", err)
	}
}

// The reference scenario: three hobbits flee a lone wraith across a
// bordered 20x20 field and must all reach the exit well inside the
// tick budget, untouched.
func TestJourneyVictory(t *testing.T) {
	catalog := singleMap(config.MapDef{
		ID: "wilds", Name: "The Wilds",
		Width: 20, Height: 20, Border: true,
		Entry: config.PointDef{X: 1, Y: 1},
		Exit:  config.PointDef{X: 18, Y: 18},
		HobbitSpawns: []config.PointDef{
			{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 2},
		},
		WraithSpawns: []config.PointDef{{X: 18, Y: 5}},
	})
	r, err := NewRunner(catalog, "wilds", Options{Budget: 50})
	if err != nil {
		t.Fatal(err)
	}
	res := r.Run()
	if res.Outcome != Victory {
		t.Fatalf("outcome = %v after %d ticks, want VICTORY", res.Outcome, res.Ticks)
	}
	if res.Escaped != 3 || res.Captured != 0 {
		t.Fatalf("escaped=%d captured=%d, want 3/0", res.Escaped, res.Captured)
	}
	if res.Ticks >= 50 {
		t.Fatalf("victory took %d ticks, want under 50", res.Ticks)
	}
}

// A hobbit trapped in a dead-end corridor is overtaken: the overlap
// removes exactly that id, and the next transition check turns the
// missing hobbit into a defeat.
func TestCaptureLeadsToDefeat(t *testing.T) {
	catalog := singleMap(config.MapDef{
		ID: "corridor", Name: "The Corridor",
		Width: 10, Height: 3, Border: true,
		Entry:        config.PointDef{X: 1, Y: 1},
		Exit:         config.PointDef{X: 8, Y: 1},
		HobbitSpawns: []config.PointDef{{X: 2, Y: 1}},
		WraithSpawns: []config.PointDef{{X: 4, Y: 1}},
	})
	var events []Event
	r, err := NewRunner(catalog, "corridor", Options{Emit: func(ev Event) { events = append(events, ev) }})
	if err != nil {
		t.Fatal(err)
	}
	res := r.Run()
	if res.Outcome != Defeat {
		t.Fatalf("outcome = %v, want DEFEAT", res.Outcome)
	}
	if res.Captured != 1 || res.Escaped != 0 {
		t.Fatalf("captured=%d escaped=%d, want 1/0", res.Captured, res.Escaped)
	}
	var captured *HobbitCaptured
	for _, ev := range events {
		if c, ok := ev.(HobbitCaptured); ok {
			captured = &c
		}
	}
	if captured == nil {
		t.Fatal("no HobbitCaptured event emitted")
	}
	if captured.ID != 0 {
		t.Fatalf("captured id = %d, want 0", captured.ID)
	}
	if last, ok := events[len(events)-1].(RunEnded); !ok || last.Outcome != Defeat {
		t.Fatalf("last event = %#v, want RunEnded/DEFEAT", events[len(events)-1])
	}
}

func TestTimeoutOnBudget(t *testing.T) {
	catalog := singleMap(config.MapDef{
		ID: "wilds", Width: 20, Height: 20,
		Entry:        config.PointDef{X: 1, Y: 1},
		Exit:         config.PointDef{X: 18, Y: 18},
		HobbitSpawns: []config.PointDef{{X: 1, Y: 1}},
	})
	r, err := NewRunner(catalog, "wilds", Options{Budget: 3})
	if err != nil {
		t.Fatal(err)
	}
	res := r.Run()
	if res.Outcome != Timeout || res.Ticks != 3 {
		t.Fatalf("got %v after %d ticks, want TIMEOUT at 3", res.Outcome, res.Ticks)
	}
}

func TestMapTransitionPreservesIDs(t *testing.T) {
	catalog := &config.Catalog{Maps: []config.MapDef{
		{
			ID: "meadow", Name: "The Meadow",
			Width: 4, Height: 4,
			Exit:         config.PointDef{X: 3, Y: 3},
			HobbitSpawns: []config.PointDef{{X: 0, Y: 0}, {X: 0, Y: 1}},
		},
		{
			ID: "downs", Name: "The Downs",
			Width: 12, Height: 12,
			Exit:         config.PointDef{X: 3, Y: 0},
			WraithSpawns: []config.PointDef{{X: 11, Y: 11}},
		},
	}}
	r, err := NewRunner(catalog, "meadow", Options{Budget: 100})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 30 && r.World().MapID == "meadow"; i++ {
		r.Step()
	}
	w := r.World()
	if w.MapID != "downs" {
		t.Fatalf("never transitioned, stuck on %q at tick %d", w.MapID, w.Tick)
	}
	if len(w.Hobbits) != 2 {
		t.Fatalf("hobbit count changed across transition: %v", w.Hobbits)
	}
	for _, id := range []int{0, 1} {
		if p, ok := w.Hobbits[id]; !ok {
			t.Fatalf("hobbit id %d lost across transition", id)
		} else if p != w.Entry {
			t.Fatalf("hobbit %d at %v, want new entry %v", id, p, w.Entry)
		}
	}
	if len(w.Wraiths) != 1 || w.Wraiths[0] != (Point{11, 11}) {
		t.Fatalf("wraiths not respawned from new map: %v", w.Wraiths)
	}

	res := r.Run()
	if res.Outcome != Victory {
		t.Fatalf("outcome = %v after %d ticks, want VICTORY", res.Outcome, res.Ticks)
	}
	if res.Escaped != 2 || res.Captured != 0 {
		t.Fatalf("escaped=%d captured=%d, want 2/0", res.Escaped, res.Captured)
	}
}

// The transition check runs before the loss check, so a run still
// ends in victory when a capture leaves every remaining hobbit
// settled on the exit.
func TestVictoryAfterCapture(t *testing.T) {
	catalog := singleMap(config.MapDef{
		ID: "corridor", Name: "The Corridor",
		Width: 10, Height: 3, Border: true,
		Entry:        config.PointDef{X: 1, Y: 1},
		Exit:         config.PointDef{X: 8, Y: 1},
		HobbitSpawns: []config.PointDef{{X: 7, Y: 1}, {X: 2, Y: 1}},
		WraithSpawns: []config.PointDef{{X: 4, Y: 1}},
	})
	r, err := NewRunner(catalog, "corridor", Options{Budget: 20})
	if err != nil {
		t.Fatal(err)
	}
	res := r.Run()
	if res.Outcome != Victory {
		t.Fatalf("outcome = %v, want VICTORY", res.Outcome)
	}
	if res.Escaped != 1 || res.Captured != 1 {
		t.Fatalf("escaped=%d captured=%d, want 1/1", res.Escaped, res.Captured)
	}
}

func TestTerminalStateIsFinal(t *testing.T) {
	catalog := singleMap(config.MapDef{
		ID: "wilds", Width: 20, Height: 20,
		Entry:        config.PointDef{X: 1, Y: 1},
		Exit:         config.PointDef{X: 18, Y: 18},
		HobbitSpawns: []config.PointDef{{X: 1, Y: 1}},
	})
	r, err := NewRunner(catalog, "wilds", Options{Budget: 2})
	if err != nil {
		t.Fatal(err)
	}
	r.Run()
	before := r.Result()
	r.Step()
	r.Step()
	if after := r.Result(); after != before {
		t.Fatalf("terminal state moved: %+v -> %+v", before, after)
	}
}

func TestResultJSONUsesOutcomeNames(t *testing.T) {
	b := MarshalPretty(Result{Outcome: Victory, Ticks: 12, Escaped: 3})
	if !strings.Contains(string(b), `"VICTORY"`) {
		t.Fatalf("result JSON should spell the outcome, got %s", b)
	}
}
