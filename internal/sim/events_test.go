package sim

import (
	"strings"
	"testing"
)

func TestNarrateCoversEveryKind(t *testing.T) {
	events := []Event{
		StageEntered{Tick: 0, MapID: "shire", MapName: "The Shire", Hobbits: 3, Wraiths: 1},
		StageCleared{Tick: 20, MapID: "shire", MapName: "The Shire"},
		HobbitEscaped{Tick: 18, ID: 1, At: Point{18, 18}},
		HobbitCaptured{Tick: 9, ID: 0, At: Point{4, 4}},
		RunEnded{Tick: 30, Outcome: Victory, Escaped: 3},
		RunEnded{Tick: 12, Outcome: Defeat, Captured: 1},
		RunEnded{Tick: 50, Outcome: Timeout},
	}
	for _, ev := range events {
		line := Narrate(ev)
		if line == "" || line == ev.Kind() {
			t.Errorf("%s has no narration", ev.Kind())
		}
	}
	if line := Narrate(RunEnded{Tick: 30, Outcome: Victory, Escaped: 3}); !strings.Contains(line, "3") {
		t.Errorf("victory narration should carry the escape count: %q", line)
	}
}

type mysteryEvent struct{}

func (mysteryEvent) Kind() string { return "mystery" }

func TestNarrateUnknownKindIsLoud(t *testing.T) {
	line := Narrate(mysteryEvent{})
	if !strings.Contains(line, "unhandled") || !strings.Contains(line, "mystery") {
		t.Fatalf("unhandled variant should be called out, got %q", line)
	}
}

func TestOutcomeStrings(t *testing.T) {
	cases := map[Outcome]string{
		Running: "RUNNING",
		Victory: "VICTORY",
		Defeat:  "DEFEAT",
		Timeout: "TIMEOUT",
	}
	for o, want := range cases {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(o), got, want)
		}
	}
}
