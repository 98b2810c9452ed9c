package sim

import "fmt"

// Event is a closed set of simulation occurrences. Each variant
// carries its structured payload; narration is a pure function over
// the variant, matched exhaustively instead of through a lookup table
// with a silent fallback.
type Event interface {
	Kind() string
}

type StageEntered struct {
	Tick    int    `json:"tick"`
	MapID   string `json:"map_id"`
	MapName string `json:"map_name"`
	Hobbits int    `json:"hobbits"`
	Wraiths int    `json:"wraiths"`
}

func (StageEntered) Kind() string { return "stage_entered" }

type StageCleared struct {
	Tick    int    `json:"tick"`
	MapID   string `json:"map_id"`
	MapName string `json:"map_name"`
}

func (StageCleared) Kind() string { return "stage_cleared" }

type HobbitEscaped struct {
	Tick int   `json:"tick"`
	ID   int   `json:"id"`
	At   Point `json:"at"`
}

func (HobbitEscaped) Kind() string { return "hobbit_escaped" }

type HobbitCaptured struct {
	Tick int   `json:"tick"`
	ID   int   `json:"id"`
	At   Point `json:"at"`
}

func (HobbitCaptured) Kind() string { return "hobbit_captured" }

type RunEnded struct {
	Tick     int     `json:"tick"`
	Outcome  Outcome `json:"outcome"`
	Escaped  int     `json:"hobbits_escaped"`
	Captured int     `json:"hobbits_captured"`
}

func (RunEnded) Kind() string { return "run_ended" }

// Narrate renders one event as a log line.
func Narrate(ev Event) string {
	switch e := ev.(type) {
	case StageEntered:
		return fmt.Sprintf("the company enters %s: %d hobbits, %d wraiths abroad", e.MapName, e.Hobbits, e.Wraiths)
	case StageCleared:
		return fmt.Sprintf("every hobbit has slipped out of %s", e.MapName)
	case HobbitEscaped:
		return fmt.Sprintf("hobbit %d reaches the exit at (%d,%d)", e.ID, e.At.X, e.At.Y)
	case HobbitCaptured:
		return fmt.Sprintf("hobbit %d is run down at (%d,%d)", e.ID, e.At.X, e.At.Y)
	case RunEnded:
		switch e.Outcome {
		case Victory:
			return fmt.Sprintf("the journey ends in safety after %d ticks: %d hobbits escaped", e.Tick, e.Escaped)
		case Defeat:
			return fmt.Sprintf("the journey ends in ruin after %d ticks: %d hobbits taken", e.Tick, e.Captured)
		default:
			return fmt.Sprintf("the journey is cut short after %d ticks", e.Tick)
		}
	default:
		return fmt.Sprintf("unhandled event %q", e.Kind())
	}
}
