// Package watch runs a simulation interactively in the terminal,
// redrawing the board once per tick.
package watch

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"hobbit_sim/internal/sim"
)

var symbolStyles = map[rune]tcell.Style{
	sim.SymbolTerrain: tcell.StyleDefault.Foreground(tcell.ColorGray),
	sim.SymbolEntry:   tcell.StyleDefault.Foreground(tcell.ColorBlue),
	sim.SymbolExit:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
	sim.SymbolHobbit:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	sim.SymbolWraith:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
}

// Run steps the runner at the given cadence until it reaches a
// terminal outcome or the user quits (q, Esc or Ctrl-C). The final
// board stays on screen until a key is pressed.
func Run(r *sim.Runner, interval time.Duration) (sim.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return r.Result(), err
	}
	if err := screen.Init(); err != nil {
		return r.Result(), err
	}
	defer screen.Fini()

	quit := make(chan struct{})
	keys := make(chan struct{}, 1)
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return
				}
				select {
				case keys <- struct{}{}:
				default:
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
		}
	}()

	draw(screen, r)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for r.State() == sim.Running {
		select {
		case <-quit:
			return r.Result(), nil
		case <-ticker.C:
			r.Step()
			draw(screen, r)
		}
	}

	// Hold the final frame until the user acknowledges it.
	select {
	case <-quit:
	case <-keys:
	}
	return r.Result(), nil
}

func draw(screen tcell.Screen, r *sim.Runner) {
	w := r.World()
	screen.Clear()
	ground := tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	for y := 0; y < w.Dims.Height; y++ {
		for x := 0; x < w.Dims.Width; x++ {
			screen.SetContent(x*2, y, sim.SymbolGround, nil, ground)
		}
	}
	for _, c := range w.Cells() {
		style, ok := symbolStyles[c.Symbol]
		if !ok {
			style = tcell.StyleDefault
		}
		screen.SetContent(c.Pos.X*2, c.Pos.Y, c.Symbol, nil, style)
	}

	status := fmt.Sprintf("%s  tick %d  hobbits %d/%d  escaped %d  [q to quit]",
		w.MapName, w.Tick, len(w.Hobbits), w.StartingHobbits, w.EscapedCount())
	if r.State() != sim.Running {
		res := r.Result()
		status = fmt.Sprintf("%s after %d ticks  escaped %d  captured %d  [any key to close]",
			res.Outcome, res.Ticks, res.Escaped, res.Captured)
	}
	for i, ch := range status {
		screen.SetContent(i, w.Dims.Height+1, ch, nil, tcell.StyleDefault)
	}
	screen.Show()
}
