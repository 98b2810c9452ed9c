// Package render draws world snapshots as text. It consumes the
// core's cell query and never feeds anything back.
package render

import (
	"strings"

	"hobbit_sim/internal/sim"
)

// Text renders the world as space-joined rows, top row first.
func Text(w sim.World) string {
	rows := make([][]rune, w.Dims.Height)
	for y := range rows {
		row := make([]rune, w.Dims.Width)
		for x := range row {
			row[x] = sim.SymbolGround
		}
		rows[y] = row
	}
	for _, c := range w.Cells() {
		rows[c.Pos.Y][c.Pos.X] = c.Symbol
	}

	var b strings.Builder
	for y, row := range rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, r := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
