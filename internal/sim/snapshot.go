package sim

// Render symbols, matching the classic text board: '.' empty ground,
// 'S' entry, 'R' exit, 'H' hobbit, 'N' wraith.
const (
	SymbolGround  = '.'
	SymbolTerrain = '#'
	SymbolEntry   = 'S'
	SymbolExit    = 'R'
	SymbolHobbit  = 'H'
	SymbolWraith  = 'N'
)

// Cell is one draw instruction for a renderer.
type Cell struct {
	Pos    Point `json:"pos"`
	Symbol rune  `json:"symbol"`
}

// Cells lists draw instructions for the current snapshot in paint
// order: terrain, entry and exit markers, hobbits, wraiths. Later
// entries win when a renderer paints in order, so an agent standing
// on a marker covers it. Terrain is emitted in row-major order to
// keep output deterministic.
func (w World) Cells() []Cell {
	cells := make([]Cell, 0, len(w.Terrain)+len(w.Hobbits)+len(w.Wraiths)+2)
	for y := 0; y < w.Dims.Height; y++ {
		for x := 0; x < w.Dims.Width; x++ {
			if p := (Point{X: x, Y: y}); w.Terrain.Blocked(p) {
				cells = append(cells, Cell{Pos: p, Symbol: SymbolTerrain})
			}
		}
	}
	cells = append(cells,
		Cell{Pos: w.Entry, Symbol: SymbolEntry},
		Cell{Pos: w.Exit, Symbol: SymbolExit},
	)
	for _, id := range w.HobbitIDs() {
		cells = append(cells, Cell{Pos: w.Hobbits[id], Symbol: SymbolHobbit})
	}
	for _, p := range w.Wraiths {
		cells = append(cells, Cell{Pos: p, Symbol: SymbolWraith})
	}
	return cells
}
