package term

import "github.com/mattn/go-runewidth"

// CellFont measures text in terminal cells: every line is one cell high and
// a rune advances by its display width, so CJK and other wide runes take two
// cells.
type CellFont struct{}

func (CellFont) LineHeight() float64 { return 1 }

// Base puts the baseline at the bottom of the cell.
func (CellFont) Base() float64 { return 1 }

func (CellFont) Advance(r rune) float64 {
	return float64(runewidth.RuneWidth(r))
}
