package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/bramble"
)

// Renderer draws bramble primitives into the cells of a tcell screen. Quads
// become background colors, glyphs become foreground runes that keep the
// background underneath them, and text fills paint their rune over the whole
// region.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) DrawQuad(q bramble.Quad) {
	if q.Color.A == 0 {
		return
	}
	style := tcell.StyleDefault.Background(tcellColor(q.Color))
	x0, y0 := cell(q.X), cell(q.Y)
	x1, y1 := cell(q.X+q.Width), cell(q.Y+q.Height)
	r.fill(x0, y0, x1, y1, ' ', style)
}

func (r *Renderer) DrawGlyph(g bramble.Glyph) {
	if g.Color.A == 0 || g.Rune == ' ' {
		return
	}
	x, y := cell(g.X), cell(g.Y)
	if !r.inside(x, y) {
		return
	}
	_, _, under, _ := r.screen.GetContent(x, y)
	r.screen.SetContent(x, y, g.Rune, nil, under.Foreground(tcellColor(g.Color)))
}

func (r *Renderer) FillText(f bramble.TextFill) {
	if f.Color.A == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcellColor(f.Color))
	r.fill(f.Position.X, f.Position.Y, f.Position.X+f.Size.Width, f.Position.Y+f.Size.Height, f.Rune, style)
}

func (r *Renderer) fill(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, w), min(y1, h)
	step := max(runewidth.RuneWidth(ch), 1)
	for y := y0; y < y1; y++ {
		for x := x0; x+step <= x1; x += step {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) inside(x, y int) bool {
	w, h := r.screen.Size()
	return x >= 0 && y >= 0 && x < w && y < h
}

func cell(v float64) int {
	return int(math.Floor(v + 0.5))
}

func tcellColor(c bramble.Color) tcell.Color {
	cr, cg, cb, _ := c.RGBA8()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}
