package bramble

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// EbitenIO reads input from Ebitengine and records the tree into a
// CommandBuffer that Game.Draw submits to the screen. Pixel coordinates are
// the UI coordinates.
type EbitenIO struct {
	// Fallback draws glyphs of fonts that have no page image, such as cell
	// fonts. Nil skips them.
	Fallback *TTFFont

	bindings map[ebiten.Key]InputAction
	buf      *CommandBuffer
	pages    map[*BitmapFont]*ebiten.Image
	white    *ebiten.Image
	mouse    Point
	keys     []ebiten.Key
}

// NewEbitenIO creates an IO using the key bindings of cfg.
func NewEbitenIO(cfg InputConfig) (*EbitenIO, error) {
	actions, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	bindings := make(map[ebiten.Key]InputAction, len(actions))
	for name, a := range actions {
		k, err := ebitenKey(name)
		if err != nil {
			return nil, err
		}
		bindings[k] = a
	}
	return &EbitenIO{
		bindings: bindings,
		buf:      NewCommandBuffer(1024),
		pages:    make(map[*BitmapFont]*ebiten.Image),
	}, nil
}

var ebitenKeyAliases = map[string]ebiten.Key{
	"up":     ebiten.KeyArrowUp,
	"down":   ebiten.KeyArrowDown,
	"left":   ebiten.KeyArrowLeft,
	"right":  ebiten.KeyArrowRight,
	"esc":    ebiten.KeyEscape,
	"return": ebiten.KeyEnter,
	"pgup":   ebiten.KeyPageUp,
	"pgdn":   ebiten.KeyPageDown,
}

// ebitenKey resolves a binding name: an alias, a single letter or digit, or
// any ebiten.Key name such as "Escape" or "ArrowUp", case-insensitively.
func ebitenKey(name string) (ebiten.Key, error) {
	lower := strings.ToLower(name)
	if k, ok := ebitenKeyAliases[lower]; ok {
		return k, nil
	}
	if len(lower) == 1 && lower[0] >= '0' && lower[0] <= '9' {
		lower = "digit" + lower
	}
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.ToLower(k.String()) == lower {
			return k, nil
		}
	}
	return 0, fmt.Errorf("bramble: unknown key %q", name)
}

// SetFontPage registers the page image glyphs of f are cut from.
func (e *EbitenIO) SetFontPage(f *BitmapFont, page *ebiten.Image) {
	e.pages[f] = page
}

// Buffer returns the commands of the last recorded frame.
func (e *EbitenIO) Buffer() *CommandBuffer { return e.buf }

// ProcessInput converts this tick's cursor motion, button presses, wheel
// movement and bound key presses into events, in that order.
func (e *EbitenIO) ProcessInput(c *Context, root *Widget) {
	mx, my := ebiten.CursorPosition()
	p := Point{X: max(mx, 0), Y: max(my, 0)}
	if p != e.mouse {
		root.DispatchEvent(c, MouseMoveEvent(p, p.X-e.mouse.X, p.Y-e.mouse.Y))
		e.mouse = p
	}

	for _, b := range [...]struct {
		button ebiten.MouseButton
		kind   ClickKind
	}{
		{ebiten.MouseButtonLeft, ClickLeft},
		{ebiten.MouseButtonRight, ClickRight},
		{ebiten.MouseButtonMiddle, ClickMiddle},
	} {
		if inpututil.IsMouseButtonJustPressed(b.button) {
			root.DispatchEvent(c, MouseClickEvent(p, b.kind))
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		// Wheel up scrolls content up, which is a negative line count.
		root.DispatchEvent(c, MouseScrollEvent(p, -int(dy)))
	}

	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		if a, ok := e.bindings[k]; ok {
			root.DispatchEvent(c, KeyPressEvent(p, a))
		}
	}
}

// RenderOutput records root into the IO's buffer.
func (e *EbitenIO) RenderOutput(root *Widget, millis uint32) {
	e.buf.Reset()
	e.buf.Millis = millis
	root.Draw(e.buf, millis)
}

// SubmitCommands draws buf onto target in recording order.
func (e *EbitenIO) SubmitCommands(target *ebiten.Image, buf *CommandBuffer) {
	var op ebiten.DrawImageOptions
	for i := range buf.Commands {
		cmd := &buf.Commands[i]
		switch cmd.Type {
		case CommandQuad:
			q := cmd.Quad
			e.fillRect(target, &op, q.X, q.Y, q.Width, q.Height, q.Color)
		case CommandFill:
			f := cmd.Fill
			e.fillRect(target, &op, float64(f.Position.X), float64(f.Position.Y),
				float64(f.Size.Width), float64(f.Size.Height), f.Color)
		case CommandGlyph:
			e.drawGlyph(target, &op, &cmd.Glyph)
		}
	}
}

func (e *EbitenIO) whitePixel() *ebiten.Image {
	if e.white == nil {
		e.white = ebiten.NewImage(1, 1)
		e.white.Fill(color.White)
	}
	return e.white
}

func (e *EbitenIO) fillRect(target *ebiten.Image, op *ebiten.DrawImageOptions, x, y, w, h float64, c Color) {
	if w <= 0 || h <= 0 || c.A == 0 {
		return
	}
	op.GeoM.Reset()
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	setColorScale(op, c)
	target.DrawImage(e.whitePixel(), op)
}

func (e *EbitenIO) drawGlyph(target *ebiten.Image, op *ebiten.DrawImageOptions, g *Glyph) {
	switch f := g.Font.(type) {
	case *BitmapFont:
		if page, ok := e.pages[f]; ok {
			x, y, w, h, offX, offY, ok := f.GlyphRegion(g.Rune)
			if !ok || w == 0 || h == 0 {
				return
			}
			sub := page.SubImage(image.Rect(x, y, x+w, y+h)).(*ebiten.Image)
			op.GeoM.Reset()
			op.GeoM.Translate(float64(offX), float64(offY))
			op.GeoM.Scale(g.Scale, g.Scale)
			op.GeoM.Translate(g.X, g.Y)
			setColorScale(op, g.Color)
			target.DrawImage(sub, op)
			return
		}
	case *TTFFont:
		drawTTFGlyph(target, f, g)
		return
	}
	if e.Fallback != nil {
		drawTTFGlyph(target, e.Fallback, g)
	}
}

func drawTTFGlyph(target *ebiten.Image, f *TTFFont, g *Glyph) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(g.Scale, g.Scale)
	op.GeoM.Translate(g.X, g.Y)
	op.ColorScale.Scale(float32(g.Color.R*g.Color.A), float32(g.Color.G*g.Color.A), float32(g.Color.B*g.Color.A), float32(g.Color.A))
	text.Draw(target, string(g.Rune), f.Face(), op)
}

// setColorScale applies c as a premultiplied color scale.
func setColorScale(op *ebiten.DrawImageOptions, c Color) {
	op.ColorScale.Reset()
	a := float32(c.A)
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
}

// Game adapts a Loop to ebiten.Game. Ebitengine owns the frame clock, so
// each tick runs one Loop.Step and the loop's own pacing is unused; set the
// tick rate with ebiten.SetTPS instead.
type Game struct {
	Loop          *Loop
	IO            *EbitenIO
	Width, Height int
}

// NewGame creates a game drawing at the logical size of cfg.
func NewGame(loop *Loop, io *EbitenIO, cfg DisplayConfig) *Game {
	return &Game{Loop: loop, IO: io, Width: cfg.Width, Height: cfg.Height}
}

func (g *Game) Update() error {
	exit, err := g.Loop.Step()
	if err != nil {
		return err
	}
	if exit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.IO.SubmitCommands(screen, g.IO.Buffer())
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.Width, g.Height
}

// RunGame opens a window and runs g until the loop exits. A normal exit
// returns nil.
func RunGame(g *Game, title string, frameRate int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.Width, g.Height)
	ebiten.SetTPS(frameRate)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logInfof("window closed: %s", g.Loop.Stats())
	return nil
}
