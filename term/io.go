package term

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/bramble"
)

// IO runs a bramble loop in a terminal. Input is drained from the screen's
// event queue without blocking, so the loop's frame pacing stays in charge.
type IO struct {
	screen   tcell.Screen
	renderer *Renderer
	bindings map[string]bramble.InputAction

	mouse   bramble.Point
	buttons tcell.ButtonMask
}

// keyAliases maps alternative binding names onto tcell's key names.
var keyAliases = map[string]string{
	"escape":     "esc",
	"return":     "enter",
	"arrowup":    "up",
	"arrowdown":  "down",
	"arrowleft":  "left",
	"arrowright": "right",
	"space":      " ",
}

func normalizeKey(name string) string {
	if len([]rune(name)) == 1 {
		return name
	}
	lower := strings.ToLower(name)
	if alias, ok := keyAliases[lower]; ok {
		return alias
	}
	return lower
}

// NewIO creates a terminal IO on an initialized screen, with mouse reporting
// enabled and the key bindings of cfg.
func NewIO(screen tcell.Screen, cfg bramble.InputConfig) (*IO, error) {
	actions, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	bindings := make(map[string]bramble.InputAction, len(actions))
	for name, a := range actions {
		if name == "" {
			return nil, fmt.Errorf("term: empty key binding for %s", a)
		}
		bindings[normalizeKey(name)] = a
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &IO{
		screen:   screen,
		renderer: NewRenderer(screen),
		bindings: bindings,
	}, nil
}

// Renderer returns the cell renderer used by RenderOutput.
func (io *IO) Renderer() *Renderer { return io.renderer }

// ProcessInput dispatches every pending terminal event into root.
func (io *IO) ProcessInput(c *bramble.Context, root *bramble.Widget) {
	for io.screen.HasPendingEvent() {
		switch ev := io.screen.PollEvent().(type) {
		case *tcell.EventMouse:
			io.handleMouse(c, root, ev)
		case *tcell.EventKey:
			io.handleKey(c, root, ev)
		case *tcell.EventResize:
			w, h := ev.Size()
			root.Resize(bramble.NewSize(w, h))
			io.screen.Sync()
		case nil:
			return
		}
	}
}

func (io *IO) handleMouse(c *bramble.Context, root *bramble.Widget, ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := bramble.Point{X: max(x, 0), Y: max(y, 0)}
	if p != io.mouse {
		root.DispatchEvent(c, bramble.MouseMoveEvent(p, p.X-io.mouse.X, p.Y-io.mouse.Y))
		io.mouse = p
	}

	btn := ev.Buttons()
	switch {
	case btn&tcell.WheelUp != 0:
		root.DispatchEvent(c, bramble.MouseScrollEvent(p, -1))
	case btn&tcell.WheelDown != 0:
		root.DispatchEvent(c, bramble.MouseScrollEvent(p, 1))
	}

	clicks := btn & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	pressed := clicks &^ io.buttons
	io.buttons = clicks
	if pressed&tcell.Button1 != 0 {
		root.DispatchEvent(c, bramble.MouseClickEvent(p, bramble.ClickLeft))
	}
	if pressed&tcell.Button2 != 0 {
		root.DispatchEvent(c, bramble.MouseClickEvent(p, bramble.ClickRight))
	}
	if pressed&tcell.Button3 != 0 {
		root.DispatchEvent(c, bramble.MouseClickEvent(p, bramble.ClickMiddle))
	}
}

func (io *IO) handleKey(c *bramble.Context, root *bramble.Widget, ev *tcell.EventKey) {
	var name string
	if ev.Key() == tcell.KeyRune {
		name = string(ev.Rune())
	} else {
		name = normalizeKey(tcell.KeyNames[ev.Key()])
	}
	action, ok := io.bindings[name]
	if !ok {
		return
	}
	root.DispatchEvent(c, bramble.KeyPressEvent(io.mouse, action))
}

// RenderOutput clears the screen, draws root and shows the result.
func (io *IO) RenderOutput(root *bramble.Widget, millis uint32) {
	io.screen.Clear()
	root.Draw(io.renderer, millis)
	io.screen.Show()
}
