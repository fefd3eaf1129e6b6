package bramble

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is the default text and tint color.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlack is opaque black.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorTransparent has zero alpha.
	ColorTransparent = Color{}
)

// ParseColor parses a hex color of the form "rrggbb" or "rrggbbaa". A leading
// '#' is accepted and case is ignored. Six digit colors are fully opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("bramble: invalid color %q: want 6 or 8 hex digits", s)
	}
	var comps [4]float64
	comps[3] = 1
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("bramble: invalid color %q: %w", s, err)
		}
		comps[i] = float64(v) / 255
	}
	return Color{comps[0], comps[1], comps[2], comps[3]}, nil
}

// Mul returns the component-wise product of c and o.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// RGBA8 returns the color as 8-bit channels, clamping out-of-range values.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Point is an integer coordinate. The origin is the top-left corner with Y
// increasing downward.
type Point struct {
	X, Y int
}

// Add returns p offset by (x, y).
func (p Point) Add(x, y int) Point {
	return Point{p.X + x, p.Y + y}
}

// String renders the point as {x,y}.
func (p Point) String() string {
	return fmt.Sprintf("{%d,%d}", p.X, p.Y)
}

// Size is a width and height. Components are never negative.
type Size struct {
	Width, Height int
}

// NewSize returns a Size with negative components clamped to zero.
func NewSize(width, height int) Size {
	return Size{max(width, 0), max(height, 0)}
}

// Add grows (or shrinks) the size, clamping at zero.
func (s Size) Add(width, height int) Size {
	return NewSize(s.Width+width, s.Height+height)
}

// Border is per-side padding between a widget's bounds and its content area.
type Border struct {
	Top, Bottom, Left, Right int
}

// NewBorder returns a Border with negative components clamped to zero.
func NewBorder(top, bottom, left, right int) Border {
	return Border{max(top, 0), max(bottom, 0), max(left, 0), max(right, 0)}
}

// UniformBorder returns a border with the same padding on every side.
func UniformBorder(n int) Border {
	return NewBorder(n, n, n, n)
}

// Horizontal returns Left + Right.
func (b Border) Horizontal() int { return b.Left + b.Right }

// Vertical returns Top + Bottom.
func (b Border) Vertical() int { return b.Top + b.Bottom }

// ClickKind identifies the mouse button of a click.
type ClickKind uint8

const (
	ClickLeft   ClickKind = iota // primary (left) mouse button
	ClickRight                   // secondary (right) mouse button
	ClickMiddle                  // middle mouse button (scroll wheel click)
)

func (k ClickKind) String() string {
	switch k {
	case ClickLeft:
		return "left"
	case ClickRight:
		return "right"
	case ClickMiddle:
		return "middle"
	}
	return fmt.Sprintf("ClickKind(%d)", k)
}

// InputAction is a logical key action produced by key bindings.
type InputAction uint8

const (
	ActionNone InputAction = iota
	ActionShowMenu
	ActionExit
	ActionBack
	ActionAccept
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
)

var actionNames = [...]string{
	ActionNone:        "None",
	ActionShowMenu:    "ShowMenu",
	ActionExit:        "Exit",
	ActionBack:        "Back",
	ActionAccept:      "Accept",
	ActionScrollUp:    "ScrollUp",
	ActionScrollDown:  "ScrollDown",
	ActionScrollLeft:  "ScrollLeft",
	ActionScrollRight: "ScrollRight",
}

func (a InputAction) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("InputAction(%d)", a)
}

// ParseInputAction looks up an action by its name, ignoring case.
func ParseInputAction(name string) (InputAction, error) {
	for i, n := range actionNames {
		if strings.EqualFold(n, name) {
			return InputAction(i), nil
		}
	}
	return ActionNone, fmt.Errorf("bramble: unknown input action %q", name)
}
