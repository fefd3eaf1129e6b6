package bramble

import (
	"math"
	"strconv"
	"strings"
)

// Markup is the style applied to a run of text. A fresh Markup is derived from
// the enclosing style for every run, mutated by the run's directives, and
// dropped once the run is drawn.
type Markup struct {
	Color Color
	Scale float64
	// PosX and PosY, when set, move the pen to an absolute offset from the
	// text origin.
	PosX, PosY *float64
	// Image names an image drawn inline in place of the run's first glyph.
	Image *string
	Font  Font
}

// NewMarkup returns a style with the given font, white color and unit scale.
func NewMarkup(font Font) *Markup {
	return &Markup{Color: ColorWhite, Scale: 1, Font: font}
}

// MarkupFromTextParams builds the default style for a themed widget.
func MarkupFromTextParams(tp TextParams, font Font) *Markup {
	m := NewMarkup(font)
	if tp.Color != "" {
		if c, err := ParseColor(tp.Color); err == nil {
			m.Color = c
		} else {
			logWarnf("text params: %v", err)
		}
	}
	if tp.Scale > 0 {
		m.Scale = tp.Scale
	}
	return m
}

// Derive copies the inheritable fields of m. Position overrides and images
// apply to a single run only and are not inherited.
func (m *Markup) Derive() *Markup {
	return &Markup{Color: m.Color, Scale: m.Scale, Font: m.Font}
}

type markupKind uint8

const (
	markupNone markupKind = iota
	markupColor
	markupScale
	markupPosX
	markupPosY
	markupImage
	markupFont
)

func tagKind(c rune) markupKind {
	switch c {
	case 'c':
		return markupColor
	case 's':
		return markupScale
	case 'x':
		return markupPosX
	case 'y':
		return markupPosY
	case 'i':
		return markupImage
	case 'f':
		return markupFont
	}
	return markupNone
}

// ParseMarkup applies the directives in text on top of a style derived from
// defaults. Each directive is a tag letter (c, s, x, y, i or f) followed by a
// value and terminated by ';'. '=' and spaces inside a directive are ignored,
// so "c=ff0000ff;" and "c ff0000ff;" are equivalent. A trailing directive with
// no ';' is still applied. Bad values are logged and never fail the run.
func ParseMarkup(text string, defaults *Markup, fonts FontLookup) *Markup {
	m := defaults.Derive()
	kind := markupNone
	var buf strings.Builder

	for _, c := range text {
		if kind == markupNone {
			kind = tagKind(c)
			continue
		}
		switch c {
		case '=', ' ':
		case ';':
			m.apply(kind, buf.String(), fonts)
			buf.Reset()
			kind = markupNone
		default:
			buf.WriteRune(c)
		}
	}
	if kind != markupNone {
		m.apply(kind, buf.String(), fonts)
	}
	return m
}

func (m *Markup) apply(kind markupKind, value string, fonts FontLookup) {
	switch kind {
	case markupColor:
		c, err := ParseColor(value)
		if err != nil {
			logWarnf("markup: %v", err)
			return
		}
		m.Color = c
	case markupScale:
		v := parseMarkupFloat(value)
		if v <= 0 {
			logWarnf("markup: scale must be positive, got '%s'", value)
			return
		}
		m.Scale = v
	case markupPosX:
		v := parseMarkupFloat(value)
		m.PosX = &v
	case markupPosY:
		v := parseMarkupFloat(value)
		m.PosY = &v
	case markupImage:
		v := value
		m.Image = &v
	case markupFont:
		if fonts == nil {
			logWarnf("markup: no font lookup for font '%s'", value)
			return
		}
		f, ok := fonts.Font(value)
		if !ok {
			logWarnf("markup: font not found '%s'", value)
			return
		}
		m.Font = f
	}
}

func parseMarkupFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		logWarnf("markup: unable to parse float from format string '%s'", s)
		return 1
	}
	return v
}

// YOffset is how far an enlarged glyph is raised, in line heights, so that it
// keeps the baseline of unscaled text instead of growing downward.
func (m *Markup) YOffset() float64 {
	if m.Font == nil || m.Font.LineHeight() == 0 {
		return 0
	}
	return (m.Scale - 1) * m.Font.Base() / m.Font.LineHeight()
}

// LineHeight returns the scaled line height of the current font.
func (m *Markup) LineHeight() float64 {
	if m.Font == nil {
		return 0
	}
	return m.Font.LineHeight() * m.Scale
}

// AddGlyph emits ch with its top-left pen position at (x, y) and returns the
// scaled advance.
func (m *Markup) AddGlyph(r Renderer, ch rune, x, y float64) float64 {
	if m.Font == nil {
		return 0
	}
	r.DrawGlyph(Glyph{
		Rune:  ch,
		X:     x,
		Y:     y - m.YOffset()*m.Font.LineHeight(),
		Scale: m.Scale,
		Color: m.Color,
		Font:  m.Font,
	})
	return m.Font.Advance(ch) * m.Scale
}

// DrawMarkupText draws s at (x, y) and returns the width of its widest line.
//
// Styled runs are written as [directives|text]; the directives are parsed
// with ParseMarkup against the enclosing style, and the style is restored at
// the closing bracket. Runs nest. An opening bracket with no '|' after it is
// drawn as text.
func DrawMarkupText(r Renderer, s string, x, y float64, defaults *Markup, fonts FontLookup) float64 {
	cur := defaults
	var stack []*Markup
	var directive strings.Builder
	inDirective := false
	penX, penY := x, y
	width := 0.0

	for _, ch := range s {
		if inDirective {
			if ch != '|' {
				directive.WriteRune(ch)
				continue
			}
			inDirective = false
			stack = append(stack, cur)
			cur = ParseMarkup(directive.String(), cur, fonts)
			directive.Reset()
			if cur.PosX != nil {
				penX = x + *cur.PosX
			}
			if cur.PosY != nil {
				penY = y + *cur.PosY
			}
			if cur.Image != nil {
				side := cur.LineHeight()
				r.DrawQuad(Quad{X: penX, Y: penY, Width: side, Height: side, Color: cur.Color, Image: *cur.Image})
				penX += side
			}
			width = max(width, penX-x)
			continue
		}

		switch {
		case ch == '[':
			inDirective = true
		case ch == ']' && len(stack) > 0:
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		case ch == '\n':
			penX = x
			penY += defaults.LineHeight()
		default:
			penX += cur.AddGlyph(r, ch, penX, penY)
			width = max(width, penX-x)
		}
	}

	// A '[' never followed by '|' is plain text.
	if inDirective {
		for _, ch := range "[" + directive.String() {
			if ch == '\n' {
				penX = x
				penY += defaults.LineHeight()
				continue
			}
			penX += cur.AddGlyph(r, ch, penX, penY)
			width = max(width, penX-x)
		}
	}
	return width
}

// MeasureMarkupText returns the width DrawMarkupText would report.
func MeasureMarkupText(s string, defaults *Markup, fonts FontLookup) float64 {
	return DrawMarkupText(discardRenderer{}, s, 0, 0, defaults, fonts)
}
