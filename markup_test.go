package bramble

import (
	"math"
	"testing"
)

var red = Color{1, 0, 0, 1}

func defaultStyle() *Markup {
	return NewMarkup(fixedFont{advance: 10, lineHeight: 40, base: 30})
}

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestParseMarkup_Color(t *testing.T) {
	def := defaultStyle()
	m := ParseMarkup("c=ff0000ff;", def, nil)
	if m.Color != red {
		t.Errorf("Color = %v, want red", m.Color)
	}
	if m.Scale != def.Scale || m.Font != def.Font || m.PosX != nil || m.PosY != nil || m.Image != nil {
		t.Errorf("other fields changed: %+v", m)
	}
}

func TestParseMarkup_DoesNotMutateDefaults(t *testing.T) {
	def := defaultStyle()
	ParseMarkup("c=ff0000ff;s=3;", def, nil)
	if def.Color != ColorWhite || def.Scale != 1 {
		t.Errorf("defaults mutated: %+v", def)
	}
}

func TestParseMarkup_Scale(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		warning string
	}{
		{"terminated", "s=2.0;", 2, ""},
		{"unterminated", "s=1.5", 1.5, ""},
		{"spaces", "s 2.5 ;", 2.5, ""},
		{"not a number", "s=notanumber;", 1, "unable to parse float"},
		{"empty", "s=;", 1, "unable to parse float"},
		{"nan", "s=nan;", 1, "unable to parse float"},
		{"inf", "s=inf;", 1, "unable to parse float"},
		{"zero keeps previous", "s=3;s=0;", 3, "scale must be positive"},
		{"negative keeps previous", "s=-2;", 1, "scale must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t, LevelWarn)
			m := ParseMarkup(tt.in, defaultStyle(), nil)
			assertFloat(t, "Scale", m.Scale, tt.want)
			if tt.warning != "" {
				assertLogged(t, buf, tt.warning)
			} else if buf.Len() != 0 {
				t.Errorf("unexpected log output %q", buf.String())
			}
		})
	}
}

func TestParseMarkup_IgnoresUnknownLeadingCharacters(t *testing.T) {
	m := ParseMarkup("zq c=ff0000ff;", defaultStyle(), nil)
	if m.Color != red {
		t.Errorf("Color = %v, want red", m.Color)
	}
}

func TestParseMarkup_BadColorKeepsPrevious(t *testing.T) {
	buf := captureLog(t, LevelWarn)
	m := ParseMarkup("c=ff0000ff;c=nope;", defaultStyle(), nil)
	if m.Color != red {
		t.Errorf("Color = %v, want the previous red", m.Color)
	}
	assertLogged(t, buf, "invalid color")
}

// Only the first letter of a directive is its tag; later letters are value.
func TestParseMarkup_TagLetterInsideValue(t *testing.T) {
	buf := captureLog(t, LevelWarn)
	m := ParseMarkup("cf=ff0000ff;", defaultStyle(), nil)
	if m.Color != ColorWhite {
		t.Errorf("Color = %v, want the default white", m.Color)
	}
	assertLogged(t, buf, "fff0000ff")
}

func TestParseMarkup_Positions(t *testing.T) {
	m := ParseMarkup("x=12;y=3.5;", defaultStyle(), nil)
	if m.PosX == nil || m.PosY == nil {
		t.Fatalf("positions not set: %+v", m)
	}
	assertFloat(t, "PosX", *m.PosX, 12)
	assertFloat(t, "PosY", *m.PosY, 3.5)
}

func TestParseMarkup_Image(t *testing.T) {
	m := ParseMarkup("i=coin;", defaultStyle(), nil)
	if m.Image == nil || *m.Image != "coin" {
		t.Fatalf("Image = %v, want coin", m.Image)
	}
	if d := m.Derive(); d.Image != nil || d.PosX != nil {
		t.Error("Derive should not inherit image or position overrides")
	}
}

func TestParseMarkup_Font(t *testing.T) {
	big := fixedFont{advance: 20, lineHeight: 80, base: 60}
	fonts := fontMap{"big": big}

	m := ParseMarkup("f=big;", defaultStyle(), fonts)
	if m.Font != Font(big) {
		t.Errorf("Font = %v, want big", m.Font)
	}

	buf := captureLog(t, LevelWarn)
	def := defaultStyle()
	m = ParseMarkup("f=missing;", def, fonts)
	if m.Font != def.Font {
		t.Error("missing font should keep the previous font")
	}
	assertLogged(t, buf, "font not found 'missing'")
}

func TestMarkup_YOffset(t *testing.T) {
	m := defaultStyle()
	assertFloat(t, "YOffset at scale 1", m.YOffset(), 0)
	m.Scale = 2
	// (2 - 1) * 30 / 40
	assertFloat(t, "YOffset at scale 2", m.YOffset(), 0.75)
	assertFloat(t, "LineHeight", m.LineHeight(), 80)

	if (&Markup{Scale: 2}).YOffset() != 0 {
		t.Error("YOffset without a font should be 0")
	}
}

func TestMarkup_AddGlyph(t *testing.T) {
	m := defaultStyle()
	m.Scale = 2
	buf := NewCommandBuffer(1)
	adv := m.AddGlyph(buf, 'A', 5, 100)
	assertFloat(t, "advance", adv, 20)
	if len(buf.Commands) != 1 {
		t.Fatalf("got %d commands, want 1", len(buf.Commands))
	}
	g := buf.Commands[0].Glyph
	assertFloat(t, "glyph X", g.X, 5)
	// Raised by 0.75 line heights of 40.
	assertFloat(t, "glyph Y", g.Y, 70)
	assertFloat(t, "glyph Scale", g.Scale, 2)
}

func TestDrawMarkupText_Plain(t *testing.T) {
	buf := NewCommandBuffer(4)
	w := DrawMarkupText(buf, "AB", 3, 7, NewMarkup(cellFont), nil)
	assertFloat(t, "width", w, 2)
	if buf.Text() != "AB" {
		t.Fatalf("Text = %q, want AB", buf.Text())
	}
	for i, cmd := range buf.Commands {
		assertFloat(t, "X", cmd.Glyph.X, float64(3+i))
		assertFloat(t, "Y", cmd.Glyph.Y, 7)
	}
}

func TestDrawMarkupText_Runs(t *testing.T) {
	buf := NewCommandBuffer(8)
	DrawMarkupText(buf, "a[c=ff0000ff;|b[c=00ff00ff;|c]d]e", 0, 0, NewMarkup(cellFont), nil)
	if buf.Text() != "abcde" {
		t.Fatalf("Text = %q, want abcde", buf.Text())
	}
	want := []Color{ColorWhite, red, {0, 1, 0, 1}, red, ColorWhite}
	for i, cmd := range buf.Commands {
		if cmd.Glyph.Color != want[i] {
			t.Errorf("glyph %d (%c) color = %v, want %v", i, cmd.Glyph.Rune, cmd.Glyph.Color, want[i])
		}
	}
}

func TestDrawMarkupText_Newline(t *testing.T) {
	buf := NewCommandBuffer(8)
	w := DrawMarkupText(buf, "abc\nd", 0, 0, NewMarkup(cellFont), nil)
	assertFloat(t, "width", w, 3)
	last := buf.Commands[len(buf.Commands)-1].Glyph
	if last.Rune != 'd' || last.X != 0 || last.Y != 1 {
		t.Errorf("last glyph = %c at (%v,%v), want d at (0,1)", last.Rune, last.X, last.Y)
	}
}

func TestDrawMarkupText_PositionOverride(t *testing.T) {
	buf := NewCommandBuffer(8)
	DrawMarkupText(buf, "a[x=5;y=2;|b]", 10, 10, NewMarkup(cellFont), nil)
	g := buf.Commands[1].Glyph
	if g.Rune != 'b' || g.X != 15 || g.Y != 12 {
		t.Errorf("glyph = %c at (%v,%v), want b at (15,12)", g.Rune, g.X, g.Y)
	}
}

func TestDrawMarkupText_InlineImage(t *testing.T) {
	buf := NewCommandBuffer(8)
	w := DrawMarkupText(buf, "[i=coin;|]x", 0, 0, NewMarkup(cellFont), nil)
	if buf.Commands[0].Type != CommandQuad || buf.Commands[0].Quad.Image != "coin" {
		t.Fatalf("first command = %+v, want coin quad", buf.Commands[0])
	}
	if g := buf.Commands[1].Glyph; g.X != 1 {
		t.Errorf("glyph after image at X=%v, want 1", g.X)
	}
	assertFloat(t, "width", w, 2)
}

func TestMeasureMarkupText(t *testing.T) {
	style := NewMarkup(cellFont)
	assertFloat(t, "plain", MeasureMarkupText("hello", style, nil), 5)
	assertFloat(t, "styled", MeasureMarkupText("[s=2;|hi]!", style, nil), 5)
	assertFloat(t, "multi-line", MeasureMarkupText("ab\nabcd\nc", style, nil), 4)
}

func TestMarkupFromTextParams(t *testing.T) {
	m := MarkupFromTextParams(TextParams{Color: "ff0000", Scale: 2}, cellFont)
	if m.Color != red || m.Scale != 2 {
		t.Errorf("got %+v", m)
	}

	buf := captureLog(t, LevelWarn)
	m = MarkupFromTextParams(TextParams{Color: "bogus"}, cellFont)
	if m.Color != ColorWhite || m.Scale != 1 {
		t.Errorf("bad params should keep defaults, got %+v", m)
	}
	assertLogged(t, buf, "text params")
}

func TestDrawMarkupText_UnterminatedRunIsText(t *testing.T) {
	buf := NewCommandBuffer(8)
	w := DrawMarkupText(buf, "cost [5", 0, 0, defaultStyle(), nil)
	if got := buf.Text(); got != "cost [5" {
		t.Errorf("drawn %q, want %q", got, "cost [5")
	}
	assertFloat(t, "width", w, 70)
	assertFloat(t, "measured", MeasureMarkupText("cost [5", defaultStyle(), nil), 70)
}

func TestMarkup_PositionsStayFinite(t *testing.T) {
	captureLog(t, LevelWarn)
	m := ParseMarkup("x=nan;y=-inf;", defaultStyle(), nil)
	if m.PosX == nil || m.PosY == nil || *m.PosX != 1 || *m.PosY != 1 {
		t.Errorf("positions = %v %v, want the 1.0 fallback", m.PosX, m.PosY)
	}
}
