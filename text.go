package bramble

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font is the metrics contract the markup and text layout code relies on.
// Fonts are shared, read-only resources owned by a ResourceSet.
type Font interface {
	// LineHeight returns the distance between baselines of adjacent lines.
	LineHeight() float64
	// Base returns the distance from the top of the line box to the baseline.
	Base() float64
	// Advance returns the unscaled horizontal advance for r.
	Advance(r rune) float64
}

// FontLookup resolves fonts by name.
type FontLookup interface {
	Font(name string) (Font, bool)
}

// MeasureString returns the unscaled width and height of s in f. Lines are
// split on '\n'.
func MeasureString(f Font, s string) (width, height float64) {
	if f == nil {
		return 0, 0
	}
	var cur float64
	lines := 1
	for _, r := range s {
		if r == '\n' {
			width = max(width, cur)
			cur = 0
			lines++
			continue
		}
		cur += f.Advance(r)
	}
	return max(width, cur), float64(lines) * f.LineHeight()
}

// --- BitmapFont ---

const asciiGlyphCount = 128

type glyphInfo struct {
	x, y          uint16
	width, height uint16
	xOffset       int16
	yOffset       int16
	xAdvance      int16
}

// BitmapFont is a pre-rasterized font in the BMFont text format. The glyph
// atlas image is registered separately with the backend under Page.
type BitmapFont struct {
	Name string
	Page int

	lineHeight float64
	base       float64

	ascii    [asciiGlyphCount]glyphInfo
	asciiSet [asciiGlyphCount]bool
	ext      map[rune]*glyphInfo
	kernings map[[2]rune]int16
}

// LineHeight returns the distance between baselines.
func (f *BitmapFont) LineHeight() float64 { return f.lineHeight }

// Base returns the baseline offset from the top of a line.
func (f *BitmapFont) Base() float64 { return f.base }

// Advance returns the glyph advance, or 0 when r is not in the font.
func (f *BitmapFont) Advance(r rune) float64 {
	g := f.glyph(r)
	if g == nil {
		return 0
	}
	return float64(g.xAdvance)
}

// Kern returns the kerning adjustment for the pair (first, second).
func (f *BitmapFont) Kern(first, second rune) float64 {
	if f.kernings == nil {
		return 0
	}
	return float64(f.kernings[[2]rune{first, second}])
}

// GlyphRegion returns the atlas rectangle and draw offset of r.
func (f *BitmapFont) GlyphRegion(r rune) (x, y, w, h, offX, offY int, ok bool) {
	g := f.glyph(r)
	if g == nil {
		return 0, 0, 0, 0, 0, 0, false
	}
	return int(g.x), int(g.y), int(g.width), int(g.height), int(g.xOffset), int(g.yOffset), true
}

func (f *BitmapFont) glyph(r rune) *glyphInfo {
	if r >= 0 && r < asciiGlyphCount {
		if f.asciiSet[r] {
			return &f.ascii[r]
		}
		return nil
	}
	return f.ext[r]
}

func (f *BitmapFont) setGlyph(id rune, g glyphInfo) {
	if id >= 0 && id < asciiGlyphCount {
		f.ascii[id] = g
		f.asciiSet[id] = true
		return
	}
	if f.ext == nil {
		f.ext = make(map[rune]*glyphInfo)
	}
	f.ext[id] = &g
}

// LoadBitmapFont parses BMFont .fnt text-format data.
func LoadBitmapFont(name string, fntData []byte) (*BitmapFont, error) {
	f := &BitmapFont{Name: name}
	scanner := bufio.NewScanner(bytes.NewReader(fntData))
	chars := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tag, rest, _ := strings.Cut(line, " ")
		fields := parseFields(rest)

		switch tag {
		case "common":
			f.lineHeight = fields.float("lineHeight")
			f.base = fields.float("base")
		case "page":
			f.Page = fields.int("id")
		case "char":
			chars++
			f.setGlyph(rune(fields.int("id")), glyphInfo{
				x:        uint16(fields.int("x")),
				y:        uint16(fields.int("y")),
				width:    uint16(fields.int("width")),
				height:   uint16(fields.int("height")),
				xOffset:  int16(fields.int("xoffset")),
				yOffset:  int16(fields.int("yoffset")),
				xAdvance: int16(fields.int("xadvance")),
			})
		case "kerning":
			if f.kernings == nil {
				f.kernings = make(map[[2]rune]int16)
			}
			pair := [2]rune{rune(fields.int("first")), rune(fields.int("second"))}
			f.kernings[pair] = int16(fields.int("amount"))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("bramble: error reading font %q: %w", name, err)
	}
	if f.lineHeight == 0 {
		return nil, fmt.Errorf("bramble: font %q missing common lineHeight", name)
	}
	if chars == 0 {
		return nil, fmt.Errorf("bramble: font %q has no char definitions", name)
	}
	return f, nil
}

type fntFields map[string]string

// parseFields parses "key=value key=value ..." into a map, stripping quotes.
func parseFields(s string) fntFields {
	fields := make(fntFields)
	for _, part := range strings.Fields(s) {
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}
		fields[key] = val
	}
	return fields
}

func (f fntFields) int(key string) int {
	v, _ := strconv.Atoi(f[key])
	return v
}

func (f fntFields) float(key string) float64 {
	v, _ := strconv.ParseFloat(f[key], 64)
	return v
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType rendering.
type TTFFont struct {
	face *text.GoTextFace
	lh   float64
	base float64
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("bramble: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &TTFFont{
		face: face,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
		base: m.HAscent,
	}, nil
}

// LineHeight returns ascent + descent + line gap.
func (f *TTFFont) LineHeight() float64 { return f.lh }

// Base returns the ascent.
func (f *TTFFont) Base() float64 { return f.base }

// Advance measures a single rune with the face.
func (f *TTFFont) Advance(r rune) float64 {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return text.Advance(string(buf[:n]), f.face)
}

// Face returns the underlying face for direct text/v2 drawing.
func (f *TTFFont) Face() *text.GoTextFace { return f.face }
