package bramble

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// --- BMFont test fixture ---

// Minimal BMFont .fnt text data with ASCII glyphs for "ABCDEFGHIJ" + space.
const testFntData = `info face="TestFont" size=32 bold=0 italic=0 charset="" unicode=1 stretchH=100 smooth=1 aa=1 padding=0,0,0,0 spacing=0,0
common lineHeight=40 base=30 scaleW=256 scaleH=256 pages=1 packed=0
page id=0 file="test.png"
chars count=12
char id=32  x=0   y=0   width=0   height=0   xoffset=0   yoffset=0   xadvance=10  page=0
char id=65  x=0   y=0   width=20  height=30  xoffset=1   yoffset=2   xadvance=22  page=0
char id=66  x=20  y=0   width=18  height=30  xoffset=1   yoffset=2   xadvance=20  page=0
char id=67  x=38  y=0   width=19  height=30  xoffset=1   yoffset=2   xadvance=21  page=0
char id=68  x=57  y=0   width=20  height=30  xoffset=1   yoffset=2   xadvance=22  page=0
char id=69  x=77  y=0   width=16  height=30  xoffset=1   yoffset=2   xadvance=18  page=0
char id=70  x=93  y=0   width=15  height=30  xoffset=1   yoffset=2   xadvance=17  page=0
char id=71  x=108 y=0   width=20  height=30  xoffset=1   yoffset=2   xadvance=22  page=0
char id=72  x=128 y=0   width=20  height=30  xoffset=1   yoffset=2   xadvance=22  page=0
char id=73  x=148 y=0   width=8   height=30  xoffset=1   yoffset=2   xadvance=10  page=0
char id=74  x=156 y=0   width=12  height=30  xoffset=0   yoffset=2   xadvance=14  page=0
char id=233 x=168 y=0   width=16  height=34  xoffset=1   yoffset=-2  xadvance=18  page=0
kernings count=2
kerning first=65 second=66 amount=-2
kerning first=65 second=67 amount=-1
`

// testFntDataNoLineHeight is malformed .fnt data missing lineHeight.
const testFntDataNoLineHeight = `info face="Bad" size=32
page id=0 file="test.png"
chars count=1
char id=65 x=0 y=0 width=10 height=10 xoffset=0 yoffset=0 xadvance=12 page=0
`

// testFntDataNoChars is .fnt data with no char definitions.
const testFntDataNoChars = `info face="Bad" size=32
common lineHeight=40 base=30 scaleW=256 scaleH=256 pages=1 packed=0
page id=0 file="test.png"
`

func loadTestFont(t *testing.T) *BitmapFont {
	t.Helper()
	f, err := LoadBitmapFont("test", []byte(testFntData))
	if err != nil {
		t.Fatalf("LoadBitmapFont: %v", err)
	}
	return f
}

// --- LoadBitmapFont tests ---

func TestLoadBitmapFont_GlyphCount(t *testing.T) {
	f := loadTestFont(t)

	count := 0
	for i := range f.asciiSet {
		if f.asciiSet[i] {
			count++
		}
	}
	if count != 11 {
		t.Errorf("ascii glyph count = %d, want 11", count)
	}
	if len(f.ext) != 1 {
		t.Errorf("extended glyph count = %d, want 1", len(f.ext))
	}
}

func TestLoadBitmapFont_Metrics(t *testing.T) {
	f := loadTestFont(t)
	if f.LineHeight() != 40 {
		t.Errorf("LineHeight = %v, want 40", f.LineHeight())
	}
	if f.Base() != 30 {
		t.Errorf("Base = %v, want 30", f.Base())
	}
	if f.Name != "test" || f.Page != 0 {
		t.Errorf("Name/Page = %q/%d", f.Name, f.Page)
	}
}

func TestLoadBitmapFont_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid", "not valid fnt data at all"},
		{"missing line height", testFntDataNoLineHeight},
		{"no chars", testFntDataNoChars},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadBitmapFont("bad", []byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestBitmapFont_Advance(t *testing.T) {
	f := loadTestFont(t)
	if got := f.Advance('A'); got != 22 {
		t.Errorf("Advance('A') = %v, want 22", got)
	}
	if got := f.Advance('é'); got != 18 {
		t.Errorf("Advance('é') = %v, want 18", got)
	}
	if got := f.Advance('Z'); got != 0 {
		t.Errorf("Advance of a missing glyph = %v, want 0", got)
	}
}

func TestBitmapFont_Kern(t *testing.T) {
	f := loadTestFont(t)
	if got := f.Kern('A', 'B'); got != -2 {
		t.Errorf("Kern(A,B) = %v, want -2", got)
	}
	if got := f.Kern('B', 'A'); got != 0 {
		t.Errorf("Kern(B,A) = %v, want 0", got)
	}
}

func TestBitmapFont_GlyphRegion(t *testing.T) {
	f := loadTestFont(t)
	x, y, w, h, offX, offY, ok := f.GlyphRegion('B')
	if !ok || x != 20 || y != 0 || w != 18 || h != 30 || offX != 1 || offY != 2 {
		t.Errorf("GlyphRegion('B') = %d,%d %dx%d off %d,%d ok=%v", x, y, w, h, offX, offY, ok)
	}
	if _, _, _, _, _, offY, _ := f.GlyphRegion('é'); offY != -2 {
		t.Errorf("negative yoffset = %d, want -2", offY)
	}
	if _, _, _, _, _, _, ok := f.GlyphRegion('Z'); ok {
		t.Error("GlyphRegion of a missing glyph should not be ok")
	}
}

// --- MeasureString ---

func TestMeasureString(t *testing.T) {
	f := loadTestFont(t)
	tests := []struct {
		in   string
		w, h float64
	}{
		{"AB", 42, 40},
		{"A\nB", 22, 80},
		{"", 0, 40},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h := MeasureString(f, tt.in)
			if w != tt.w || h != tt.h {
				t.Errorf("MeasureString(%q) = (%v, %v), want (%v, %v)", tt.in, w, h, tt.w, tt.h)
			}
		})
	}
	if w, h := MeasureString(nil, "abc"); w != 0 || h != 0 {
		t.Errorf("MeasureString(nil) = (%v, %v), want (0, 0)", w, h)
	}
}

// --- TTFFont ---

func TestLoadTTFFont_InvalidData(t *testing.T) {
	if _, err := LoadTTFFont([]byte("not a TTF file"), 16); err == nil {
		t.Error("expected error for invalid TTF data, got nil")
	}
}

func TestLoadTTFFont_GoRegular(t *testing.T) {
	f, err := LoadTTFFont(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("LoadTTFFont: %v", err)
	}
	if f.LineHeight() <= f.Base() || f.Base() <= 0 {
		t.Errorf("LineHeight = %v, Base = %v; want 0 < Base < LineHeight", f.LineHeight(), f.Base())
	}
	if f.Advance('W') <= f.Advance('i') {
		t.Errorf("Advance('W') = %v should exceed Advance('i') = %v", f.Advance('W'), f.Advance('i'))
	}
	if f.Face() == nil {
		t.Error("Face should not be nil")
	}
}
