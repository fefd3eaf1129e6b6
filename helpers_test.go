package bramble

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// fixedFont is a monospace font with configurable metrics.
type fixedFont struct {
	advance, lineHeight, base float64
}

func (f fixedFont) LineHeight() float64  { return f.lineHeight }
func (f fixedFont) Base() float64        { return f.base }
func (f fixedFont) Advance(rune) float64 { return f.advance }

// cellFont is one unit per rune and per line, like a terminal.
var cellFont = fixedFont{advance: 1, lineHeight: 1, base: 1}

// fontMap is a FontLookup over a plain map.
type fontMap map[string]Font

func (m fontMap) Font(name string) (Font, bool) {
	f, ok := m[name]
	return f, ok
}

// recordKind logs every event it sees as "name:Kind" and reports the kinds
// listed in handle as handled.
type recordKind struct {
	BaseKind
	log    *[]string
	handle map[EventKind]bool
}

func newRecorder(name string, log *[]string, handled ...EventKind) *recordKind {
	k := &recordKind{BaseKind: BaseKind{KindName: name}, log: log, handle: make(map[EventKind]bool)}
	for _, h := range handled {
		k.handle[h] = true
	}
	return k
}

func (k *recordKind) record(kind EventKind) bool {
	*k.log = append(*k.log, fmt.Sprintf("%s:%s", k.Name(), kind))
	return k.handle[kind]
}

func (k *recordKind) OnMouseClick(*Context, *Widget, ClickKind) bool {
	return k.record(EventMouseClick)
}
func (k *recordKind) OnMouseMove(*Context, *Widget, int, int) bool { return k.record(EventMouseMove) }
func (k *recordKind) OnMouseEnter(*Context, *Widget) bool          { return k.record(EventMouseEnter) }
func (k *recordKind) OnMouseExit(*Context, *Widget) bool           { return k.record(EventMouseExit) }
func (k *recordKind) OnMouseScroll(*Context, *Widget, int) bool    { return k.record(EventMouseScroll) }
func (k *recordKind) OnKeyPress(*Context, *Widget, InputAction) bool {
	return k.record(EventKeyPress)
}

// captureLog redirects log output for the duration of the test.
func captureLog(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldLogger, oldLevel := Logger, logLevel
	if err := SetupLogging(LoggingConfig{LogLevel: level.String()}, &buf); err != nil {
		t.Fatalf("SetupLogging: %v", err)
	}
	t.Cleanup(func() {
		Logger, logLevel = oldLogger, oldLevel
	})
	return &buf
}

func assertLogged(t *testing.T, buf *bytes.Buffer, want string) {
	t.Helper()
	if !strings.Contains(buf.String(), want) {
		t.Errorf("log %q does not contain %q", buf.String(), want)
	}
}

func assertEvents(t *testing.T, got []string, want ...string) {
	t.Helper()
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("events = %v, want %v", got, want)
	}
}

// box creates a widget at pos with the given size.
func box(kind WidgetKind, x, y, w, h int) *Widget {
	return NewWidgetWithPosition(kind, NewSize(w, h), Point{X: x, Y: y})
}
