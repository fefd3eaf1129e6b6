package bramble

import "fmt"

// globalDebug enables the extra tree checks below. Tree operations have no
// scene to consult, so the flag is package-wide.
var globalDebug bool

// SetDebugMode enables or disables debug checks: using a tombstoned widget
// in tree surgery panics, and deep trees or very wide widgets log warnings.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

func debugCheckRemoved(w *Widget, op string) {
	if w.removed {
		panic(fmt.Sprintf("bramble debug: %s on removed widget '%s' (ID %d)", op, w.Kind.Name(), w.ID))
	}
}

const debugMaxTreeDepth = 32

func debugCheckTreeDepth(w *Widget) {
	depth := 0
	for p := w; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logWarnf("tree depth %d exceeds %d (widget '%s')", depth, debugMaxTreeDepth, w.Kind.Name())
	}
}

const debugMaxChildCount = 1000

func debugCheckChildCount(w *Widget) {
	if len(w.children) > debugMaxChildCount {
		logWarnf("widget '%s' has %d children (threshold %d)", w.Kind.Name(), len(w.children), debugMaxChildCount)
	}
}

// TreeString renders the subtree rooted at w, one widget per line, for
// debugging layout.
func TreeString(w *Widget) string {
	var out []byte
	var walk func(w *Widget, depth int)
	walk = func(w *Widget, depth int) {
		for i := 0; i < depth; i++ {
			out = append(out, "  "...)
		}
		s := &w.State
		out = fmt.Appendf(out, "%s pos=%s size=%dx%d", w.Kind.Name(), s.Position, s.Size.Width, s.Size.Height)
		if w.removed {
			out = append(out, " (removed)"...)
		}
		out = append(out, '\n')
		for _, c := range w.children {
			walk(c, depth+1)
		}
	}
	walk(w, 0)
	return string(out)
}
