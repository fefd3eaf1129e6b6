package bramble

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimationKind is one visual state flag of a widget.
type AnimationKind uint8

const (
	AnimHover AnimationKind = 1 << iota
	AnimPressed
	AnimActive
	AnimDisabled
)

// AnimationState is the set of visual flags currently on a widget. Images
// pick their variant from Text.
type AnimationState struct {
	flags AnimationKind
}

// Add sets a flag.
func (a *AnimationState) Add(k AnimationKind) { a.flags |= k }

// Remove clears a flag.
func (a *AnimationState) Remove(k AnimationKind) { a.flags &^= k }

// Toggle sets or clears k.
func (a *AnimationState) Toggle(k AnimationKind, on bool) {
	if on {
		a.Add(k)
	} else {
		a.Remove(k)
	}
}

// Contains reports whether k is set.
func (a AnimationState) Contains(k AnimationKind) bool { return a.flags&k != 0 }

// Text returns the variant name of the highest-priority flag:
// disabled, pressed, active, hover, then base.
func (a AnimationState) Text() string {
	switch {
	case a.Contains(AnimDisabled):
		return "disabled"
	case a.Contains(AnimPressed):
		return "pressed"
	case a.Contains(AnimActive):
		return "active"
	case a.Contains(AnimHover):
		return "hover"
	}
	return "base"
}

// TweenGroup animates up to 4 float64 fields of a widget state at once.
// Groups registered with WidgetState.AddTween are advanced by the tree update
// pass and dropped when done.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Widget
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to their
// fields. A tween on a removed widget stops immediately.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.removed {
		g.Done = true
		return
	}
	done := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			done = false
		}
	}
	g.Done = done
}

// TweenAlpha fades the widget's alpha to the target value.
func TweenAlpha(w *Widget, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: w}
	g.tweens[0] = gween.New(float32(w.State.Alpha), float32(to), duration, fn)
	g.fields[0] = &w.State.Alpha
	w.State.AddTween(g)
	return g
}

// TweenOffset slides the widget's drawing offset to (toX, toY). The offset is
// applied at draw time and does not move the hit-test bounds.
func TweenOffset(w *Widget, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: w}
	g.tweens[0] = gween.New(float32(w.State.OffsetX), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(w.State.OffsetY), float32(toY), duration, fn)
	g.fields[0] = &w.State.OffsetX
	g.fields[1] = &w.State.OffsetY
	w.State.AddTween(g)
	return g
}
