package bramble

// Callback runs synchronously when a widget fires its callbacks, for example
// when a button is clicked.
type Callback func(c *Context, w *Widget)

// RemoveParent returns a callback that removes the firing widget's parent
// (and with it the whole parent subtree) on the next update pass. Dismiss and
// cancel buttons of dialogs use it.
func RemoveParent() Callback {
	return func(_ *Context, w *Widget) {
		if w.Parent == nil {
			logWarnf("remove parent: widget '%s' has no parent", w.Kind.Name())
			return
		}
		w.Parent.MarkForRemoval()
	}
}

// RemoveSelf returns a callback that removes the firing widget.
func RemoveSelf() Callback {
	return func(_ *Context, w *Widget) {
		w.MarkForRemoval()
	}
}

// WidgetState is the mutable presentation state owned by exactly one widget.
type WidgetState struct {
	// Size, Border and Position are the layout output. Position is absolute.
	Size     Size
	Border   Border
	Position Point
	// RelPosition is the layout input: the offset inside the parent's content
	// area.
	RelPosition Point

	Visible    bool
	Background Image
	Animation  AnimationState
	Text       string
	// Alpha multiplies every color the widget draws.
	Alpha float64
	// OffsetX and OffsetY shift drawing only. Tweens use them for slides.
	OffsetX, OffsetY float64

	callbacks   []Callback
	tweens      []*TweenGroup
	mouseInside bool
	// pressFrames counts down the update passes a pressed button stays
	// pressed.
	pressFrames int
	// refreshFrames counts update passes since a stats label last redrew.
	refreshFrames int
}

func newWidgetState(size Size, pos Point, border Border) WidgetState {
	return WidgetState{
		Size:        NewSize(size.Width, size.Height),
		Border:      NewBorder(border.Top, border.Bottom, border.Left, border.Right),
		Position:    pos,
		RelPosition: pos,
		Visible:     true,
		Alpha:       1,
	}
}

// InBounds reports whether p is within the widget's bounds. The border is
// part of the bounds; the far edges are exclusive.
func (s *WidgetState) InBounds(p Point) bool {
	return p.X >= s.Position.X && p.Y >= s.Position.Y &&
		p.X < s.Position.X+s.Size.Width &&
		p.Y < s.Position.Y+s.Size.Height
}

// InnerPosition is the top-left corner of the content area.
func (s *WidgetState) InnerPosition() Point {
	return s.Position.Add(s.Border.Left, s.Border.Top)
}

// InnerSize is the size of the content area.
func (s *WidgetState) InnerSize() Size {
	return s.Size.Add(-s.Border.Horizontal(), -s.Border.Vertical())
}

// MouseInside reports whether the dispatcher last saw the pointer inside.
func (s *WidgetState) MouseInside() bool { return s.mouseInside }

// AddCallback registers cb.
func (s *WidgetState) AddCallback(cb Callback) {
	s.callbacks = append(s.callbacks, cb)
}

// ClearCallbacks drops every registered callback.
func (s *WidgetState) ClearCallbacks() { s.callbacks = nil }

// NumCallbacks returns the number of registered callbacks.
func (s *WidgetState) NumCallbacks() int { return len(s.callbacks) }

// AddTween registers a tween group to be advanced by the update pass.
func (s *WidgetState) AddTween(g *TweenGroup) {
	s.tweens = append(s.tweens, g)
}

// NumTweens returns the number of running tween groups.
func (s *WidgetState) NumTweens() int { return len(s.tweens) }

func (s *WidgetState) advanceTweens(dt float32) {
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}
