package bramble

// Layout runs the layout pass over w's subtree, top-down: w's kind computes
// w's geometry, then each child is laid out against it. Layout only reads
// input fields (theme, RelPosition, explicit sizes) and writes output fields,
// so running it twice gives the same result.
func (w *Widget) Layout() {
	w.Kind.Layout(w)
	w.layoutDirty = false
	for _, c := range w.children {
		c.Layout()
	}
}

// DoBaseLayout applies the bound theme, if any, and places w inside its
// parent's content area.
func (w *Widget) DoBaseLayout() {
	s := &w.State
	if th := w.Theme; th != nil {
		if th.Size != nil {
			s.Size = NewSize(th.Size.Width, th.Size.Height)
		}
		if th.Position != nil {
			s.RelPosition = *th.Position
		}
		if th.Border != nil {
			s.Border = NewBorder(th.Border.Top, th.Border.Bottom, th.Border.Left, th.Border.Right)
		}
		if th.BackgroundImage != nil {
			s.Background = th.BackgroundImage
		}
		if s.Text == "" {
			s.Text = th.Text
		}
	}

	if w.Parent == nil {
		s.Position = s.RelPosition
		return
	}
	s.Position = w.Parent.State.InnerPosition().Add(s.RelPosition.X, s.RelPosition.Y)
}

// Invalidate schedules a layout of w's subtree for the next update pass.
func (w *Widget) Invalidate() {
	w.layoutDirty = true
}

// Resize sets an explicit size and schedules a layout. A theme size, when
// bound, still wins at layout time.
func (w *Widget) Resize(size Size) {
	w.State.Size = NewSize(size.Width, size.Height)
	w.Invalidate()
}

// MoveTo sets the position relative to the parent's content area and
// schedules a layout.
func (w *Widget) MoveTo(p Point) {
	w.State.RelPosition = p
	w.Invalidate()
}
