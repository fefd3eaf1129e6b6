package bramble

// Draw renders w's subtree into r, pre-order: w's background, then w's kind,
// then each child in order, so later siblings paint over earlier ones.
// Tombstoned and hidden widgets are skipped together with their subtrees.
// Draw never changes the tree.
func (w *Widget) Draw(r Renderer, millis uint32) {
	if w.removed || !w.State.Visible {
		return
	}
	s := &w.State
	if s.Background != nil {
		pos := s.Position.Add(int(s.OffsetX), int(s.OffsetY))
		s.Background.Fill(r, s.Animation.Text(), pos, s.Size, s.tint())
	}
	w.Kind.Draw(r, w, millis)
	for _, c := range w.children {
		c.Draw(r, millis)
	}
}

// tint is the color every primitive of the widget is multiplied by.
func (s *WidgetState) tint() Color {
	a := min(max(s.Alpha, 0), 1)
	return Color{R: 1, G: 1, B: 1, A: a}
}
