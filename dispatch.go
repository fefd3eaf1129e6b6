package bramble

// DispatchEvent offers ev to w's subtree and reports whether any widget
// handled it. Call it on the root once per input event.
//
// Children are visited in order. A child containing the pointer first gets a
// synthetic enter if it was not already marked inside, then the event itself;
// the first child whose subtree handles the event ends the walk. A child that
// no longer contains the pointer but was marked inside gets a synthetic exit
// instead, and that sweep still covers the siblings after a handling child.
// Hidden children never contain the pointer. Only if no child handled the
// event does w's own kind see it.
//
// An event nobody wants is not an error; DispatchEvent simply returns false.
func (w *Widget) DispatchEvent(c *Context, ev Event) bool {
	logTracef("dispatching %s in '%s'", ev, w.Kind.Name())

	children := w.children
	for i, child := range children {
		if child.removed {
			continue
		}
		if !child.hit(ev) {
			child.exit(c, ev)
			continue
		}
		if !child.State.mouseInside {
			child.State.mouseInside = true
			if ev.Kind != EventMouseEnter {
				child.DispatchEvent(c, ev.enteredFrom())
			}
		}
		if child.DispatchEvent(c, ev) {
			for _, rest := range children[i+1:] {
				if !rest.removed && !rest.hit(ev) {
					rest.exit(c, ev)
				}
			}
			return true
		}
	}

	handled := w.handle(c, ev)
	if c != nil && c.Store != nil && w.EntityID != 0 {
		c.Store.EmitEvent(InteractionEvent{
			Kind:     ev.Kind,
			EntityID: w.EntityID,
			Widget:   w.Kind.Name(),
			Mouse:    ev.Mouse,
			Click:    ev.Click,
			Scroll:   ev.Scroll,
			Action:   ev.Action,
			Handled:  handled,
		})
	}
	return handled
}

// hit reports whether ev's pointer is over w. An exit travelling down means
// the pointer left the container, so nothing beneath it can still be hovered.
func (w *Widget) hit(ev Event) bool {
	return w.State.Visible && ev.Kind != EventMouseExit && w.State.InBounds(ev.Mouse)
}

// exit sends w a synthetic exit if it is still marked inside.
func (w *Widget) exit(c *Context, ev Event) {
	if !w.State.mouseInside {
		return
	}
	w.State.mouseInside = false
	w.DispatchEvent(c, ev.exitedFrom())
}

// handle routes ev to w's kind by event kind.
func (w *Widget) handle(c *Context, ev Event) bool {
	k := w.Kind
	switch ev.Kind {
	case EventMouseClick:
		return k.OnMouseClick(c, w, ev.Click)
	case EventMouseMove:
		return k.OnMouseMove(c, w, ev.DX, ev.DY)
	case EventMouseEnter:
		return k.OnMouseEnter(c, w)
	case EventMouseExit:
		return k.OnMouseExit(c, w)
	case EventMouseScroll:
		return k.OnMouseScroll(c, w, ev.Scroll)
	case EventKeyPress:
		return k.OnKeyPress(c, w, ev.Action)
	}
	return false
}
