package bramble

import "fmt"

// Update runs the per-frame update pass over w's subtree: tombstoned
// children are detached, tweens advance by dt seconds, Updatable kinds run
// and widgets that changed geometry are laid out again.
//
// The first error from an Updatable aborts the pass and is returned wrapped
// with the widget's kind name.
func (w *Widget) Update(c *Context, dt float32) error {
	w.compact()

	if len(w.State.tweens) > 0 {
		w.State.advanceTweens(dt)
	}
	if u, ok := w.Kind.(Updatable); ok {
		if err := u.OnUpdate(c, w); err != nil {
			return fmt.Errorf("bramble: update '%s': %w", w.Kind.Name(), err)
		}
	}
	if w.layoutDirty {
		w.Layout()
	}
	// OnUpdate may add children; iterate over the list as it is now.
	for _, child := range w.children {
		if child.removed {
			continue
		}
		if err := child.Update(c, dt); err != nil {
			return err
		}
	}
	return nil
}

// compact detaches tombstoned children, keeping the order of the rest.
func (w *Widget) compact() {
	n := 0
	for _, child := range w.children {
		if child.removed {
			logDebugf("removing '%s' from '%s'", child.Kind.Name(), w.Kind.Name())
			child.Parent = nil
			continue
		}
		w.children[n] = child
		n++
	}
	if n == len(w.children) {
		return
	}
	for i := n; i < len(w.children); i++ {
		w.children[i] = nil
	}
	w.children = w.children[:n]
}
