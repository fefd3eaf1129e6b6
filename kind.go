package bramble

// WidgetKind is the behavior attached to a widget. One kind value may be
// shared by several widgets; per-widget data belongs in the widget's state.
//
// Event handlers return true when they consumed the event, which stops the
// dispatcher from offering it to later siblings and to ancestors.
type WidgetKind interface {
	Name() string
	// Layout computes w's geometry. Most kinds call w.DoBaseLayout.
	Layout(w *Widget)
	// OnAdd is called once when w joins a tree and returns the children to
	// attach to it.
	OnAdd(w *Widget) []*Widget
	Draw(r Renderer, w *Widget, millis uint32)

	OnMouseClick(c *Context, w *Widget, kind ClickKind) bool
	OnMouseMove(c *Context, w *Widget, dx, dy int) bool
	OnMouseEnter(c *Context, w *Widget) bool
	OnMouseExit(c *Context, w *Widget) bool
	OnMouseScroll(c *Context, w *Widget, scroll int) bool
	OnKeyPress(c *Context, w *Widget, action InputAction) bool
}

// Updatable kinds take part in the per-frame update pass. An error aborts the
// main loop.
type Updatable interface {
	OnUpdate(c *Context, w *Widget) error
}

// BaseKind implements every WidgetKind method with the default behavior.
// Embed it and override what a kind needs.
type BaseKind struct {
	KindName string
}

func (k BaseKind) Name() string {
	if k.KindName == "" {
		return "widget"
	}
	return k.KindName
}

func (BaseKind) Layout(w *Widget)                               { w.DoBaseLayout() }
func (BaseKind) OnAdd(*Widget) []*Widget                        { return nil }
func (BaseKind) Draw(Renderer, *Widget, uint32)                 {}
func (BaseKind) OnMouseClick(*Context, *Widget, ClickKind) bool { return false }
func (BaseKind) OnMouseMove(*Context, *Widget, int, int) bool   { return false }

// OnMouseEnter turns on the hover variant.
func (BaseKind) OnMouseEnter(_ *Context, w *Widget) bool {
	w.State.Animation.Add(AnimHover)
	return false
}

// OnMouseExit clears hover and pressed.
func (BaseKind) OnMouseExit(_ *Context, w *Widget) bool {
	w.State.Animation.Remove(AnimHover | AnimPressed)
	return false
}

func (BaseKind) OnMouseScroll(*Context, *Widget, int) bool      { return false }
func (BaseKind) OnKeyPress(*Context, *Widget, InputAction) bool { return false }

// Container is a kind with no behavior of its own; it only groups children.
func Container(name string) WidgetKind {
	return BaseKind{KindName: name}
}
