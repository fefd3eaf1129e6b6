package bramble

// widgetIDCounter is a plain counter; the UI is single-threaded.
var widgetIDCounter uint32

func nextWidgetID() uint32 {
	widgetIDCounter++
	return widgetIDCounter
}

// Widget is a node of the UI tree. It owns its state and its children;
// removing a widget removes its whole subtree. Children are kept in z-order:
// earlier children are drawn first and offered events first.
type Widget struct {
	ID    uint32
	State WidgetState
	Kind  WidgetKind

	Parent   *Widget
	children []*Widget

	// Theme is the theme node bound to this widget, resolved from the
	// parent's theme by ThemeSubname when the widget is added. ThemeID is the
	// dotted path from the theme root.
	Theme        *Theme
	ThemeID      string
	ThemeSubname string

	// EntityID links the widget to an ECS entity. Zero means none.
	EntityID uint32
	UserData any

	added       bool
	removed     bool
	layoutDirty bool
}

func newWidget(kind WidgetKind, size Size, pos Point, border Border) *Widget {
	if kind == nil {
		panic("bramble: widget kind must not be nil")
	}
	return &Widget{
		ID:    nextWidgetID(),
		Kind:  kind,
		State: newWidgetState(size, pos, border),
	}
}

// NewWidget creates a widget with zero geometry.
func NewWidget(kind WidgetKind) *Widget {
	return newWidget(kind, Size{}, Point{}, Border{})
}

// NewWidgetWithSize creates a widget of the given size at the parent's
// content origin.
func NewWidgetWithSize(kind WidgetKind, size Size) *Widget {
	return newWidget(kind, size, Point{}, Border{})
}

// NewWidgetWithPosition creates a widget at pos inside the parent's content
// area.
func NewWidgetWithPosition(kind WidgetKind, size Size, pos Point) *Widget {
	return newWidget(kind, size, pos, Border{})
}

// NewWidgetWithBorder creates a widget with full geometry.
func NewWidgetWithBorder(kind WidgetKind, size Size, pos Point, border Border) *Widget {
	return newWidget(kind, size, pos, border)
}

// NewThemedWidget creates a widget whose geometry comes from the child theme
// named subname of its parent's theme.
func NewThemedWidget(kind WidgetKind, subname string) *Widget {
	w := NewWidget(kind)
	w.ThemeSubname = subname
	return w
}

// NewTree creates a root widget of the given size and mounts it.
func NewTree(kind WidgetKind, size Size) *Widget {
	return Mount(NewWidgetWithSize(kind, size))
}

// Mount prepares root as the top of a tree: it runs OnAdd for root (which
// attaches the initial children) and then a full layout pass. Bind a theme
// to root before mounting it so the children can resolve theirs.
func Mount(root *Widget) *Widget {
	root.attach()
	root.Layout()
	return root
}

// --- Tree manipulation ---

// AddChild appends child to w's children. If child already has a parent it is
// removed from that parent first. The child's theme is resolved and, the
// first time the child joins a tree, its kind's OnAdd children are attached.
// AddChild does not run layout.
//
// Panics if child is nil or child is an ancestor of w.
func (w *Widget) AddChild(child *Widget) {
	if child == nil {
		panic("bramble: cannot add nil child")
	}
	if globalDebug {
		debugCheckRemoved(w, "AddChild (parent)")
		debugCheckRemoved(child, "AddChild (child)")
	}
	if isAncestor(child, w) {
		panic("bramble: adding child would create a cycle")
	}
	logTracef("adding '%s' to '%s'", child.Kind.Name(), w.Kind.Name())
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = w
	w.children = append(w.children, child)
	child.resolveTheme()
	child.attach()
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(w)
	}
}

// attach runs OnAdd exactly once.
func (w *Widget) attach() {
	if w.added {
		return
	}
	w.added = true
	for _, c := range w.Kind.OnAdd(w) {
		w.AddChild(c)
	}
}

// RemoveChild detaches child immediately. Use MarkForRemoval from inside
// event handlers.
// Panics if child.Parent != w.
func (w *Widget) RemoveChild(child *Widget) {
	if child.Parent != w {
		panic("bramble: child's parent is not this widget")
	}
	w.removeChildByPtr(child)
	child.Parent = nil
}

// MarkForRemoval tombstones w. A tombstoned widget and its subtree receive
// no events and are not drawn; the next update pass detaches it.
func (w *Widget) MarkForRemoval() {
	w.removed = true
}

// IsRemoved reports whether w is tombstoned.
func (w *Widget) IsRemoved() bool {
	return w.removed
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (w *Widget) Children() []*Widget {
	return w.children
}

// NumChildren returns the number of children, including tombstoned ones.
func (w *Widget) NumChildren() int {
	return len(w.children)
}

// ChildAt returns the child at index.
func (w *Widget) ChildAt(index int) *Widget {
	return w.children[index]
}

// Root walks up to the top of the tree.
func (w *Widget) Root() *Widget {
	r := w
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// Find returns the first widget in w's subtree (w included, pre-order) whose
// kind has the given name.
func (w *Widget) Find(name string) *Widget {
	if w.Kind.Name() == name {
		return w
	}
	for _, c := range w.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FireCallbacks runs the registered callbacks in registration order.
func (w *Widget) FireCallbacks(c *Context) {
	cbs := w.State.callbacks
	for _, cb := range cbs {
		cb(c, w)
	}
}

// --- Themes ---

func (w *Widget) resolveTheme() {
	if w.ThemeSubname == "" || w.Parent == nil {
		return
	}
	parent := w.Parent
	th, ok := parent.Theme.Child(w.ThemeSubname)
	if !ok {
		if parent.Theme != nil {
			logWarnf("no theme found for '%s' in '%s'", w.ThemeSubname, parent.ThemeID)
		}
		w.Theme = nil
		return
	}
	w.Theme = th
	w.ThemeID = parent.ThemeID + "." + w.ThemeSubname
}

func (w *Widget) bindChildThemes() {
	for _, c := range w.children {
		c.resolveTheme()
		c.bindChildThemes()
	}
}

// --- Helpers ---

// isAncestor reports whether candidate is w or one of its ancestors.
func isAncestor(candidate, w *Widget) bool {
	for p := w; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from w.children without clearing
// child.Parent.
func (w *Widget) removeChildByPtr(child *Widget) {
	for i, c := range w.children {
		if c == child {
			copy(w.children[i:], w.children[i+1:])
			w.children[len(w.children)-1] = nil
			w.children = w.children[:len(w.children)-1]
			return
		}
	}
}
