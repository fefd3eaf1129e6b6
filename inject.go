package bramble

// HeadlessIO is an IO without a device: input comes from injected events and
// output is recorded into a CommandBuffer. It runs the UI in tests and in
// tools that script the interface.
type HeadlessIO struct {
	// Buffer holds the commands of the last rendered frame.
	Buffer *CommandBuffer
	// Rendered counts RenderOutput calls.
	Rendered int
	// OnRender, if set, runs after each frame is recorded.
	OnRender func(root *Widget, buf *CommandBuffer)

	queue []Event
	mouse Point
}

// NewHeadlessIO creates a headless IO with an empty queue.
func NewHeadlessIO() *HeadlessIO {
	return &HeadlessIO{Buffer: NewCommandBuffer(256)}
}

// Inject queues ev for the next frame.
func (h *HeadlessIO) Inject(ev Event) {
	h.queue = append(h.queue, ev)
	h.mouse = ev.Mouse
}

// InjectMove queues a pointer move to p. The delta is taken from the
// previous injected pointer position.
func (h *HeadlessIO) InjectMove(p Point) {
	h.Inject(MouseMoveEvent(p, p.X-h.mouse.X, p.Y-h.mouse.Y))
}

// InjectClick queues a move to p followed by a click of the given button
// there.
func (h *HeadlessIO) InjectClick(p Point, kind ClickKind) {
	h.InjectMove(p)
	h.Inject(MouseClickEvent(p, kind))
}

// InjectPath queues pointer moves from one point to another in steps
// interpolated moves, ending exactly on to.
func (h *HeadlessIO) InjectPath(from, to Point, steps int) {
	if steps < 1 {
		steps = 1
	}
	h.InjectMove(from)
	for i := 1; i <= steps; i++ {
		p := Point{
			X: from.X + (to.X-from.X)*i/steps,
			Y: from.Y + (to.Y-from.Y)*i/steps,
		}
		h.InjectMove(p)
	}
}

// InjectKey queues an action with the pointer at its last injected position.
func (h *HeadlessIO) InjectKey(action InputAction) {
	h.Inject(KeyPressEvent(h.mouse, action))
}

// Pending returns the number of queued events.
func (h *HeadlessIO) Pending() int { return len(h.queue) }

// ProcessInput dispatches every queued event into root, in order.
func (h *HeadlessIO) ProcessInput(c *Context, root *Widget) {
	queue := h.queue
	h.queue = nil
	for _, ev := range queue {
		root.DispatchEvent(c, ev)
	}
}

// RenderOutput records root into Buffer.
func (h *HeadlessIO) RenderOutput(root *Widget, millis uint32) {
	h.Buffer.Reset()
	h.Buffer.Millis = millis
	root.Draw(h.Buffer, millis)
	h.Rendered++
	if h.OnRender != nil {
		h.OnRender(root, h.Buffer)
	}
}
