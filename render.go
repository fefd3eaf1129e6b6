package bramble

// Renderer is the draw-primitive sink a widget tree renders into. Backends
// decide how each primitive maps to pixels or terminal cells.
type Renderer interface {
	// DrawQuad fills an axis-aligned rectangle.
	DrawQuad(q Quad)
	// DrawGlyph draws one character at its pen position.
	DrawGlyph(g Glyph)
	// FillText fills a cell region with a single character, for text-mode
	// backgrounds keyed by animation variant.
	FillText(f TextFill)
}

// Quad is a filled rectangle. Image optionally names the image resource the
// quad was produced from.
type Quad struct {
	X, Y, Width, Height float64
	Color               Color
	Image               string
}

// Glyph is a single character positioned at (X, Y), the top of its line box.
type Glyph struct {
	Rune  rune
	X, Y  float64
	Scale float64
	Color Color
	Font  Font
}

// TextFill fills Size cells starting at Position with Rune.
type TextFill struct {
	Rune     rune
	Position Point
	Size     Size
	Color    Color
	Variant  string
}

// CommandType identifies the kind of recorded render command.
type CommandType uint8

const (
	CommandQuad  CommandType = iota // filled rectangle
	CommandGlyph                    // single glyph
	CommandFill                     // text-mode cell fill
)

// RenderCommand is a single recorded draw instruction.
type RenderCommand struct {
	Type  CommandType
	Quad  Quad
	Glyph Glyph
	Fill  TextFill
}

// CommandBuffer is a Renderer that records commands in submission order.
// Backends replay it; tests inspect it.
type CommandBuffer struct {
	Commands []RenderCommand
	// Millis is the elapsed-time stamp of the frame that filled the buffer.
	Millis uint32
}

// NewCommandBuffer creates an empty buffer with room for capacity commands.
func NewCommandBuffer(capacity int) *CommandBuffer {
	return &CommandBuffer{Commands: make([]RenderCommand, 0, capacity)}
}

// Reset empties the buffer, keeping its storage.
func (b *CommandBuffer) Reset() {
	b.Commands = b.Commands[:0]
	b.Millis = 0
}

func (b *CommandBuffer) DrawQuad(q Quad) {
	b.Commands = append(b.Commands, RenderCommand{Type: CommandQuad, Quad: q})
}

func (b *CommandBuffer) DrawGlyph(g Glyph) {
	b.Commands = append(b.Commands, RenderCommand{Type: CommandGlyph, Glyph: g})
}

func (b *CommandBuffer) FillText(f TextFill) {
	b.Commands = append(b.Commands, RenderCommand{Type: CommandFill, Fill: f})
}

// Text concatenates the runes of all glyph commands, which is handy when
// checking what a tree printed.
func (b *CommandBuffer) Text() string {
	var rs []rune
	for i := range b.Commands {
		if b.Commands[i].Type == CommandGlyph {
			rs = append(rs, b.Commands[i].Glyph.Rune)
		}
	}
	return string(rs)
}

// discardRenderer drops everything. Used for measuring.
type discardRenderer struct{}

func (discardRenderer) DrawQuad(Quad)     {}
func (discardRenderer) DrawGlyph(Glyph)   {}
func (discardRenderer) FillText(TextFill) {}
