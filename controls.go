package bramble

import (
	"fmt"
	"math"
	"strings"
)

// Label draws the widget's text, centered in its content area, in the style
// given by the bound theme's text params. Text may contain [directives|text]
// markup runs.
type Label struct {
	BaseKind
	// Res provides fonts for the default style and for markup font
	// directives.
	Res *ResourceSet
}

// NewLabel creates a label kind drawing with fonts from res.
func NewLabel(res *ResourceSet) *Label {
	return &Label{BaseKind: BaseKind{KindName: "label"}, Res: res}
}

// NewLabelWidget creates a themed label widget showing text.
func NewLabelWidget(res *ResourceSet, subname, text string) *Widget {
	w := NewThemedWidget(NewLabel(res), subname)
	w.State.Text = text
	return w
}

// Style returns the default markup style for w's text.
func (k *Label) Style(w *Widget) *Markup {
	var font Font
	var tp TextParams
	if th := w.Theme; th != nil {
		font = th.TextFont
		tp = th.TextParams
	}
	if font == nil && k.Res != nil {
		font = k.Res.DefaultFont()
	}
	m := MarkupFromTextParams(tp, font)
	m.Color = m.Color.Mul(w.State.tint())
	return m
}

func (k *Label) Draw(r Renderer, w *Widget, _ uint32) {
	text := w.State.Text
	if text == "" {
		return
	}
	style := k.Style(w)
	if style.Font == nil {
		logWarnf("label '%s': no font to draw '%s'", w.ThemeID, text)
		return
	}
	var fonts FontLookup
	if k.Res != nil {
		fonts = k.Res
	}

	s := &w.State
	pos, size := s.InnerPosition(), s.InnerSize()
	width := MeasureMarkupText(text, style, fonts)
	height := style.LineHeight() * float64(strings.Count(text, "\n")+1)
	x := float64(pos.X) + math.Floor((float64(size.Width)-width)/2) + s.OffsetX
	y := float64(pos.Y) + math.Floor((float64(size.Height)-height)/2) + s.OffsetY
	DrawMarkupText(r, text, x, y, style, fonts)
}

// Button is a label that fires the widget's callbacks on a left click, or on
// Accept while the pointer is over it.
type Button struct {
	Label
}

// NewButton creates a button kind drawing with fonts from res.
func NewButton(res *ResourceSet) *Button {
	return &Button{Label: Label{BaseKind: BaseKind{KindName: "button"}, Res: res}}
}

// NewButtonWidget creates a themed button widget firing cb.
func NewButtonWidget(res *ResourceSet, subname string, cb Callback) *Widget {
	w := NewThemedWidget(NewButton(res), subname)
	if cb != nil {
		w.State.AddCallback(cb)
	}
	return w
}

// buttonPressFrames is how many update passes the pressed variant lasts;
// one pass runs before the click is first drawn.
const buttonPressFrames = 2

func (k *Button) OnMouseClick(c *Context, w *Widget, kind ClickKind) bool {
	if kind != ClickLeft {
		return false
	}
	return k.press(c, w)
}

func (k *Button) OnKeyPress(c *Context, w *Widget, action InputAction) bool {
	if action != ActionAccept || !w.State.mouseInside {
		return false
	}
	return k.press(c, w)
}

func (k *Button) press(c *Context, w *Widget) bool {
	if w.State.Animation.Contains(AnimDisabled) {
		return true
	}
	logDebugf("button '%s' pressed", w.ThemeID)
	w.State.Animation.Add(AnimPressed)
	w.State.pressFrames = buttonPressFrames
	w.FireCallbacks(c)
	return true
}

// OnUpdate releases the pressed variant.
func (k *Button) OnUpdate(_ *Context, w *Widget) error {
	if w.State.pressFrames == 0 {
		return nil
	}
	w.State.pressFrames--
	if w.State.pressFrames == 0 {
		w.State.Animation.Remove(AnimPressed)
	}
	return nil
}

// ConfirmationWindow is a dialog with a title label, a cancel button that
// closes the dialog and an accept button running the caller's callback. The
// children bind to the "title", "cancel" and "accept" themes.
type ConfirmationWindow struct {
	BaseKind
	Res    *ResourceSet
	Title  string
	Accept Callback
}

// NewConfirmationWindow creates a dialog kind. accept runs when the accept
// button is clicked; it is responsible for closing the dialog if it should.
func NewConfirmationWindow(res *ResourceSet, title string, accept Callback) *ConfirmationWindow {
	return &ConfirmationWindow{
		BaseKind: BaseKind{KindName: "confirmation_window"},
		Res:      res,
		Title:    title,
		Accept:   accept,
	}
}

func (k *ConfirmationWindow) OnAdd(*Widget) []*Widget {
	title := NewLabelWidget(k.Res, "title", k.Title)
	cancel := NewButtonWidget(k.Res, "cancel", RemoveParent())
	accept := NewButtonWidget(k.Res, "accept", k.Accept)
	return []*Widget{cancel, accept, title}
}

// OnKeyPress closes the dialog on Back.
func (k *ConfirmationWindow) OnKeyPress(_ *Context, w *Widget, action InputAction) bool {
	if action != ActionBack {
		return false
	}
	w.MarkForRemoval()
	return true
}

// StatsSource reports the frame statistics a StatsLabel shows.
type StatsSource interface {
	Stats() FrameStats
}

// StatsLabel is a label that shows frame statistics, refreshed every
// Interval update passes. One kind may back several widgets; each counts its
// own passes.
type StatsLabel struct {
	Label
	Source   StatsSource
	Interval int
}

// NewStatsLabel creates a stats label reading from src, usually the Loop.
func NewStatsLabel(res *ResourceSet, src StatsSource) *StatsLabel {
	return &StatsLabel{
		Label:    Label{BaseKind: BaseKind{KindName: "stats_label"}, Res: res},
		Source:   src,
		Interval: 15,
	}
}

func (k *StatsLabel) OnUpdate(_ *Context, w *Widget) error {
	if k.Source == nil {
		return nil
	}
	w.State.refreshFrames++
	if w.State.refreshFrames < k.Interval && w.State.Text != "" {
		return nil
	}
	w.State.refreshFrames = 0
	s := k.Source.Stats()
	w.State.Text = fmt.Sprintf("frames %d avg %.1fms", s.Frames, float64(s.AverageFrame().Microseconds())/1000)
	return nil
}
