package bramble

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Theme is one node of the theme tree. Widgets bind to a node by name
// relative to their parent's theme; every field is optional.
type Theme struct {
	Name       string            `toml:"-"`
	Size       *Size             `toml:"size"`
	Position   *Point            `toml:"position"`
	Border     *Border           `toml:"border"`
	Background string            `toml:"background"`
	Text       string            `toml:"text"`
	TextParams TextParams        `toml:"text_params"`
	Children   map[string]*Theme `toml:"children"`

	// Resolved against a ResourceSet by Resolve.
	BackgroundImage Image `toml:"-"`
	TextFont        Font  `toml:"-"`
}

// TextParams is the default text style of a themed widget.
type TextParams struct {
	Color string  `toml:"color"`
	Scale float64 `toml:"scale"`
	Font  string  `toml:"font"`
}

// ParseTheme decodes a TOML theme document. Top-level tables become children
// of the returned root.
//
//	[main_menu]
//	size = { width = 40, height = 12 }
//	background = "panel"
//
//	[main_menu.children.title]
//	text = "Main Menu"
func ParseTheme(data []byte) (*Theme, error) {
	var top map[string]*Theme
	if err := toml.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("bramble: failed to parse theme: %w", err)
	}
	root := &Theme{Name: "", Children: top}
	root.setNames()
	return root, nil
}

func (t *Theme) setNames() {
	for sub, child := range t.Children {
		if child == nil {
			child = &Theme{}
			t.Children[sub] = child
		}
		child.Name = sub
		child.setNames()
	}
}

// Resolve looks up the background image and text font names of t and its
// descendants. Unknown names are logged and left unresolved.
func (t *Theme) Resolve(res *ResourceSet) {
	if t == nil {
		return
	}
	if t.Background != "" {
		if img, ok := res.Image(t.Background); ok {
			t.BackgroundImage = img
		} else {
			logWarnf("theme '%s': image not found '%s'", t.Name, t.Background)
		}
	}
	if t.TextParams.Font != "" {
		if f, ok := res.Font(t.TextParams.Font); ok {
			t.TextFont = f
		} else {
			logWarnf("theme '%s': font not found '%s'", t.Name, t.TextParams.Font)
		}
	}
	for _, c := range t.Children {
		c.Resolve(res)
	}
}

// Child returns the named child theme.
func (t *Theme) Child(name string) (*Theme, bool) {
	if t == nil {
		return nil, false
	}
	c, ok := t.Children[name]
	return c, ok && c != nil
}

// BindTheme attaches a child of the resource set's root theme to w, the way
// the top widget of a screen is themed. It returns false and logs a warning
// when the theme does not exist.
func BindTheme(w *Widget, root *Theme, name string) bool {
	th, ok := root.Child(name)
	if !ok {
		logWarnf("no theme found for '%s'", name)
		return false
	}
	w.Theme = th
	w.ThemeSubname = name
	w.ThemeID = "." + name
	w.bindChildThemes()
	return true
}
