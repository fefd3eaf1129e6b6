package bramble

import (
	"fmt"
	"unicode/utf8"
)

// Image is a widget background. Fill paints it over the given rectangle using
// the variant derived from the widget's animation state.
type Image interface {
	ID() string
	Fill(r Renderer, variant string, pos Point, size Size, tint Color)
}

// SimpleImage fills its rectangle with one character per variant, which is
// how backgrounds look in text mode. Variants without an entry fall back to
// "base".
type SimpleImage struct {
	id     string
	runes  map[string]rune
	colors map[string]Color
}

// NewSimpleImage creates a text-mode image. base is the character used for
// every variant that has none of its own.
func NewSimpleImage(id string, base rune, color Color) *SimpleImage {
	return &SimpleImage{
		id:     id,
		runes:  map[string]rune{"base": base},
		colors: map[string]Color{"base": color},
	}
}

// SetVariant sets the character and color used for variant.
func (img *SimpleImage) SetVariant(variant string, r rune, c Color) {
	img.runes[variant] = r
	img.colors[variant] = c
}

func (img *SimpleImage) ID() string { return img.id }

func (img *SimpleImage) Fill(r Renderer, variant string, pos Point, size Size, tint Color) {
	ch, ok := img.runes[variant]
	if !ok {
		variant = "base"
		ch = img.runes[variant]
	}
	r.FillText(TextFill{
		Rune:     ch,
		Position: pos,
		Size:     size,
		Color:    img.colors[variant].Mul(tint),
		Variant:  variant,
	})
}

// SolidImage fills its rectangle with a flat color per variant.
type SolidImage struct {
	id     string
	colors map[string]Color
}

// NewSolidImage creates a flat-color image.
func NewSolidImage(id string, base Color) *SolidImage {
	return &SolidImage{id: id, colors: map[string]Color{"base": base}}
}

// SetVariant sets the color used for variant.
func (img *SolidImage) SetVariant(variant string, c Color) {
	img.colors[variant] = c
}

func (img *SolidImage) ID() string { return img.id }

func (img *SolidImage) Fill(r Renderer, variant string, pos Point, size Size, tint Color) {
	c, ok := img.colors[variant]
	if !ok {
		c = img.colors["base"]
	}
	r.DrawQuad(Quad{
		X:      float64(pos.X),
		Y:      float64(pos.Y),
		Width:  float64(size.Width),
		Height: float64(size.Height),
		Color:  c.Mul(tint),
		Image:  img.id,
	})
}

// imageDef is the images.yml entry format.
type imageDef struct {
	ID     string            `yaml:"id"`
	Kind   string            `yaml:"kind"`
	Text   map[string]string `yaml:"text"`
	Colors map[string]string `yaml:"colors"`
}

func (d imageDef) build() (Image, error) {
	colors := make(map[string]Color, len(d.Colors))
	for variant, hex := range d.Colors {
		c, err := ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("bramble: image %q variant %q: %w", d.ID, variant, err)
		}
		colors[variant] = c
	}
	base, ok := colors["base"]
	if !ok {
		base = ColorWhite
	}

	switch d.Kind {
	case "", "text":
		first, _ := utf8.DecodeRuneInString(d.Text["base"])
		if first == utf8.RuneError {
			first = ' '
		}
		img := NewSimpleImage(d.ID, first, base)
		for variant, s := range d.Text {
			r, _ := utf8.DecodeRuneInString(s)
			if r == utf8.RuneError {
				return nil, fmt.Errorf("bramble: image %q variant %q: empty text", d.ID, variant)
			}
			c, ok := colors[variant]
			if !ok {
				c = base
			}
			img.SetVariant(variant, r, c)
		}
		return img, nil
	case "solid":
		img := NewSolidImage(d.ID, base)
		for variant, c := range colors {
			img.SetVariant(variant, c)
		}
		return img, nil
	}
	return nil, fmt.Errorf("bramble: image %q has unknown kind %q", d.ID, d.Kind)
}
