package bramble

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFontName is the font DefaultFont prefers.
const DefaultFontName = "default"

// ResourceSet is the read-only lookup service for fonts, images and the
// theme tree. It is filled once at startup and shared by every widget.
type ResourceSet struct {
	fonts     map[string]Font
	fontOrder []string
	images    map[string]Image
	theme     *Theme
}

// NewResourceSet creates an empty set with an empty theme.
func NewResourceSet() *ResourceSet {
	return &ResourceSet{
		fonts:  make(map[string]Font),
		images: make(map[string]Image),
		theme:  &Theme{},
	}
}

// AddFont registers f under name, replacing any font of that name.
func (rs *ResourceSet) AddFont(name string, f Font) {
	if _, ok := rs.fonts[name]; !ok {
		rs.fontOrder = append(rs.fontOrder, name)
	}
	rs.fonts[name] = f
}

// Font implements FontLookup.
func (rs *ResourceSet) Font(name string) (Font, bool) {
	f, ok := rs.fonts[name]
	return f, ok
}

// DefaultFont returns the font named "default", or else the first font
// added. It returns nil when the set has no fonts.
func (rs *ResourceSet) DefaultFont() Font {
	if f, ok := rs.fonts[DefaultFontName]; ok {
		return f
	}
	if len(rs.fontOrder) == 0 {
		return nil
	}
	return rs.fonts[rs.fontOrder[0]]
}

// AddImage registers img under its ID.
func (rs *ResourceSet) AddImage(img Image) {
	rs.images[img.ID()] = img
}

// Image looks up an image by ID.
func (rs *ResourceSet) Image(name string) (Image, bool) {
	img, ok := rs.images[name]
	return img, ok
}

// SetTheme replaces the theme tree and resolves its image and font names
// against the set.
func (rs *ResourceSet) SetTheme(t *Theme) {
	if t == nil {
		t = &Theme{}
	}
	t.Resolve(rs)
	rs.theme = t
}

// Theme returns the root of the theme tree. It is never nil.
func (rs *ResourceSet) Theme() *Theme {
	return rs.theme
}

// LoadResources reads a resource directory:
//
//	theme.toml    theme tree (required)
//	images.yml    background images (optional)
//	fonts/*.fnt   BMFont text fonts, named after the file (optional)
//
// Images and fonts are loaded before the theme so the theme can resolve
// them.
func LoadResources(dir string) (*ResourceSet, error) {
	rs := NewResourceSet()

	if err := rs.loadFonts(filepath.Join(dir, "fonts")); err != nil {
		return nil, err
	}
	if err := rs.loadImages(filepath.Join(dir, "images.yml")); err != nil {
		return nil, err
	}

	themePath := filepath.Join(dir, "theme.toml")
	data, err := os.ReadFile(themePath)
	if err != nil {
		return nil, fmt.Errorf("bramble: failed to read theme: %w", err)
	}
	th, err := ParseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("bramble: %s: %w", themePath, err)
	}
	rs.SetTheme(th)

	logInfof("loaded resources from %s: %d fonts, %d images, %d themes",
		dir, len(rs.fonts), len(rs.images), len(th.Children))
	return rs, nil
}

func (rs *ResourceSet) loadFonts(dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.fnt"))
	if err != nil {
		return fmt.Errorf("bramble: failed to list fonts: %w", err)
	}
	sort.Strings(paths)
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("bramble: failed to read font: %w", err)
		}
		name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		f, err := LoadBitmapFont(name, data)
		if err != nil {
			return err
		}
		rs.AddFont(name, f)
		logDebugf("loaded font '%s'", name)
	}
	return nil
}

// imagesFile is the images.yml document.
type imagesFile struct {
	Images []imageDef `yaml:"images"`
}

func (rs *ResourceSet) loadImages(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("bramble: failed to read images: %w", err)
	}
	var doc imagesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("bramble: failed to parse %s: %w", path, err)
	}
	for _, def := range doc.Images {
		if def.ID == "" {
			return fmt.Errorf("bramble: %s: image without id", path)
		}
		img, err := def.build()
		if err != nil {
			return err
		}
		rs.AddImage(img)
	}
	return nil
}
