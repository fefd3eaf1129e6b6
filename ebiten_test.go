package bramble

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestEbitenKey(t *testing.T) {
	tests := []struct {
		name    string
		want    ebiten.Key
		wantErr bool
	}{
		{"Escape", ebiten.KeyEscape, false},
		{"esc", ebiten.KeyEscape, false},
		{"Up", ebiten.KeyArrowUp, false},
		{"ArrowDown", ebiten.KeyArrowDown, false},
		{"Enter", ebiten.KeyEnter, false},
		{"q", ebiten.KeyQ, false},
		{"Q", ebiten.KeyQ, false},
		{"7", ebiten.KeyDigit7, false},
		{"F5", ebiten.KeyF5, false},
		{"Hyper", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ebitenKey(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v", err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ebitenKey(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewEbitenIO_Bindings(t *testing.T) {
	io, err := NewEbitenIO(DefaultConfig().Input)
	if err != nil {
		t.Fatalf("NewEbitenIO: %v", err)
	}
	if io.bindings[ebiten.KeyEscape] != ActionShowMenu || io.bindings[ebiten.KeyQ] != ActionExit {
		t.Errorf("bindings = %v", io.bindings)
	}

	_, err = NewEbitenIO(InputConfig{Keybindings: map[string]string{"Hyper": "Exit"}})
	if err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestEbitenIO_RenderOutputRecords(t *testing.T) {
	io, err := NewEbitenIO(InputConfig{})
	if err != nil {
		t.Fatal(err)
	}
	root := NewWidgetWithSize(Container("root"), NewSize(4, 4))
	root.State.Background = NewSolidImage("bg", ColorBlack)
	Mount(root)

	io.RenderOutput(root, 99)
	buf := io.Buffer()
	if buf.Millis != 99 || len(buf.Commands) != 1 || buf.Commands[0].Type != CommandQuad {
		t.Errorf("buffer = %+v", buf)
	}
}

func TestGame_UpdateTerminatesOnExit(t *testing.T) {
	u := &frameUpdater{limit: 2}
	cfg := DefaultConfig()
	loop := NewLoop(NewContext(cfg, nil), NewHeadlessIO(), NewTree(Container("root"), NewSize(8, 8)), u)
	g := NewGame(loop, nil, DisplayConfig{Width: 320, Height: 200})

	if err := g.Update(); err != nil {
		t.Fatalf("first tick: %v", err)
	}
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("second tick = %v, want ebiten.Termination", err)
	}
	if w, h := g.Layout(1920, 1080); w != 320 || h != 200 {
		t.Errorf("Layout = %dx%d", w, h)
	}
}
