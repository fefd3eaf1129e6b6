package bramble

import "testing"

const testTheme = `
[menu]
background = "panel"
size = { width = 30, height = 10 }
border = { top = 1, bottom = 1, left = 2, right = 2 }

[menu.text_params]
color = "ffcc00"
font = "big"

[menu.children.ok]
text = "OK"
position = { x = 3, y = 4 }

[menu.children.cancel]
background = "missing"
`

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme([]byte(testTheme))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	menu, ok := th.Child("menu")
	if !ok {
		t.Fatal("menu theme missing")
	}
	if menu.Name != "menu" || menu.Size == nil || *menu.Size != (Size{Width: 30, Height: 10}) {
		t.Errorf("menu = %+v", menu)
	}
	if menu.Border == nil || menu.Border.Left != 2 || menu.Border.Top != 1 {
		t.Errorf("border = %+v", menu.Border)
	}
	if menu.TextParams.Color != "ffcc00" || menu.TextParams.Font != "big" {
		t.Errorf("text params = %+v", menu.TextParams)
	}
	okTheme, found := menu.Child("ok")
	if !found || okTheme.Name != "ok" || okTheme.Text != "OK" {
		t.Fatalf("ok = %+v", okTheme)
	}
	if okTheme.Position == nil || *okTheme.Position != (Point{X: 3, Y: 4}) {
		t.Errorf("ok position = %v", okTheme.Position)
	}
	if _, found := menu.Child("nope"); found {
		t.Error("unexpected child")
	}
}

func TestParseTheme_Invalid(t *testing.T) {
	if _, err := ParseTheme([]byte("[menu\nsize = 3")); err == nil {
		t.Error("expected error")
	}
}

func TestTheme_ChildOnNil(t *testing.T) {
	var th *Theme
	if _, ok := th.Child("x"); ok {
		t.Error("nil theme has no children")
	}
}

func TestTheme_Resolve(t *testing.T) {
	buf := captureLog(t, LevelWarn)
	th, err := ParseTheme([]byte(testTheme))
	if err != nil {
		t.Fatal(err)
	}
	res := NewResourceSet()
	panel := NewSimpleImage("panel", '.', ColorWhite)
	res.AddImage(panel)
	res.AddFont("big", fixedFont{advance: 2, lineHeight: 2, base: 2})
	res.SetTheme(th)

	menu, _ := res.Theme().Child("menu")
	if menu.BackgroundImage != panel {
		t.Errorf("background not resolved: %v", menu.BackgroundImage)
	}
	if menu.TextFont == nil || menu.TextFont.LineHeight() != 2 {
		t.Errorf("font not resolved: %v", menu.TextFont)
	}
	cancel, _ := menu.Child("cancel")
	if cancel.BackgroundImage != nil {
		t.Error("missing image should stay unresolved")
	}
	assertLogged(t, buf, "image not found 'missing'")
}

func TestResourceSet_SetNilTheme(t *testing.T) {
	res := NewResourceSet()
	res.SetTheme(nil)
	if res.Theme() == nil {
		t.Error("Theme must never be nil")
	}
}
