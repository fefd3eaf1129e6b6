// Package term runs bramble widget trees in a terminal through tcell.
//
// IO drains pending tcell events on the loop goroutine and maps them to
// bramble events through the configured key bindings; Renderer turns draw
// primitives into cells; CellFont measures text in cells.
//
//	screen, err := tcell.NewScreen()
//	...
//	io, err := term.NewIO(screen, cfg.Input)
//	res.AddFont(bramble.DefaultFontName, term.CellFont{})
//	err = bramble.NewLoop(ctx, io, root, updater).Run()
package term
