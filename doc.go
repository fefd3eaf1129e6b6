// Package bramble is a retained-mode UI core for games: a widget tree with
// theme-driven layout, hit-tested event dispatch with enter/exit tracking,
// inline text markup, and a fixed-timestep main loop.
//
// # Widgets
//
// A [Widget] pairs a [WidgetKind], the shared behavior of a control, with its
// own [WidgetState]. Children are kept in z-order: earlier children are drawn
// first and are offered events first.
//
//	root := bramble.NewWidgetWithSize(bramble.Container("root"), bramble.NewSize(80, 24))
//	bramble.BindTheme(root, res.Theme(), "main_menu")
//	root.AddChild(bramble.NewButtonWidget(res, "start", onStart))
//	bramble.Mount(root)
//
// Embed [BaseKind] in custom kinds and override the handlers you need. An
// event handler returns true when it consumed the event.
//
// # Events
//
// [Widget.DispatchEvent] walks the children in order, hit-testing each
// against the event's pointer position. A child is sent a mouse-enter before
// the first event that reaches it and a mouse-exit when the pointer leaves,
// so enters and exits always pair up. The first subtree that handles an
// event stops the walk.
//
// # Markup
//
// Label text may contain styled runs, [directives|text]. Directives are a tag
// letter, a value and ';':
//
//	c  color, rrggbb or rrggbbaa hex
//	s  scale
//	x  pen x offset from the text origin
//	y  pen y offset from the text origin
//	i  inline image
//	f  font by name
//
// "[c=ff0000ff;s=2;|Warning]" draws Warning in red at twice the size. Bad
// values are logged and never fail the draw.
//
// # Main loop
//
// [Loop] drives one tree: input, the game's [Updater], the tree update pass
// and rendering, then a sleep for the rest of the frame budget. Overrunning
// frames are not compensated. Backends implement [IO]: [EbitenIO] renders
// into an Ebitengine window (see [Game]), package term into a terminal
// through tcell, and [HeadlessIO] into a [CommandBuffer].
//
// # Resources and configuration
//
// [LoadResources] reads theme.toml, images.yml and fonts/*.fnt from a
// directory; [LoadConfig] reads a YAML config file. Log output goes through
// [Logger], filtered by the configured level.
package bramble
