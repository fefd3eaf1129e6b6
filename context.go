package bramble

// Context is the explicit process-wide state handed to input handling,
// callbacks and updaters. There are no globals; whoever builds the loop
// builds the context.
type Context struct {
	Config    *Config
	Resources *ResourceSet
	// Store, when set, receives an InteractionEvent for every event handled
	// by a widget with a non-zero EntityID.
	Store EntityStore
	// State is free for the application, e.g. the current game screen.
	State any
}

// NewContext creates a context. A nil cfg means DefaultConfig and a nil res
// an empty resource set.
func NewContext(cfg *Config, res *ResourceSet) *Context {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if res == nil {
		res = NewResourceSet()
	}
	return &Context{Config: cfg, Resources: res}
}
