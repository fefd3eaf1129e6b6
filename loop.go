package bramble

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoRoot is returned by Run and Step when the loop has no root widget.
var ErrNoRoot = errors.New("bramble: loop has no root widget")

// IO is the input source and render sink of a loop.
type IO interface {
	// ProcessInput dispatches every pending input event into root. It must
	// not block.
	ProcessInput(c *Context, root *Widget)
	// RenderOutput draws root. millis is the time since the loop started.
	RenderOutput(root *Widget, millis uint32)
}

// Updater is the per-frame hook of the game: a main-menu driver, an in-game
// driver and so on.
type Updater interface {
	// Update runs once per frame after input. An error stops the loop.
	Update() error
	// IsExit is checked at the end of every frame.
	IsExit() bool
}

// ExitUpdater is an Updater that does nothing until Quit is called. Embed it
// in drivers that only need the exit flag.
type ExitUpdater struct {
	exit bool
}

func (u *ExitUpdater) Update() error { return nil }
func (u *ExitUpdater) IsExit() bool  { return u.exit }

// Quit makes the loop stop at the end of the current frame.
func (u *ExitUpdater) Quit() { u.exit = true }

// FrameStats is the aggregate timing of a loop.
type FrameStats struct {
	Frames int
	// Work is the time spent inside frames, sleeping excluded.
	Work time.Duration
	// Slept is the time spent idling to hold the frame rate.
	Slept time.Duration
	// Overruns counts frames that took longer than the frame budget.
	Overruns int
}

// AverageFrame returns the mean work time per frame.
func (s FrameStats) AverageFrame() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.Work / time.Duration(s.Frames)
}

func (s FrameStats) String() string {
	return fmt.Sprintf("%d frames, %v work, %v average, %v slept, %d overruns",
		s.Frames, s.Work, s.AverageFrame(), s.Slept, s.Overruns)
}

// Loop drives one widget tree at a fixed frame budget.
type Loop struct {
	ctx     *Context
	io      IO
	root    *Widget
	updater Updater

	frame time.Duration
	now   func() time.Time
	sleep func(time.Duration)

	started   time.Time
	lastStart time.Time
	stats     FrameStats
}

// NewLoop creates a loop paced by c.Config.Display.FrameRate.
func NewLoop(c *Context, io IO, root *Widget, updater Updater) *Loop {
	if c == nil {
		c = NewContext(nil, nil)
	}
	if c.Config == nil {
		c.Config = DefaultConfig()
	}
	return &Loop{
		ctx:     c,
		io:      io,
		root:    root,
		updater: updater,
		frame:   c.Config.Display.FrameDuration(),
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

// WithClock replaces the wall clock and the sleep function, for tests.
func (l *Loop) WithClock(now func() time.Time, sleep func(time.Duration)) *Loop {
	l.now = now
	l.sleep = sleep
	return l
}

// FrameDuration returns the frame budget.
func (l *Loop) FrameDuration() time.Duration { return l.frame }

// Stats returns the timing collected so far.
func (l *Loop) Stats() FrameStats { return l.stats }

// Root returns the driven tree.
func (l *Loop) Root() *Widget { return l.root }

// Run executes frames until the updater asks to exit or a frame fails. A
// frame that finishes early sleeps for the rest of its budget; a frame that
// overruns is followed immediately by the next one, with no catch-up.
func (l *Loop) Run() error {
	logInfof("main loop started, frame budget %v", l.frame)
	for {
		start := l.now()
		exit, err := l.step(start)
		if err != nil {
			logErrorf("main loop aborted after %d frames: %v", l.stats.Frames, err)
			return err
		}
		if exit {
			break
		}
		elapsed := l.now().Sub(start)
		if elapsed < l.frame {
			rest := l.frame - elapsed
			l.sleep(rest)
			l.stats.Slept += rest
		}
	}
	logInfof("main loop finished: %s", l.stats)
	return nil
}

// Step executes a single frame without pacing. Hosts that own the frame
// clock, such as Ebitengine, call it once per tick.
func (l *Loop) Step() (exit bool, err error) {
	return l.step(l.now())
}

func (l *Loop) step(start time.Time) (bool, error) {
	if l.root == nil {
		return false, ErrNoRoot
	}
	if l.started.IsZero() {
		l.started = start
		l.lastStart = start.Add(-l.frame)
	}
	dt := float32(start.Sub(l.lastStart).Seconds())
	l.lastStart = start

	if l.io != nil {
		l.io.ProcessInput(l.ctx, l.root)
	}
	if l.updater != nil {
		if err := l.updater.Update(); err != nil {
			return false, fmt.Errorf("bramble: updater: %w", err)
		}
	}
	if err := l.root.Update(l.ctx, dt); err != nil {
		return false, fmt.Errorf("bramble: update ui tree: %w", err)
	}
	if l.io != nil {
		l.io.RenderOutput(l.root, uint32(start.Sub(l.started).Milliseconds()))
	}

	work := l.now().Sub(start)
	l.stats.Frames++
	l.stats.Work += work
	if work > l.frame {
		l.stats.Overruns++
	}
	return l.updater != nil && l.updater.IsExit(), nil
}
