package term

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"flowgradient/driver"
	"flowgradient/field"
)

// DefaultInterval is roughly 30 frames a second, which is about as fast as
// most terminals repaint.
const DefaultInterval = time.Second / 30

// Loop redraws the terminal on a ticker until it's stopped, the context is
// cancelled or the user presses Esc, q or Ctrl-C.
type Loop struct {
	Screen   tcell.Screen
	Model    *field.Model
	Driver   *driver.Driver
	Rng      *rand.Rand
	Interval time.Duration

	// Clock returns the time passed since some fixed point. Nil means the
	// wall clock.
	Clock func() time.Duration

	// OnFrame is called after every frame is shown.
	OnFrame func(u field.Uniforms)

	frames atomic.Int64

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewLoop(screen tcell.Screen, model *field.Model, drv *driver.Driver, rng *rand.Rand) *Loop {
	return &Loop{
		Screen:   screen,
		Model:    model,
		Driver:   drv,
		Rng:      rng,
		Interval: DefaultInterval,

		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Stop ends Run. It can be called any number of times, from any goroutine,
// before or after Run.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Frames is how many frames have been shown.
func (l *Loop) Frames() int64 {
	return l.frames.Load()
}

// Run draws frames until the loop ends. The first frame is drawn right away.
// A resize is picked up by the next frame.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	defer l.Driver.Stop()

	clock := l.Clock
	if clock == nil {
		start := time.Now()
		clock = func() time.Duration { return time.Since(start) }
	}

	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	events := make(chan tcell.Event, 16)
	go l.pumpEvents(events)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	select {
	case <-l.stop:
		return nil
	default:
	}

	l.frame(clock())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-l.stop:
			return nil

		case ev := <-events:
			if !l.handleEvent(ev) {
				l.Stop()
				return nil
			}

		case <-ticker.C:
			l.frame(clock())
		}
	}
}

func (l *Loop) pumpEvents(events chan<- tcell.Event) {
	for {
		ev := l.Screen.PollEvent()
		if ev == nil {
			// screen was finalised
			return
		}
		select {
		case events <- ev:
		case <-l.stop:
			return
		}
	}
}

func (l *Loop) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventResize:
		l.Screen.Sync()
	}

	return true
}

func (l *Loop) frame(now time.Duration) {
	cols, rows := l.Screen.Size()
	res := VirtualSize(cols, rows)

	if l.Driver.State() == driver.StateUninitialized {
		l.Driver.Start(l.Rng, now, res)
	}

	u := l.Driver.Step(now, res)

	Draw(l.Screen, l.Model, u)
	l.Screen.Show()

	l.frames.Add(1)

	if l.OnFrame != nil {
		l.OnFrame(u)
	}
}
