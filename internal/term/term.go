// Package term is a terminal frontend for the life engine built on tcell.
// Each board cell is drawn two columns wide; the row below the board shows
// the engine status.
package term

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifeca/internal/core"
	"lifeca/internal/life"
	"lifeca/internal/logging"
	"lifeca/internal/render"
	"lifeca/internal/rules"
)

// DefaultFrame is the redraw period.
const DefaultFrame = 33 * time.Millisecond

const cellColumns = 2

// Frontend drives an engine from a tcell screen.
type Frontend struct {
	screen tcell.Screen
	engine *life.Engine
	clock  *core.DeltaClock

	frame time.Duration
	alive tcell.Style
	dead  tcell.Style
	text  tcell.Style
	seed  func() int64
	log   *slog.Logger
}

// Option customizes a Frontend.
type Option func(*Frontend)

// WithPalette draws cells with p's alive and dead colors.
func WithPalette(p render.Palette) Option {
	return func(f *Frontend) {
		f.alive = tcell.StyleDefault.Background(toTcell(p.Alive))
		f.dead = tcell.StyleDefault.Background(toTcell(p.Dead))
	}
}

// WithFrame sets the redraw period.
func WithFrame(d time.Duration) Option {
	return func(f *Frontend) {
		if d > 0 {
			f.frame = d
		}
	}
}

// WithSeedSource sets where reseed requests draw their seed from.
func WithSeedSource(fn func() int64) Option {
	return func(f *Frontend) {
		if fn != nil {
			f.seed = fn
		}
	}
}

// WithLogger routes frontend logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(f *Frontend) {
		if l != nil {
			f.log = l
		}
	}
}

// New wraps an initialized screen. The caller owns the screen lifecycle.
func New(screen tcell.Screen, engine *life.Engine, opts ...Option) *Frontend {
	f := &Frontend{
		screen: screen,
		engine: engine,
		clock:  core.NewDeltaClock(),
		frame:  DefaultFrame,
		seed:   func() int64 { return time.Now().UnixNano() },
		log:    logging.Discard(),
	}
	WithPalette(render.DefaultPalette())(f)
	f.text = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Run polls input and redraws until the user quits or ctx is done. Input
// collected between frames is handed to the engine on the next frame.
func (f *Frontend) Run(ctx context.Context) error {
	f.screen.EnableMouse()
	defer f.screen.DisableMouse()

	done := make(chan struct{})
	defer close(done)
	input := make(chan tcell.Event)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case input <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(f.frame)
	defer ticker.Stop()

	var pending []life.Event
	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-input:
			events, quit := f.Handle(ev)
			if quit {
				f.log.Info("terminal frontend quit", "generation", f.engine.Generation())
				return nil
			}
			pending = append(pending, events...)
		case <-ticker.C:
			f.engine.Update(f.clock.Tick(), pending...)
			pending = pending[:0]
			f.Draw()
		}
	}
}

// Handle translates one terminal event into engine events.
func (f *Frontend) Handle(ev tcell.Event) (events []life.Event, quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		return f.handleKey(ev)
	case *tcell.EventMouse:
		return f.handleMouse(ev), false
	}
	return nil, false
}

func (f *Frontend) handleKey(ev *tcell.EventKey) ([]life.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyRune:
	default:
		return nil, false
	}
	switch r := ev.Rune(); r {
	case 'q', 'Q':
		return nil, true
	case ' ':
		return []life.Event{life.ToggleRun{}}, false
	case '+', '=':
		return []life.Event{life.SpeedUp{}}, false
	case '-', '_':
		return []life.Event{life.SpeedDown{}}, false
	case '1', '2', '3', '4':
		return []life.Event{life.SelectRule{ID: rules.ID(r - '0')}}, false
	case 'c', 'C':
		return []life.Event{life.ClearBoard{}}, false
	case 'r', 'R':
		return []life.Event{life.Reseed{Seed: f.seed()}}, false
	case 'n', 'N':
		return []life.Event{life.StepOnce{}}, false
	}
	return nil, false
}

// handleMouse maps a held button over a board cell to a paint event at the
// cell's pixel center.
func (f *Frontend) handleMouse(ev *tcell.EventMouse) []life.Event {
	col, row := ev.Position()
	size := f.engine.View().Size()
	x, y := col/cellColumns, row
	if !size.Contains(x, y) {
		return nil
	}
	cs := f.engine.CellSize()
	px, py := (float64(x)+0.5)*cs, (float64(y)+0.5)*cs
	switch btn := ev.Buttons(); {
	case btn&tcell.Button1 != 0:
		return []life.Event{life.PaintAlive{X: px, Y: py}}
	case btn&tcell.Button2 != 0:
		return []life.Event{life.PaintDead{X: px, Y: py}}
	}
	return nil
}

// Draw paints the committed board and the status line, then shows them.
func (f *Frontend) Draw() {
	f.screen.Clear()
	v := f.engine.View()
	size := v.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			style := f.dead
			if v.Alive(x, y) {
				style = f.alive
			}
			for c := 0; c < cellColumns; c++ {
				f.screen.SetContent(x*cellColumns+c, y, ' ', nil, style)
			}
		}
	}
	f.drawText(0, size.H, f.Status())
	f.drawText(0, size.H+1, "space run  +/- speed  1-4 rule  n step  c clear  r reseed  q quit")
	f.screen.Show()
}

// Status renders the engine state for the status line.
func (f *Frontend) Status() string {
	e := f.engine
	r := e.Rule()
	return fmt.Sprintf("%s  gen %d  pop %d  %s %s  %.2fs",
		e.State(), e.Generation(), e.Population(), r.Name, r.Notation(), e.Interval())
}

func (f *Frontend) drawText(x, y int, s string) {
	for i, r := range []rune(s) {
		f.screen.SetContent(x+i, y, r, nil, f.text)
	}
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
