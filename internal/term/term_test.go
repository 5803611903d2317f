package term

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifeca/internal/life"
	"lifeca/internal/render"
	"lifeca/internal/rules"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(80, 30)
	t.Cleanup(s.Fini)
	return s
}

func newFrontend(t *testing.T, opts ...Option) (*Frontend, *life.Engine, tcell.SimulationScreen) {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 10, 6
	cfg.CellSize = 10
	cfg.Pattern = "empty"
	e, err := life.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s := newScreen(t)
	return New(s, e, opts...), e, s
}

func rowText(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func TestHandleKeys(t *testing.T) {
	f, _, _ := newFrontend(t, WithSeedSource(func() int64 { return 5 }))
	cases := []struct {
		key  tcell.Key
		r    rune
		want []life.Event
		quit bool
	}{
		{tcell.KeyRune, ' ', []life.Event{life.ToggleRun{}}, false},
		{tcell.KeyRune, '+', []life.Event{life.SpeedUp{}}, false},
		{tcell.KeyRune, '=', []life.Event{life.SpeedUp{}}, false},
		{tcell.KeyRune, '-', []life.Event{life.SpeedDown{}}, false},
		{tcell.KeyRune, '3', []life.Event{life.SelectRule{ID: rules.WalledCities}}, false},
		{tcell.KeyRune, 'c', []life.Event{life.ClearBoard{}}, false},
		{tcell.KeyRune, 'r', []life.Event{life.Reseed{Seed: 5}}, false},
		{tcell.KeyRune, 'n', []life.Event{life.StepOnce{}}, false},
		{tcell.KeyRune, 'x', nil, false},
		{tcell.KeyRune, 'q', nil, true},
		{tcell.KeyEscape, 0, nil, true},
		{tcell.KeyCtrlC, 0, nil, true},
		{tcell.KeyTab, 0, nil, false},
	}
	for _, c := range cases {
		got, quit := f.Handle(tcell.NewEventKey(c.key, c.r, tcell.ModNone))
		if quit != c.quit || !reflect.DeepEqual(got, c.want) {
			t.Fatalf("key %v %q: got %#v quit=%v, want %#v quit=%v", c.key, c.r, got, quit, c.want, c.quit)
		}
	}
}

func TestHandleMousePaints(t *testing.T) {
	f, e, _ := newFrontend(t)

	// Column 7 is the right half of board cell 3.
	events, _ := f.Handle(tcell.NewEventMouse(7, 2, tcell.Button1, tcell.ModNone))
	e.Update(0, events...)
	if !e.Alive(3, 2) {
		t.Fatal("left button did not paint (3,2)")
	}

	events, _ = f.Handle(tcell.NewEventMouse(6, 2, tcell.Button2, tcell.ModNone))
	e.Update(0, events...)
	if e.Alive(3, 2) {
		t.Fatal("right button did not erase (3,2)")
	}

	for _, pos := range [][2]int{{20, 0}, {0, 6}, {40, 20}} {
		if events, _ := f.Handle(tcell.NewEventMouse(pos[0], pos[1], tcell.Button1, tcell.ModNone)); events != nil {
			t.Fatalf("mouse at %v off the board produced %#v", pos, events)
		}
	}
	if events, _ := f.Handle(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone)); events != nil {
		t.Fatalf("motion without buttons produced %#v", events)
	}
}

func TestDrawBoardAndStatus(t *testing.T) {
	p := render.DefaultPalette()
	f, e, s := newFrontend(t, WithPalette(p))
	if err := e.SetCell(1, 0, true); err != nil {
		t.Fatal(err)
	}
	f.Draw()

	_, _, style, _ := s.GetContent(2, 0)
	_, bg, _ := style.Decompose()
	if bg != tcell.NewRGBColor(0, 255, 0) {
		t.Fatalf("alive cell background=%v, want green", bg)
	}
	_, _, style, _ = s.GetContent(0, 0)
	_, bg, _ = style.Decompose()
	if bg != tcell.NewRGBColor(0, 0, 0) {
		t.Fatalf("dead cell background=%v, want black", bg)
	}

	status := rowText(s, 6)
	for _, want := range []string{"paused", "gen 0", "pop 1", "Conway B3/S23", "0.10s"} {
		if !strings.Contains(status, want) {
			t.Fatalf("status %q missing %q", status, want)
		}
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	f, e, s := newFrontend(t, WithFrame(time.Millisecond))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- f.Run(ctx) }()

	s.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	// Give the frame loop time to hand the step to the engine.
	time.Sleep(100 * time.Millisecond)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run returned %v, want nil", err)
		}
		if e.Generation() != 1 {
			t.Fatalf("generation=%d after n, want 1", e.Generation())
		}
	case <-ctx.Done():
		t.Fatal("Run did not return after q")
	}
}

func TestRunStopsOnContext(t *testing.T) {
	f, _, _ := newFrontend(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := f.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run err=%v, want context.Canceled", err)
	}
}
