package app

import (
	"reflect"
	"testing"

	"lifeca/internal/life"
	"lifeca/internal/rules"
)

func TestEventsOrder(t *testing.T) {
	in := Input{
		Toggle:     true,
		Slower:     true,
		Rule:       rules.WalledCities,
		Clear:      true,
		PaintAlive: true,
		CursorX:    12,
		CursorY:    30,
		Step:       true,
	}
	got := Events(in, 9)
	want := []life.Event{
		life.ToggleRun{},
		life.SpeedDown{},
		life.SelectRule{ID: rules.WalledCities},
		life.ClearBoard{},
		life.PaintAlive{X: 12, Y: 30},
		life.StepOnce{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("events=%#v\nwant %#v", got, want)
	}
}

func TestEventsEmpty(t *testing.T) {
	if got := Events(Input{CursorX: 5, CursorY: 5}, 1); len(got) != 0 {
		t.Fatalf("idle input produced %d events", len(got))
	}
}

func TestEventsReseedAndErase(t *testing.T) {
	got := Events(Input{Reseed: true, PaintDead: true, CursorX: 1, CursorY: 2}, 77)
	want := []life.Event{life.Reseed{Seed: 77}, life.PaintDead{X: 1, Y: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("events=%#v\nwant %#v", got, want)
	}
}

func TestEventsDriveEngine(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Pattern = "empty"
	e, err := life.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	e.Update(0, Events(Input{PaintAlive: true, CursorX: 75, CursorY: 25}, 0)...)
	if !e.Alive(1, 0) {
		t.Fatal("left drag did not paint (1,0)")
	}
	e.Update(0, Events(Input{Faster: true, Rule: rules.DayAndNight}, 0)...)
	if e.Interval() != 0.05 || e.Rule().ID != rules.DayAndNight {
		t.Fatalf("interval=%v rule=%v", e.Interval(), e.Rule())
	}
}
