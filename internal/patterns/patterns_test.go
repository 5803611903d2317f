package patterns

import (
	"errors"
	"testing"

	"lifeca/internal/core"
)

func apply(t *testing.T, name string, w, h int, opts Options) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	p, err := Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", name, err)
	}
	p.Apply(g, opts)
	g.Commit()
	return g
}

func alive(g *core.Grid) map[[2]int]bool {
	out := map[[2]int]bool{}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Alive(x, y) {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func TestFixedPatterns(t *testing.T) {
	tests := []struct {
		name string
		want [][2]int
	}{
		{"block", [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}},
		{"blinker", [][2]int{{2, 2}, {2, 3}, {2, 4}}},
		{"blinker-corner", [][2]int{{6, 5}, {7, 5}, {8, 5}}},
		{"diagonal", [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {6, 6}, {7, 7}}},
	}
	for _, tt := range tests {
		g := apply(t, tt.name, 10, 8, Options{})
		got := alive(g)
		if len(got) != len(tt.want) {
			t.Fatalf("%s: %d alive cells, want %d", tt.name, len(got), len(tt.want))
		}
		for _, p := range tt.want {
			if !got[p] {
				t.Fatalf("%s: cell %v not alive", tt.name, p)
			}
		}
	}
}

func TestBorderAndCheckerboardCounts(t *testing.T) {
	if pop := apply(t, "border", 6, 4, Options{}).Population(); pop != 2*6+2*4-4 {
		t.Fatalf("border population=%d, want %d", pop, 2*6+2*4-4)
	}
	if pop := apply(t, "checkerboard", 6, 4, Options{}).Population(); pop != 12 {
		t.Fatalf("checkerboard population=%d, want 12", pop)
	}
	if pop := apply(t, "empty", 6, 4, Options{}).Population(); pop != 0 {
		t.Fatalf("empty population=%d, want 0", pop)
	}
}

func TestCrossIncludesBothDiagonals(t *testing.T) {
	g := apply(t, "cross", 5, 5, Options{})
	for i := 0; i < 5; i++ {
		if !g.Alive(i, i) || !g.Alive(i, 4-i) {
			t.Fatalf("cross missing diagonal cell at index %d", i)
		}
	}
}

func TestCrossOnTallBoard(t *testing.T) {
	got := alive(apply(t, "cross", 4, 7, Options{}))
	want := [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {0, 6}, {1, 5}, {2, 4}}
	if len(got) != len(want) {
		t.Fatalf("cross on 4x7: %d alive cells, want %d: %v", len(got), len(want), got)
	}
	for _, p := range want {
		if !got[p] {
			t.Fatalf("cross on 4x7: cell %v not alive", p)
		}
	}
}

func TestPatternsClipToSmallBoards(t *testing.T) {
	for _, p := range All() {
		g, _ := core.NewGrid(2, 2)
		p.Apply(g, Options{RNG: core.NewRNG(1)})
		g.Commit()
		if g.Population() > 4 {
			t.Fatalf("%s produced more cells than the board holds", p.Name)
		}
	}
}

func TestRandomDensity(t *testing.T) {
	g := apply(t, "random", 20, 12, Options{RNG: core.NewRNG(11)})
	pop := g.Population()
	if pop == 0 || pop > 120 {
		t.Fatalf("random population=%d, want within (0, 120]", pop)
	}

	sparse := apply(t, "random", 20, 12, Options{RNG: core.NewRNG(11), Density: 0.1})
	if sparse.Population() > 24 {
		t.Fatalf("density 0.1 population=%d, want at most 24", sparse.Population())
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("glider-gun"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("Lookup err=%v, want ErrUnknownPattern", err)
	}
}
