package sweep

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"lifeca/internal/core"
	"lifeca/internal/life"
	"lifeca/internal/rules"
)

func board(pattern string) life.Config {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 10, 10
	cfg.Pattern = pattern
	return cfg
}

func TestRunBlockIsStable(t *testing.T) {
	results, err := Run(context.Background(), Options{
		Board:       board("block"),
		Generations: 5,
		Rules:       []rules.ID{rules.Conway},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results=%d, want 1", len(results))
	}
	r := results[0]
	if r.StableAt != 1 || r.ExtinctAt != -1 {
		t.Fatalf("stable=%d extinct=%d, want 1 and -1", r.StableAt, r.ExtinctAt)
	}
	if !slices.Equal(r.Population, []int{4, 4, 4, 4, 4, 4}) {
		t.Fatalf("population=%v", r.Population)
	}
	if r.RuleSlug != "conway" {
		t.Fatalf("rule=%q", r.RuleSlug)
	}
}

func TestRunBlinkerNeverStable(t *testing.T) {
	results, err := Run(context.Background(), Options{
		Board:       board("blinker"),
		Generations: 10,
		Rules:       []rules.ID{rules.Conway},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	r := results[0]
	if r.StableAt != -1 {
		t.Fatalf("blinker reported stable at %d", r.StableAt)
	}
	if r.Peak != 3 || r.Final != 3 {
		t.Fatalf("peak=%d final=%d, want 3", r.Peak, r.Final)
	}
}

func TestRunEmptyBoard(t *testing.T) {
	results, err := Run(context.Background(), Options{Board: board("empty"), Generations: 3, Rules: []rules.ID{rules.DayAndNight}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if results[0].ExtinctAt != 0 || results[0].StableAt != 1 {
		t.Fatalf("extinct=%d stable=%d", results[0].ExtinctAt, results[0].StableAt)
	}
}

func TestRunOrderAndDeterminism(t *testing.T) {
	opts := Options{
		Board:       board("random"),
		Generations: 20,
		Workers:     3,
		Rules:       []rules.ID{rules.Conway, rules.WalledCities},
		Seeds:       []int64{1, 2},
	}
	a, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []struct {
		rule rules.ID
		seed int64
	}{{rules.Conway, 1}, {rules.Conway, 2}, {rules.WalledCities, 1}, {rules.WalledCities, 2}}
	if len(a) != len(want) {
		t.Fatalf("results=%d, want %d", len(a), len(want))
	}
	for i, w := range want {
		if a[i].Rule.ID != w.rule || a[i].Seed != w.seed {
			t.Fatalf("result %d = %v/%d, want %v/%d", i, a[i].Rule, a[i].Seed, w.rule, w.seed)
		}
		if !slices.Equal(a[i].Population, b[i].Population) {
			t.Fatalf("result %d differs between runs", i)
		}
		if len(a[i].Population) != 21 {
			t.Fatalf("population samples=%d, want 21", len(a[i].Population))
		}
	}
}

func TestRunDefaultsToAllRules(t *testing.T) {
	results, err := Run(context.Background(), Options{Board: board("square"), Generations: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != len(rules.All()) {
		t.Fatalf("results=%d, want one per rule", len(results))
	}
}

func TestRunErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, Options{Board: board("random"), Generations: 10}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}

	bad := board("random")
	bad.Width = 1
	if _, err := Run(context.Background(), Options{Board: bad, Generations: 1}); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("err=%v, want ErrInvalidDimension", err)
	}

	if _, err := Run(context.Background(), Options{Board: board("empty"), Generations: -1}); err == nil {
		t.Fatal("negative generations accepted")
	}
}

func TestWriteTable(t *testing.T) {
	results, err := Run(context.Background(), Options{Board: board("block"), Generations: 2, Rules: []rules.ID{rules.Conway}, Seeds: []int64{9}})
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := WriteTable(&b, results); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("table lines=%d:\n%s", len(lines), b.String())
	}
	fields := strings.Fields(lines[1])
	if !slices.Equal(fields, []string{"conway", "B3/S23", "9", "4", "4", "4", "1", "-"}) {
		t.Fatalf("row=%v", fields)
	}
}
