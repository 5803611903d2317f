package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := newRootCmd()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootHasSubcommands(t *testing.T) {
	rootCmd := newRootCmd()
	want := map[string]bool{"gui": false, "tui": false, "run": false, "sweep": false, "rules": false, "patterns": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestRulesCmd(t *testing.T) {
	out, err := execute(t, "rules")
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	for _, want := range []string{"conway", "B3/S23", "day-and-night", "B3678/S34678", "walled-cities", "B45678/S2345", "coral-growth", "B3/S45678"} {
		if !strings.Contains(out, want) {
			t.Errorf("rules output missing %q:\n%s", want, out)
		}
	}
}

func TestRulesCmdJSON(t *testing.T) {
	out, err := execute(t, "rules", "--json")
	if err != nil {
		t.Fatalf("rules --json: %v", err)
	}
	var got []struct {
		ID       int    `json:"id"`
		Notation string `json:"notation"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(got) != 4 || got[0].ID != 1 || got[0].Notation != "B3/S23" {
		t.Fatalf("unexpected rules: %+v", got)
	}
}

func TestPatternsCmd(t *testing.T) {
	out, err := execute(t, "patterns", "--json")
	if err != nil {
		t.Fatalf("patterns: %v", err)
	}
	var got []map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	names := map[string]bool{}
	for _, p := range got {
		names[p["name"]] = true
	}
	for _, want := range []string{"random", "block", "blinker", "square", "empty"} {
		if !names[want] {
			t.Errorf("pattern %q not listed", want)
		}
	}
}

func TestRunCmdBlinker(t *testing.T) {
	out, err := execute(t, "run", "--pattern", "blinker", "--width", "6", "--height", "7", "--ticks", "1", "--dt", "1")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := strings.Join([]string{
		"......",
		"......",
		"......",
		".###..",
		"......",
		"......",
		"......",
		"generation 1 population 3 rule conway",
	}, "\n") + "\n"
	if out != want {
		t.Fatalf("run output:\n%s\nwant:\n%s", out, want)
	}
}

func TestRunCmdTicksBelowInterval(t *testing.T) {
	out, err := execute(t, "run", "--pattern", "block", "--width", "4", "--height", "4", "--ticks", "3", "--dt", "0.01", "--json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var got runOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Generation != 0 || got.Population != 4 {
		t.Fatalf("got %+v, want generation 0 population 4", got)
	}
	if len(got.Rows) != 4 || got.Rows[1] != ".##." {
		t.Fatalf("rows=%q", got.Rows)
	}
}

func TestRunCmdConfigFileAndFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifeca.yaml")
	content := `
board:
  width: 5
  height: 4
sim:
  pattern: empty
  rule: walled-cities
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "run", "--config", path, "--ticks", "0", "--json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var got runOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Width != 5 || got.Height != 4 || got.Rule != "walled-cities" {
		t.Fatalf("config file not applied: %+v", got)
	}

	out, err = execute(t, "run", "--config", path, "--width", "9", "--ticks", "0", "--json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Width != 9 || got.Height != 4 {
		t.Fatalf("flag did not override file: %+v", got)
	}
}

func TestRunCmdRejectsInvalidConfig(t *testing.T) {
	cases := [][]string{
		{"run", "--interval", "5"},
		{"run", "--width", "1"},
		{"run", "--pattern", "glider-gun"},
		{"run", "--log-level", "loud"},
		{"run", "--config", filepath.Join(t.TempDir(), "missing.yaml")},
	}
	for _, args := range cases {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestSweepCmdJSON(t *testing.T) {
	out, err := execute(t, "sweep", "--pattern", "block", "--width", "8", "--height", "8",
		"--generations", "3", "--rules", "conway,coral-growth", "--seeds", "1,2", "--json")
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	var got []struct {
		Rule     string `json:"rule"`
		Seed     int64  `json:"seed"`
		Final    int    `json:"final"`
		StableAt int    `json:"stable_at"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(got) != 4 {
		t.Fatalf("results=%d, want 4", len(got))
	}
	if got[0].Rule != "conway" || got[0].Seed != 1 || got[0].Final != 4 || got[0].StableAt != 1 {
		t.Fatalf("first result=%+v", got[0])
	}
	if got[3].Rule != "coral-growth" || got[3].Seed != 2 {
		t.Fatalf("last result=%+v", got[3])
	}
}

func TestSweepCmdUnknownRule(t *testing.T) {
	if _, err := execute(t, "sweep", "--rules", "highlife", "--generations", "1"); err == nil {
		t.Fatal("expected unknown rule error")
	}
}

func TestSweepCmdTable(t *testing.T) {
	out, err := execute(t, "sweep", "--pattern", "empty", "--width", "4", "--height", "4", "--generations", "1", "--rules", "1")
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if !strings.HasPrefix(out, "RULE") || !strings.Contains(out, "conway") {
		t.Fatalf("table output:\n%s", out)
	}
}
