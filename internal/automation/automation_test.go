package automation

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/armchain/internal/chain"
)

const growShrink = `
name: grow-and-shrink
description: append three, spin, remove four
seed: 7
steps:
  - action: append
    repeat: 3
  - action: advance
    frames: 60
    dt: 0.01
  - action: remove
    repeat: 3
  - action: remove
`

func newChain(t *testing.T) *chain.Chain {
	t.Helper()
	c, err := chain.New(chain.Vec2{X: 400, Y: 300}, chain.DefaultParams(), chain.NewSource(7))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(growShrink))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if sc.Name != "grow-and-shrink" || sc.Seed != 7 {
		t.Errorf("unexpected header: %+v", sc)
	}
	if len(sc.Steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(sc.Steps))
	}
	if sc.Steps[1].Frames != 60 || sc.Steps[1].Dt != 0.01 {
		t.Errorf("advance step = %+v", sc.Steps[1])
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(growShrink), 0644); err != nil {
		t.Fatal(err)
	}
	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(sc.Steps) != 4 {
		t.Errorf("expected 4 steps, got %d", len(sc.Steps))
	}

	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(growShrink))
	if err != nil {
		t.Fatal(err)
	}
	c := newChain(t)

	cps, err := RunScenario(context.Background(), sc, c)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	wantLens := []int{4, 4, 1, 1}
	if len(cps) != len(wantLens) {
		t.Fatalf("expected %d checkpoints, got %d", len(wantLens), len(cps))
	}
	for i, cp := range cps {
		if cp.Len != wantLens[i] {
			t.Errorf("step %d len = %d, want %d", cp.Step, cp.Len, wantLens[i])
		}
	}
	if math.Abs(cps[1].Time-0.6) > 1e-9 {
		t.Errorf("time after advance = %v, want 0.6", cps[1].Time)
	}
	if cps[3].Reach != 0 {
		t.Errorf("root-only reach = %v", cps[3].Reach)
	}
}

func TestRunScenarioDefaultDt(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{{Action: "append"}, {Action: "advance", Frames: 60}}}
	cps, err := RunScenario(context.Background(), sc, newChain(t))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(cps[1].Time-1.0) > 1e-9 {
		t.Errorf("time = %v, want 1s at default dt", cps[1].Time)
	}
}

func TestRunScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		step ScenarioStep
		want error
	}{
		{"unknown action", ScenarioStep{Action: "explode"}, ErrUnknownAction},
		{"negative dt", ScenarioStep{Action: "advance", Frames: 1, Dt: -1}, ErrInvalidStep},
		{"negative frames", ScenarioStep{Action: "advance", Frames: -2}, ErrInvalidStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := &Scenario{Steps: []ScenarioStep{{Action: "append"}, tt.step}}
			cps, err := RunScenario(context.Background(), sc, newChain(t))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if len(cps) != 1 {
				t.Errorf("expected the first checkpoint to survive, got %d", len(cps))
			}
		})
	}
}

func TestRunScenarioCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sc := &Scenario{Steps: []ScenarioStep{{Action: "append"}}}
	c := newChain(t)
	cps, err := RunScenario(ctx, sc, c)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(cps) != 0 || c.Len() != 1 {
		t.Errorf("canceled run mutated chain: %d checkpoints, len %d", len(cps), c.Len())
	}
}

func TestRunScenarioReset(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{{Action: "append", Repeat: 5}, {Action: "reset"}}}
	cps, err := RunScenario(context.Background(), sc, newChain(t))
	if err != nil {
		t.Fatal(err)
	}
	if cps[0].Len != 6 || cps[1].Len != 1 {
		t.Errorf("checkpoints = %+v", cps)
	}
}
