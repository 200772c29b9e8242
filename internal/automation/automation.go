package automation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/armchain/internal/chain"
	"gopkg.in/yaml.v3"
)

const defaultDt = 1.0 / 60

var (
	ErrUnknownAction = errors.New("automation: unknown action")
	ErrInvalidStep   = errors.New("automation: invalid step")
)

// Scenario is a scripted sequence of chain operations.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Seed        int64          `yaml:"seed"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one action. Repeat applies to append and remove; Frames
// and Dt apply to advance.
type ScenarioStep struct {
	Action string  `yaml:"action"`
	Repeat int     `yaml:"repeat"`
	Frames int     `yaml:"frames"`
	Dt     float64 `yaml:"dt"`
}

// Checkpoint records the chain after a step.
type Checkpoint struct {
	Step   int
	Action string
	Len    int
	Reach  float64
	Time   float64
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// RunScenario executes all steps against c, checking ctx between steps.
// Checkpoints gathered before a failure are returned with the error.
func RunScenario(ctx context.Context, scenario *Scenario, c *chain.Chain) ([]Checkpoint, error) {
	checkpoints := make([]Checkpoint, 0, len(scenario.Steps))
	elapsed := 0.0

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return checkpoints, fmt.Errorf("step %d: %w", i+1, err)
		}

		switch step.Action {
		case "append":
			for n := 0; n < times(step.Repeat); n++ {
				c.Append()
			}
		case "remove":
			for n := 0; n < times(step.Repeat); n++ {
				c.RemoveTail()
			}
		case "reset":
			c.Reset()
		case "advance":
			if step.Frames < 0 || step.Dt < 0 {
				return checkpoints, fmt.Errorf("step %d: frames %d dt %v: %w", i+1, step.Frames, step.Dt, ErrInvalidStep)
			}
			dt := step.Dt
			if dt == 0 {
				dt = defaultDt
			}
			for n := 0; n < times(step.Frames); n++ {
				c.Update(dt)
				elapsed += dt
			}
		default:
			return checkpoints, fmt.Errorf("step %d: %q: %w", i+1, step.Action, ErrUnknownAction)
		}

		checkpoints = append(checkpoints, Checkpoint{
			Step:   i + 1,
			Action: step.Action,
			Len:    c.Len(),
			Reach:  c.Reach(),
			Time:   elapsed,
		})
	}

	return checkpoints, nil
}

// times treats an unset count as one.
func times(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}
