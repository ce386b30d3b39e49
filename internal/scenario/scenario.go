package scenario

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

const (
	OutcomePlayer1 = "player1"
	OutcomePlayer2 = "player2"
	OutcomeTie     = "tie"
	OutcomeOngoing = "ongoing"
)

//go:embed default.hcl
var defaultScenarios []byte

// File is a set of scripted games.
type File struct {
	Scenarios []Scenario `hcl:"scenario,block"`
}

type Scenario struct {
	Name        string  `hcl:"name,label"`
	Description string  `hcl:"description,optional"`
	Player1     string  `hcl:"player1,optional"`
	Player2     string  `hcl:"player2,optional"`
	Moves       [][]int `hcl:"moves"`
	Expect      string  `hcl:"expect"`
}

// Parse - decodes and validates scenarios from HCL source.
func Parse(src []byte, filename string) ([]Scenario, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %s", apperror.ErrInvalidScenario, filename, diags.Error())
	}

	return decode(file, filename)
}

// Load - reads scenarios from an HCL file.
func Load(path string) ([]Scenario, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open scenario file: %w", err)
	}

	parser := hclparse.NewParser()

	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %s", apperror.ErrInvalidScenario, path, diags.Error())
	}

	return decode(file, path)
}

// Defaults - the built-in driver scenarios.
func Defaults() ([]Scenario, error) {
	return Parse(defaultScenarios, "default.hcl")
}

func decode(file *hcl.File, filename string) ([]Scenario, error) {
	var content File
	if diags := gohcl.DecodeBody(file.Body, nil, &content); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode %s: %s", apperror.ErrInvalidScenario, filename, diags.Error())
	}

	if err := validate(content.Scenarios); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return content.Scenarios, nil
}

func validate(scenarios []Scenario) error {
	if len(scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", apperror.ErrInvalidScenario)
	}

	seen := make(map[string]bool, len(scenarios))
	for _, s := range scenarios {
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate scenario %q", apperror.ErrInvalidScenario, s.Name)
		}
		seen[s.Name] = true

		switch s.Expect {
		case OutcomePlayer1, OutcomePlayer2, OutcomeTie, OutcomeOngoing:
		default:
			return fmt.Errorf("%w: scenario %q: unknown outcome %q", apperror.ErrInvalidScenario, s.Name, s.Expect)
		}

		for i, move := range s.Moves {
			if len(move) != 2 {
				return fmt.Errorf("%w: scenario %q: move %d must be [row, col]", apperror.ErrInvalidScenario, s.Name, i+1)
			}
		}
	}

	return nil
}
