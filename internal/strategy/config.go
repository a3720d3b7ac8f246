package strategy

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/postflop/internal/classification"
)

// tableFile is the HCL shape of an external strategy table:
//
//	version = 1
//
//	scenario "cbet_flop" {
//	  entry {
//	    texture  = "dry"
//	    strength = "strong"
//
//	    action "bet" {
//	      frequency = 75
//	      size      = 33
//	      ev        = 1.7
//	    }
//	    action "check" {
//	      frequency = 25
//	      ev        = 1.2
//	    }
//	  }
//	}
//
// Turn and river scenarios omit the texture attribute.
type tableFile struct {
	Version   int             `hcl:"version,optional"`
	Scenarios []scenarioBlock `hcl:"scenario,block"`
}

type scenarioBlock struct {
	Name    string       `hcl:"name,label"`
	Entries []entryBlock `hcl:"entry,block"`
}

type entryBlock struct {
	Texture  string        `hcl:"texture,optional"`
	Strength string        `hcl:"strength"`
	Actions  []actionBlock `hcl:"action,block"`
}

type actionBlock struct {
	Kind      string  `hcl:"kind,label"`
	Frequency int     `hcl:"frequency"`
	Size      int     `hcl:"size,optional"`
	EV        float64 `hcl:"ev,optional"`
}

// LoadFile reads a strategy table from an HCL file, replacing the built-in
// defaults wholesale. Data-quality diagnostics go to the logger; structural
// problems (unknown names, missing keys) are errors because a broken table
// should fail at startup, not at lookup time.
func LoadFile(filename string, logger *log.Logger) (*Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse strategy file: %s", diags.Error())
	}

	var cfg tableFile
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode strategy file: %s", diags.Error())
	}

	t := &Table{}
	for _, scenario := range cfg.Scenarios {
		sc, ok := ParseScenario(scenario.Name)
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q", scenario.Name)
		}

		for _, entry := range scenario.Entries {
			hs, ok := classification.ParseHandStrength(entry.Strength)
			if !ok {
				return nil, fmt.Errorf("scenario %q: unknown strength %q", scenario.Name, entry.Strength)
			}

			actions, err := parseActions(entry.Actions)
			if err != nil {
				return nil, fmt.Errorf("scenario %q strength %q: %w", scenario.Name, entry.Strength, err)
			}

			if sc.TextureKeyed() {
				if entry.Texture == "" {
					return nil, fmt.Errorf("scenario %q: entries need a texture", scenario.Name)
				}
				tex, ok := classification.ParseBoardTexture(entry.Texture)
				if !ok {
					return nil, fmt.Errorf("scenario %q: unknown texture %q", scenario.Name, entry.Texture)
				}
				t.setTexture(sc, tex, hs, actions...)
			} else {
				if entry.Texture != "" {
					return nil, fmt.Errorf("scenario %q is keyed by strength alone, drop texture %q", scenario.Name, entry.Texture)
				}
				t.setStrength(sc, hs, actions...)
			}
		}
	}

	t.validate(logger)
	return t, nil
}

func parseActions(blocks []actionBlock) ([]Action, error) {
	actions := make([]Action, 0, len(blocks))
	for _, block := range blocks {
		kind, ok := ParseActionKind(block.Kind)
		if !ok {
			return nil, fmt.Errorf("unknown action kind %q", block.Kind)
		}
		if block.Frequency < 0 || block.Frequency > 100 {
			return nil, fmt.Errorf("action %q: frequency %d out of range", block.Kind, block.Frequency)
		}
		actions = append(actions, Action{
			Kind:      kind,
			Frequency: block.Frequency,
			Size:      block.Size,
			EV:        block.EV,
		})
	}
	return actions, nil
}
