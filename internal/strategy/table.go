package strategy

import (
	"github.com/charmbracelet/log"

	"github.com/lox/postflop/internal/classification"
)

// scenarioTable holds the strategy lines for one scenario. Flop scenarios key
// entries by (texture, strength); turn and river scenarios key by strength
// alone. Fixed enum-indexed arrays replace the string-keyed nested maps of
// older table formats, so adding a category is a compile-time event.
type scenarioTable struct {
	byTexture  [classification.BoardTextureCount][classification.HandStrengthCount][]Action
	byStrength [classification.HandStrengthCount][]Action
}

// Table is the read-only strategy lookup. Build it once at startup via
// Default or LoadFile and never mutate it afterwards.
type Table struct {
	scenarios [ScenarioCount]scenarioTable
}

// setTexture stores a texture-keyed strategy line.
func (t *Table) setTexture(sc Scenario, tex classification.BoardTexture, hs classification.HandStrength, actions ...Action) {
	t.scenarios[sc].byTexture[tex][hs] = actions
}

// setStrength stores a strength-only strategy line.
func (t *Table) setStrength(sc Scenario, hs classification.HandStrength, actions ...Action) {
	t.scenarios[sc].byStrength[hs] = actions
}

// Lookup returns the ordered weighted actions for a situation. An empty
// result is the documented "no recommendation" signal, never an error:
// unknown combinations and street/scenario mismatches both yield it.
func (t *Table) Lookup(street Street, sc Scenario, tex classification.BoardTexture, hs classification.HandStrength) []Action {
	if sc < 0 || int(sc) >= ScenarioCount {
		return nil
	}
	if street != sc.Street() {
		return nil
	}
	if hs < 0 || int(hs) >= classification.HandStrengthCount {
		return nil
	}

	var actions []Action
	if sc.TextureKeyed() {
		if tex < 0 || int(tex) >= classification.BoardTextureCount {
			return nil
		}
		actions = t.scenarios[sc].byTexture[tex][hs]
	} else {
		actions = t.scenarios[sc].byStrength[hs]
	}

	return cloneActions(actions)
}

// validate runs the load-time data-quality diagnostics. A strategy line whose
// frequencies sum past 100 is a data bug worth flagging, not a runtime
// failure, so it is logged once here rather than checked per lookup.
func (t *Table) validate(logger *log.Logger) {
	if logger == nil {
		return
	}

	check := func(sc Scenario, tex string, hs classification.HandStrength, actions []Action) {
		if len(actions) == 0 {
			return
		}
		total := 0
		for _, action := range actions {
			total += action.Frequency
		}
		if total > 100 {
			logger.Warn("strategy line frequencies exceed 100",
				"scenario", sc.String(),
				"texture", tex,
				"strength", hs.String(),
				"total", total)
		}
	}

	for sc := Scenario(0); int(sc) < ScenarioCount; sc++ {
		if sc.TextureKeyed() {
			for tex := 0; tex < classification.BoardTextureCount; tex++ {
				for hs := 0; hs < classification.HandStrengthCount; hs++ {
					check(sc, classification.BoardTexture(tex).String(),
						classification.HandStrength(hs),
						t.scenarios[sc].byTexture[tex][hs])
				}
			}
		} else {
			for hs := 0; hs < classification.HandStrengthCount; hs++ {
				check(sc, "", classification.HandStrength(hs),
					t.scenarios[sc].byStrength[hs])
			}
		}
	}
}
