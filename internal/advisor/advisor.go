// Package advisor ties the classifiers and the strategy table together: it
// turns a raw situation (cards, stack, pot, players, scenario) into an
// adjusted action recommendation.
package advisor

import (
	"github.com/charmbracelet/log"

	"github.com/lox/postflop/internal/classification"
	"github.com/lox/postflop/internal/deck"
	"github.com/lox/postflop/internal/strategy"
)

// Situation is the raw input for one decision. Cards are read-only here; the
// caller deals them and replaces the board wholesale between streets.
type Situation struct {
	Scenario strategy.Scenario
	Hole     []deck.Card
	Board    []deck.Card
	Stack    float64
	Pot      float64
	Players  int
}

// Analysis holds the discrete categories derived from a situation. The four
// classifications are independent of one another.
type Analysis struct {
	Texture  classification.BoardTexture
	Draw     classification.DrawType
	Strength classification.HandStrength
	SPR      classification.SPRCategory
	Players  strategy.PlayerCount
}

// Advice is the full output for a situation: the analysis, the adjusted
// strategy line and the selected best action. Best is nil when the table has
// no line for the combination.
type Advice struct {
	Analysis Analysis
	Actions  []strategy.Action
	Best     *strategy.Recommendation
}

// Advisor runs the classification and strategy pipeline against one table.
// It is safe for concurrent use; the table is never mutated after
// construction.
type Advisor struct {
	table  *strategy.Table
	logger *log.Logger
}

// New creates an advisor. A nil logger disables the per-decision debug
// logging.
func New(table *strategy.Table, logger *log.Logger) *Advisor {
	return &Advisor{table: table, logger: logger}
}

// Analyze runs the four independent classifiers over a situation.
func (a *Advisor) Analyze(sit Situation) Analysis {
	return Analysis{
		Texture:  classification.ClassifyBoard(sit.Board),
		Draw:     classification.DetectDraw(sit.Hole, sit.Board),
		Strength: classification.EvaluateStrength(sit.Hole, sit.Board),
		SPR:      classification.CategorizeSPR(sit.Stack, sit.Pot),
		Players:  strategy.PlayersFrom(sit.Players),
	}
}

// Advise classifies the situation, looks up the strategy line and applies
// the multiway adjustment followed by the SPR adjustment before selecting
// the best action.
func (a *Advisor) Advise(sit Situation) Advice {
	analysis := a.Analyze(sit)

	street := sit.Scenario.Street()
	actions := a.table.Lookup(street, sit.Scenario, analysis.Texture, analysis.Strength)
	actions = strategy.ForMultiway(actions, analysis.Players)
	actions = strategy.ForSPR(actions, analysis.SPR)

	if a.logger != nil {
		a.logger.Debug("advised",
			"scenario", sit.Scenario.String(),
			"street", street.String(),
			"texture", analysis.Texture.String(),
			"draw", analysis.Draw.String(),
			"strength", analysis.Strength.String(),
			"spr", analysis.SPR.String(),
			"players", analysis.Players.String(),
			"actions", len(actions))
	}

	return Advice{
		Analysis: analysis,
		Actions:  actions,
		Best:     strategy.SelectBest(actions),
	}
}
