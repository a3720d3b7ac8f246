package strategy

import (
	"github.com/charmbracelet/log"

	"github.com/lox/postflop/internal/classification"
)

// Default builds the built-in strategy table and runs the load-time
// diagnostics against the provided logger. The numbers here are calibrated
// configuration, not derived logic; combinations with no line deliberately
// stay empty and surface as "no recommendation".
func Default(logger *log.Logger) *Table {
	t := &Table{}

	// flop: continuation betting as the aggressor
	t.setTexture(CBetFlop, classification.Dry, classification.Nuts,
		Action{Bet, 70, 33, 2.1}, Action{Check, 30, 0, 1.6})
	t.setTexture(CBetFlop, classification.Dry, classification.Strong,
		Action{Bet, 75, 33, 1.7}, Action{Check, 25, 0, 1.2})
	t.setTexture(CBetFlop, classification.Dry, classification.Medium,
		Action{Bet, 65, 33, 1.1}, Action{Check, 35, 0, 0.9})
	t.setTexture(CBetFlop, classification.Dry, classification.Marginal,
		Action{Bet, 40, 33, 0.7}, Action{Check, 60, 0, 0.6})
	t.setTexture(CBetFlop, classification.Dry, classification.Weak,
		Action{Check, 70, 0, 0.4}, Action{Bet, 30, 33, 0.3})
	t.setTexture(CBetFlop, classification.Dry, classification.Draw,
		Action{Bet, 60, 50, 0.8}, Action{Check, 40, 0, 0.5})
	t.setTexture(CBetFlop, classification.Dry, classification.Air,
		Action{Bet, 50, 33, 0.2}, Action{Check, 50, 0, 0.1})

	t.setTexture(CBetFlop, classification.Wet, classification.Nuts,
		Action{Bet, 80, 66, 2.4}, Action{Check, 20, 0, 1.5})
	t.setTexture(CBetFlop, classification.Wet, classification.Strong,
		Action{Bet, 80, 66, 1.8}, Action{Check, 20, 0, 1.0})
	t.setTexture(CBetFlop, classification.Wet, classification.Medium,
		Action{Bet, 55, 50, 0.9}, Action{Check, 45, 0, 0.7})
	t.setTexture(CBetFlop, classification.Wet, classification.Marginal,
		Action{Check, 65, 0, 0.5}, Action{Bet, 35, 50, 0.4})
	t.setTexture(CBetFlop, classification.Wet, classification.Weak,
		Action{Check, 80, 0, 0.3}, Action{Bet, 20, 50, 0.2})
	t.setTexture(CBetFlop, classification.Wet, classification.Draw,
		Action{Bet, 70, 66, 1.0}, Action{Check, 30, 0, 0.6})
	t.setTexture(CBetFlop, classification.Wet, classification.Air,
		Action{Check, 70, 0, 0.1}, Action{Bet, 30, 50, 0.1})

	t.setTexture(CBetFlop, classification.Monotone, classification.Nuts,
		Action{Bet, 85, 75, 2.6}, Action{Check, 15, 0, 1.4})
	t.setTexture(CBetFlop, classification.Monotone, classification.Strong,
		Action{Bet, 60, 50, 1.2}, Action{Check, 40, 0, 0.8})
	t.setTexture(CBetFlop, classification.Monotone, classification.Medium,
		Action{Check, 70, 0, 0.5}, Action{Bet, 30, 33, 0.4})
	t.setTexture(CBetFlop, classification.Monotone, classification.Draw,
		Action{Bet, 65, 50, 1.1}, Action{Check, 35, 0, 0.6})
	t.setTexture(CBetFlop, classification.Monotone, classification.Air,
		Action{Check, 85, 0, 0.0}, Action{Bet, 15, 33, 0.0})

	t.setTexture(CBetFlop, classification.Paired, classification.Nuts,
		Action{Bet, 60, 33, 2.2}, Action{Check, 40, 0, 1.8})
	t.setTexture(CBetFlop, classification.Paired, classification.Strong,
		Action{Bet, 65, 33, 1.5}, Action{Check, 35, 0, 1.1})
	t.setTexture(CBetFlop, classification.Paired, classification.Medium,
		Action{Bet, 55, 33, 0.9}, Action{Check, 45, 0, 0.7})
	t.setTexture(CBetFlop, classification.Paired, classification.Air,
		Action{Bet, 45, 33, 0.3}, Action{Check, 55, 0, 0.1})

	t.setTexture(CBetFlop, classification.Connected, classification.Nuts,
		Action{Bet, 80, 66, 2.3}, Action{Check, 20, 0, 1.5})
	t.setTexture(CBetFlop, classification.Connected, classification.Strong,
		Action{Bet, 75, 66, 1.6}, Action{Check, 25, 0, 1.0})
	t.setTexture(CBetFlop, classification.Connected, classification.Medium,
		Action{Check, 60, 0, 0.6}, Action{Bet, 40, 50, 0.5})
	t.setTexture(CBetFlop, classification.Connected, classification.Draw,
		Action{Bet, 65, 66, 0.9}, Action{Check, 35, 0, 0.5})
	t.setTexture(CBetFlop, classification.Connected, classification.Air,
		Action{Check, 75, 0, 0.1}, Action{Bet, 25, 50, 0.0})

	t.setTexture(CBetFlop, classification.AceHigh, classification.Nuts,
		Action{Bet, 70, 33, 2.0}, Action{Check, 30, 0, 1.6})
	t.setTexture(CBetFlop, classification.AceHigh, classification.Strong,
		Action{Bet, 70, 33, 1.5}, Action{Check, 30, 0, 1.1})
	t.setTexture(CBetFlop, classification.AceHigh, classification.Medium,
		Action{Bet, 60, 33, 1.0}, Action{Check, 40, 0, 0.8})
	t.setTexture(CBetFlop, classification.AceHigh, classification.Marginal,
		Action{Bet, 45, 33, 0.6}, Action{Check, 55, 0, 0.5})
	t.setTexture(CBetFlop, classification.AceHigh, classification.Air,
		Action{Bet, 55, 33, 0.3}, Action{Check, 45, 0, 0.1})

	t.setTexture(CBetFlop, classification.High, classification.Strong,
		Action{Bet, 70, 50, 1.5}, Action{Check, 30, 0, 1.0})
	t.setTexture(CBetFlop, classification.High, classification.Medium,
		Action{Bet, 55, 33, 0.9}, Action{Check, 45, 0, 0.7})
	t.setTexture(CBetFlop, classification.Low, classification.Strong,
		Action{Bet, 65, 50, 1.4}, Action{Check, 35, 0, 0.9})
	t.setTexture(CBetFlop, classification.Low, classification.Air,
		Action{Check, 65, 0, 0.2}, Action{Bet, 35, 33, 0.1})

	// flop: facing a continuation bet
	t.setTexture(FacingCBet, classification.Dry, classification.Nuts,
		Action{Raise, 55, 300, 2.5}, Action{Call, 45, 0, 2.0})
	t.setTexture(FacingCBet, classification.Dry, classification.Strong,
		Action{Call, 60, 0, 1.4}, Action{Raise, 40, 300, 1.2})
	t.setTexture(FacingCBet, classification.Dry, classification.Medium,
		Action{Call, 75, 0, 0.8}, Action{Fold, 25, 0, 0.0})
	t.setTexture(FacingCBet, classification.Dry, classification.Marginal,
		Action{Call, 55, 0, 0.4}, Action{Fold, 45, 0, 0.0})
	t.setTexture(FacingCBet, classification.Dry, classification.Weak,
		Action{Fold, 60, 0, 0.0}, Action{Call, 40, 0, 0.2})
	t.setTexture(FacingCBet, classification.Dry, classification.Draw,
		Action{Call, 65, 0, 0.6}, Action{Raise, 20, 300, 0.5}, Action{Fold, 15, 0, 0.0})
	t.setTexture(FacingCBet, classification.Dry, classification.Air,
		Action{Fold, 85, 0, 0.0}, Action{Raise, 15, 300, 0.1})

	t.setTexture(FacingCBet, classification.Wet, classification.Nuts,
		Action{Raise, 70, 300, 2.8}, Action{Call, 30, 0, 2.1})
	t.setTexture(FacingCBet, classification.Wet, classification.Strong,
		Action{Raise, 50, 300, 1.5}, Action{Call, 50, 0, 1.3})
	t.setTexture(FacingCBet, classification.Wet, classification.Medium,
		Action{Call, 65, 0, 0.7}, Action{Fold, 35, 0, 0.0})
	t.setTexture(FacingCBet, classification.Wet, classification.Weak,
		Action{Fold, 70, 0, 0.0}, Action{Call, 30, 0, 0.1})
	t.setTexture(FacingCBet, classification.Wet, classification.Draw,
		Action{Call, 55, 0, 0.7}, Action{Raise, 30, 300, 0.6}, Action{Fold, 15, 0, 0.0})
	t.setTexture(FacingCBet, classification.Wet, classification.Air,
		Action{Fold, 90, 0, 0.0}, Action{Call, 10, 0, 0.0})

	t.setTexture(FacingCBet, classification.Monotone, classification.Nuts,
		Action{Raise, 60, 300, 2.6}, Action{Call, 40, 0, 2.0})
	t.setTexture(FacingCBet, classification.Monotone, classification.Draw,
		Action{Call, 70, 0, 0.8}, Action{Fold, 30, 0, 0.0})
	t.setTexture(FacingCBet, classification.Monotone, classification.Air,
		Action{Fold, 95, 0, 0.0}, Action{Call, 5, 0, 0.0})

	t.setTexture(FacingCBet, classification.Paired, classification.Strong,
		Action{Call, 70, 0, 1.2}, Action{Raise, 30, 300, 1.0})
	t.setTexture(FacingCBet, classification.Paired, classification.Medium,
		Action{Call, 60, 0, 0.6}, Action{Fold, 40, 0, 0.0})
	t.setTexture(FacingCBet, classification.Paired, classification.Air,
		Action{Fold, 80, 0, 0.0}, Action{Raise, 20, 300, 0.1})

	t.setTexture(FacingCBet, classification.Connected, classification.Nuts,
		Action{Raise, 65, 300, 2.7}, Action{Call, 35, 0, 2.0})
	t.setTexture(FacingCBet, classification.Connected, classification.Draw,
		Action{Call, 60, 0, 0.7}, Action{Raise, 25, 300, 0.5}, Action{Fold, 15, 0, 0.0})

	t.setTexture(FacingCBet, classification.AceHigh, classification.Medium,
		Action{Call, 70, 0, 0.7}, Action{Fold, 30, 0, 0.0})
	t.setTexture(FacingCBet, classification.AceHigh, classification.Air,
		Action{Fold, 85, 0, 0.0}, Action{Call, 15, 0, 0.0})

	// flop: check-raising versus the aggressor
	t.setTexture(CheckRaiseFlop, classification.Dry, classification.Nuts,
		Action{Raise, 65, 350, 2.9}, Action{Call, 35, 0, 2.2})
	t.setTexture(CheckRaiseFlop, classification.Dry, classification.Strong,
		Action{Raise, 45, 350, 1.6}, Action{Call, 55, 0, 1.3})
	t.setTexture(CheckRaiseFlop, classification.Dry, classification.Air,
		Action{Fold, 70, 0, 0.0}, Action{Raise, 30, 350, 0.2})
	t.setTexture(CheckRaiseFlop, classification.Wet, classification.Nuts,
		Action{Raise, 75, 350, 3.0}, Action{Call, 25, 0, 2.1})
	t.setTexture(CheckRaiseFlop, classification.Wet, classification.Draw,
		Action{Raise, 40, 350, 0.8}, Action{Call, 45, 0, 0.6}, Action{Fold, 15, 0, 0.0})
	t.setTexture(CheckRaiseFlop, classification.Connected, classification.Draw,
		Action{Raise, 35, 350, 0.7}, Action{Call, 50, 0, 0.6}, Action{Fold, 15, 0, 0.0})

	// turn: barreling after a flop bet, keyed by strength alone
	t.setStrength(BarrelTurn, classification.Nuts,
		Action{Bet, 80, 75, 2.8}, Action{Check, 20, 0, 1.9})
	t.setStrength(BarrelTurn, classification.Strong,
		Action{Bet, 70, 66, 1.9}, Action{Check, 30, 0, 1.2})
	t.setStrength(BarrelTurn, classification.Medium,
		Action{Bet, 50, 50, 1.0}, Action{Check, 50, 0, 0.8})
	t.setStrength(BarrelTurn, classification.Marginal,
		Action{Check, 70, 0, 0.5}, Action{Bet, 30, 50, 0.3})
	t.setStrength(BarrelTurn, classification.Weak,
		Action{Check, 80, 0, 0.3}, Action{Bet, 20, 50, 0.1})
	t.setStrength(BarrelTurn, classification.Draw,
		Action{Bet, 55, 66, 0.8}, Action{Check, 45, 0, 0.4})
	t.setStrength(BarrelTurn, classification.Air,
		Action{Check, 60, 0, 0.1}, Action{Bet, 40, 66, 0.0})

	// turn: probing after the aggressor checks back
	t.setStrength(ProbeTurn, classification.Nuts,
		Action{Bet, 75, 66, 2.4}, Action{Check, 25, 0, 1.7})
	t.setStrength(ProbeTurn, classification.Strong,
		Action{Bet, 65, 50, 1.6}, Action{Check, 35, 0, 1.0})
	t.setStrength(ProbeTurn, classification.Medium,
		Action{Bet, 55, 33, 0.9}, Action{Check, 45, 0, 0.7})
	t.setStrength(ProbeTurn, classification.Weak,
		Action{Check, 75, 0, 0.3}, Action{Bet, 25, 33, 0.2})
	t.setStrength(ProbeTurn, classification.Draw,
		Action{Bet, 60, 50, 0.7}, Action{Check, 40, 0, 0.4})
	t.setStrength(ProbeTurn, classification.Air,
		Action{Check, 70, 0, 0.1}, Action{Bet, 30, 33, 0.0})

	// river: value betting and bluffing
	t.setStrength(ValueRiver, classification.Nuts,
		Action{Bet, 85, 100, 3.2}, Action{AllIn, 15, 0, 3.0})
	t.setStrength(ValueRiver, classification.Strong,
		Action{Bet, 75, 75, 2.0}, Action{Check, 25, 0, 1.2})
	t.setStrength(ValueRiver, classification.Medium,
		Action{Bet, 45, 50, 1.0}, Action{Check, 55, 0, 0.8})
	t.setStrength(ValueRiver, classification.Marginal,
		Action{Check, 80, 0, 0.5}, Action{Bet, 20, 33, 0.3})
	t.setStrength(ValueRiver, classification.Weak,
		Action{Check, 90, 0, 0.2}, Action{Bet, 10, 33, 0.0})
	t.setStrength(ValueRiver, classification.Draw,
		Action{Check, 55, 0, 0.0}, Action{Bet, 45, 75, 0.1})
	t.setStrength(ValueRiver, classification.Air,
		Action{Check, 65, 0, 0.0}, Action{Bet, 35, 75, 0.0})

	t.validate(logger)
	return t
}
