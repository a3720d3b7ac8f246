package strategy

// Street is the betting round a strategy line applies to.
type Street int

const (
	Flop Street = iota
	Turn
	River
)

func (s Street) String() string {
	switch s {
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// ParseStreet maps a street name back to its variant.
func ParseStreet(s string) (Street, bool) {
	for st := Flop; st <= River; st++ {
		if st.String() == s {
			return st, true
		}
	}
	return Flop, false
}

// Scenario names the postflop situation that selects which strategy subtable
// to consult.
type Scenario int

const (
	CBetFlop Scenario = iota
	FacingCBet
	CheckRaiseFlop
	BarrelTurn
	ProbeTurn
	ValueRiver
)

// ScenarioCount is the number of Scenario variants, used for enum-indexed
// strategy tables.
const ScenarioCount = int(ValueRiver) + 1

func (sc Scenario) String() string {
	switch sc {
	case CBetFlop:
		return "cbet_flop"
	case FacingCBet:
		return "facing_cbet"
	case CheckRaiseFlop:
		return "check_raise"
	case BarrelTurn:
		return "barrel_turn"
	case ProbeTurn:
		return "probe_turn"
	case ValueRiver:
		return "value_river"
	default:
		return "unknown"
	}
}

// Street returns the betting round the scenario belongs to.
func (sc Scenario) Street() Street {
	switch sc {
	case CBetFlop, FacingCBet, CheckRaiseFlop:
		return Flop
	case BarrelTurn, ProbeTurn:
		return Turn
	default:
		return River
	}
}

// TextureKeyed reports whether the scenario's entries are keyed by board
// texture. Turn and river lines are keyed by hand strength alone.
func (sc Scenario) TextureKeyed() bool {
	return sc.Street() == Flop
}

// scenarioNames maps canonical identifiers and their legacy aliases to
// variants. Aliases predate the street-suffixed names and are still accepted
// anywhere a scenario name is read.
var scenarioNames = map[string]Scenario{
	"cbet_flop":   CBetFlop,
	"facing_cbet": FacingCBet,
	"check_raise": CheckRaiseFlop,
	"barrel_turn": BarrelTurn,
	"probe_turn":  ProbeTurn,
	"value_river": ValueRiver,

	// legacy aliases
	"cbet":   CBetFlop,
	"barrel": BarrelTurn,
	"value":  ValueRiver,
}

// ParseScenario resolves a scenario name, normalizing legacy aliases before
// lookup.
func ParseScenario(s string) (Scenario, bool) {
	sc, ok := scenarioNames[s]
	return sc, ok
}

// PlayerCount buckets how many players are contesting the pot.
type PlayerCount int

const (
	HeadsUp PlayerCount = iota
	ThreeWay
	MultiWay
)

func (pc PlayerCount) String() string {
	switch pc {
	case HeadsUp:
		return "heads_up"
	case ThreeWay:
		return "three_way"
	case MultiWay:
		return "multi_way"
	default:
		return "unknown"
	}
}

// PlayersFrom buckets a raw player count.
func PlayersFrom(n int) PlayerCount {
	switch {
	case n <= 2:
		return HeadsUp
	case n == 3:
		return ThreeWay
	default:
		return MultiWay
	}
}
