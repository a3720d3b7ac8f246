package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/postflop/internal/advisor"
	"github.com/lox/postflop/internal/deck"
	"github.com/lox/postflop/internal/strategy"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1A7A4C")).
			Padding(0, 1).
			Bold(true)

	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	actionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2AB06F")).Bold(true)
	altStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
)

type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Advise     AdviseCmd     `cmd:"" help:"Classify a situation and recommend an action"`
	CheckTable CheckTableCmd `cmd:"" name:"check-table" help:"Load a strategy file and report data-quality diagnostics"`
	Sample     SampleCmd     `cmd:"" help:"Deal random situations and print classification distributions"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("postflop"),
		kong.Description("Poker situation classifier and strategy advisor"))

	if cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := ctx.Run(); err != nil {
		log.Fatal("command failed", "error", err)
	}
}

// loadTable builds the strategy table, from a file when one is given and the
// built-in defaults otherwise.
func loadTable(path string) (*strategy.Table, error) {
	if path == "" {
		return strategy.Default(log.Default()), nil
	}
	table, err := strategy.LoadFile(path, log.Default())
	if err != nil {
		return nil, fmt.Errorf("load strategy table: %w", err)
	}
	return table, nil
}

type AdviseCmd struct {
	Hand     string  `short:"H" required:"" help:"Two hole cards, e.g. AhKh"`
	Board    string  `short:"b" default:"" help:"Zero to five community cards, e.g. '9h 5h 2d'"`
	Stack    float64 `short:"s" default:"100" help:"Effective stack remaining"`
	Pot      float64 `short:"p" default:"10" help:"Current pot size"`
	Players  int     `short:"n" default:"2" help:"Players contesting the pot"`
	Scenario string  `default:"cbet" help:"Scenario name (legacy aliases accepted)"`
	Table    string  `short:"t" default:"" help:"Strategy table HCL file (built-in defaults when empty)"`
}

func (c *AdviseCmd) Run() error {
	hole, err := deck.ParseCards(c.Hand)
	if err != nil {
		return err
	}
	if len(hole) != 2 {
		return fmt.Errorf("hand needs exactly 2 cards, got %d", len(hole))
	}

	var board []deck.Card
	if c.Board != "" {
		board, err = deck.ParseCards(c.Board)
		if err != nil {
			return err
		}
	}
	if len(board) > 5 {
		return fmt.Errorf("board holds at most 5 cards, got %d", len(board))
	}

	scenario, ok := strategy.ParseScenario(c.Scenario)
	if !ok {
		return fmt.Errorf("unknown scenario %q", c.Scenario)
	}

	table, err := loadTable(c.Table)
	if err != nil {
		return err
	}

	adv := advisor.New(table, log.Default())
	advice := adv.Advise(advisor.Situation{
		Scenario: scenario,
		Hole:     hole,
		Board:    board,
		Stack:    c.Stack,
		Pot:      c.Pot,
		Players:  c.Players,
	})

	renderAdvice(os.Stdout, hole, board, scenario, advice)
	return nil
}

func renderAdvice(w io.Writer, hole, board []deck.Card, scenario strategy.Scenario, advice advisor.Advice) {
	fmt.Fprintln(w, titleStyle.Render(" ♠ ♥ postflop advisor ♦ ♣ "))
	fmt.Fprintln(w)

	a := advice.Analysis
	fmt.Fprintf(w, "%s %s   %s %s\n",
		labelStyle.Render("hand:"), deck.FormatCards(hole),
		labelStyle.Render("board:"), deck.FormatCards(board))
	fmt.Fprintf(w, "%s %s/%s  %s %s  %s %s  %s %s  %s %s\n",
		labelStyle.Render("scenario:"), scenario, scenario.Street(),
		labelStyle.Render("texture:"), a.Texture,
		labelStyle.Render("draw:"), a.Draw,
		labelStyle.Render("strength:"), a.Strength,
		labelStyle.Render("spr:"), a.SPR)
	fmt.Fprintln(w)

	if advice.Best == nil {
		fmt.Fprintln(w, altStyle.Render("no guidance available for this spot"))
		return
	}

	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("play:"), actionStyle.Render(formatAction(advice.Best.Action)))
	for _, alt := range advice.Best.Alternatives {
		fmt.Fprintf(w, "      %s\n", altStyle.Render(formatAction(alt)))
	}
}

func formatAction(a strategy.Action) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d%%", a.Kind, a.Frequency)
	if a.Size > 0 {
		fmt.Fprintf(&b, " (%d%% pot)", a.Size)
	}
	fmt.Fprintf(&b, " ev %.2f", a.EV)
	return b.String()
}

type CheckTableCmd struct {
	File string `arg:"" help:"Strategy table HCL file"`
}

func (c *CheckTableCmd) Run() error {
	if _, err := strategy.LoadFile(c.File, log.Default()); err != nil {
		return err
	}
	log.Info("strategy table loaded", "file", c.File)
	return nil
}
