package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/postflop/internal/classification"
	"github.com/lox/postflop/internal/deck"
)

// SampleCmd deals random flops and prints how often each texture, draw and
// strength bucket shows up. Useful for sanity-checking table coverage against
// the classifier distributions.
type SampleCmd struct {
	Count   int    `default:"10000" help:"Number of situations to deal"`
	Board   int    `default:"3" help:"Community cards per situation (3-5)"`
	Workers int    `default:"4" help:"Concurrent dealing workers"`
	Seed    uint64 `default:"0" help:"RNG seed (0 for random)"`
}

// sampleCounts accumulates classification tallies for one worker.
type sampleCounts struct {
	textures  [classification.BoardTextureCount]int
	strengths [classification.HandStrengthCount]int
	draws     map[classification.DrawType]int
}

func newSampleCounts() *sampleCounts {
	return &sampleCounts{draws: make(map[classification.DrawType]int)}
}

func (s *sampleCounts) merge(other *sampleCounts) {
	for i, n := range other.textures {
		s.textures[i] += n
	}
	for i, n := range other.strengths {
		s.strengths[i] += n
	}
	for dt, n := range other.draws {
		s.draws[dt] += n
	}
}

func (c *SampleCmd) Run() error {
	if c.Board < 3 || c.Board > 5 {
		return fmt.Errorf("board size must be 3-5, got %d", c.Board)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}

	log.Info("sampling situations", "count", c.Count, "board", c.Board, "workers", c.Workers)

	g, _ := errgroup.WithContext(context.Background())
	results := make(chan *sampleCounts, c.Workers)

	perWorker := c.Count / c.Workers
	remainder := c.Count % c.Workers

	for w := 0; w < c.Workers; w++ {
		deals := perWorker
		if w < remainder {
			deals++
		}
		seed := c.Seed
		if seed != 0 {
			// distinct deterministic stream per worker
			seed += uint64(w) * 0x9E3779B97F4A7C15
		}

		g.Go(func() error {
			counts := newSampleCounts()
			d := workerDeck(seed)
			for i := 0; i < deals; i++ {
				d.Reset()
				hole := d.DealN(2)
				board := d.DealN(c.Board)

				counts.textures[classification.ClassifyBoard(board)]++
				counts.strengths[classification.EvaluateStrength(hole, board)]++
				counts.draws[classification.DetectDraw(hole, board)]++
			}
			results <- counts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	close(results)

	total := newSampleCounts()
	for counts := range results {
		total.merge(counts)
	}

	printDistributions(total, c.Count)
	return nil
}

func workerDeck(seed uint64) *deck.Deck {
	if seed == 0 {
		return deck.NewDeck()
	}
	return deck.NewSeededDeck(seed)
}

func printDistributions(counts *sampleCounts, total int) {
	pct := func(n int) float64 {
		if total == 0 {
			return 0
		}
		return 100 * float64(n) / float64(total)
	}

	fmt.Fprintln(os.Stdout, titleStyle.Render(" classification distributions "))
	fmt.Fprintln(os.Stdout)

	fmt.Fprintln(os.Stdout, labelStyle.Render("board textures"))
	for i, n := range counts.textures {
		fmt.Fprintf(os.Stdout, "  %-12s %6.2f%%  (%d)\n", classification.BoardTexture(i), pct(n), n)
	}

	fmt.Fprintln(os.Stdout, labelStyle.Render("hand strengths"))
	for i, n := range counts.strengths {
		fmt.Fprintf(os.Stdout, "  %-12s %6.2f%%  (%d)\n", classification.HandStrength(i), pct(n), n)
	}

	fmt.Fprintln(os.Stdout, labelStyle.Render("draws"))
	for dt := classification.NoDraw; dt <= classification.BackdoorStraight; dt++ {
		if n, ok := counts.draws[dt]; ok {
			fmt.Fprintf(os.Stdout, "  %-24s %6.2f%%  (%d)\n", dt, pct(n), n)
		}
	}
}
