package main

import (
	"fmt"
	"time"

	"github.com/lox/pokerhint/internal/distribution"
	"github.com/lox/pokerhint/internal/randutil"
	"github.com/lox/pokerhint/poker"
)

// StatsCmd estimates category frequencies for random hands.
type StatsCmd struct {
	Cards   int    `short:"n" default:"7" help:"Cards per hand (2-7)"`
	Samples int    `short:"s" default:"100000" help:"Number of hands to deal"`
	Workers int    `short:"w" help:"Worker goroutines (default: one per CPU, max 8)"`
	Seed    *int64 `help:"Random seed for reproducible results"`
}

func (c *StatsCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	_, seed := randutil.FromFlag(c.Seed)
	ctx, cancel := SetupSignalHandler(logger)
	defer cancel()

	start := time.Now()
	tally, err := distribution.Run(ctx, distribution.Options{
		Cards:   c.Cards,
		Samples: c.Samples,
		Workers: c.Workers,
		Seed:    seed,
	})
	if err != nil {
		return err
	}
	logger.Debug("Simulation finished", "samples", tally.Total, "seed", seed, "duration", time.Since(start))

	out := g.out()
	fmt.Fprintf(out, "%s %d-card hands, %d samples, seed %d\n\n",
		headerStyle.Render("Distribution:"), c.Cards, tally.Total, seed)

	var t table
	t.header("CATEGORY", "COUNT", "PERCENT", "95% CI")
	for i := len(poker.Categories) - 1; i >= 0; i-- {
		cat := poker.Categories[i]
		p := tally.Proportion(cat)
		low, high := p.ConfidenceInterval95()
		t.row(renderCategory(cat), fmt.Sprint(p.Hits),
			percentStyle.Render(fmt.Sprintf("%.3f%%", 100*p.Estimate())),
			fmt.Sprintf("%.3f-%.3f%%", 100*low, 100*high))
	}
	return t.render(out)
}
