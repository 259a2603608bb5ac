package main

import (
	"fmt"

	"github.com/lox/pokerhint/internal/predict"
	"github.com/lox/pokerhint/internal/randutil"
	"github.com/lox/pokerhint/poker"
)

// SampleCmd deals a random hand and shows what the evaluator and models make
// of it.
type SampleCmd struct {
	Cards int    `short:"n" default:"5" help:"Number of cards to deal (2-7)"`
	Seed  *int64 `help:"Random seed for a reproducible deal"`
}

func (c *SampleCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	if c.Cards < 2 || c.Cards > poker.MaxHandSize {
		return fmt.Errorf("%w: --cards %d, want 2-%d", poker.ErrHandSize, c.Cards, poker.MaxHandSize)
	}

	rng, seed := randutil.FromFlag(c.Seed)
	logger.Debug("Dealing", "cards", c.Cards, "seed", seed)

	deck := poker.NewDeck(rng)
	hand, ok := deck.DealHand(c.Cards)
	if !ok {
		return fmt.Errorf("deck exhausted dealing %d cards", c.Cards)
	}

	pc, err := predict.Load(cfg, logger)
	if err != nil {
		return err
	}
	return writePredictions(g.out(), pc, hand)
}
