// Package distribution estimates how often each hand category appears in
// random hands of a given size.
package distribution

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerhint/internal/randutil"
	"github.com/lox/pokerhint/internal/statistics"
	"github.com/lox/pokerhint/poker"
)

// Options controls a simulation run.
type Options struct {
	Cards   int   // hand size, 2-7
	Samples int   // number of hands to deal
	Workers int   // 0 means one per CPU, capped at 8
	Seed    int64 // base seed; equal options give equal tallies
}

// Tally counts hands per category.
type Tally struct {
	Counts [poker.StraightFlush + 1]int
	Total  int
}

// Add records one hand.
func (t *Tally) Add(c poker.Category) {
	t.Counts[c]++
	t.Total++
}

// Merge folds other into t.
func (t *Tally) Merge(other Tally) {
	for i, n := range other.Counts {
		t.Counts[i] += n
	}
	t.Total += other.Total
}

// Count returns how many hands landed in c.
func (t Tally) Count(c poker.Category) int {
	if !c.Valid() {
		return 0
	}
	return t.Counts[c]
}

// Fraction returns the share of hands in c.
func (t Tally) Fraction(c poker.Category) float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Count(c)) / float64(t.Total)
}

// Proportion returns the share of hands in c as a binomial estimate.
func (t Tally) Proportion(c poker.Category) statistics.Proportion {
	return statistics.Proportion{Hits: t.Count(c), Trials: t.Total}
}

func (o *Options) validate() error {
	if o.Cards < 2 || o.Cards > poker.MaxHandSize {
		return fmt.Errorf("%w: hand size %d, want 2-%d", poker.ErrHandSize, o.Cards, poker.MaxHandSize)
	}
	if o.Samples < 1 {
		return fmt.Errorf("samples must be positive, got %d", o.Samples)
	}
	if o.Workers <= 0 {
		o.Workers = min(runtime.NumCPU(), 8)
	}
	return nil
}

// Run deals opts.Samples random hands and tallies their categories. Each worker
// owns a deck and an RNG derived from opts.Seed.
func Run(ctx context.Context, opts Options) (Tally, error) {
	if err := opts.validate(); err != nil {
		return Tally{}, err
	}

	seeds := randutil.Split(randutil.New(opts.Seed), opts.Workers)
	tallies := make([]Tally, opts.Workers)
	per, remainder := opts.Samples/opts.Workers, opts.Samples%opts.Workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < opts.Workers; w++ {
		samples := per
		if w < remainder {
			samples++
		}
		g.Go(func() error {
			deck := poker.NewDeck(randutil.New(seeds[w]))
			for i := 0; i < samples; i++ {
				if i%1024 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				deck.Shuffle()
				hand, _ := deck.DealHand(opts.Cards)
				tallies[w].Add(poker.Evaluate(hand))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Tally{}, err
	}

	var total Tally
	for _, t := range tallies {
		total.Merge(t)
	}
	return total, nil
}
