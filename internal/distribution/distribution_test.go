package distribution

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerhint/poker"
)

func TestRunIsReproducible(t *testing.T) {
	t.Parallel()
	opts := Options{Cards: 5, Samples: 5000, Workers: 3, Seed: 42}

	a, err := Run(context.Background(), opts)
	require.NoError(t, err)
	b, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 5000, a.Total)
}

func TestRunFiveCardFrequencies(t *testing.T) {
	t.Parallel()
	tally, err := Run(context.Background(), Options{Cards: 5, Samples: 200000, Workers: 4, Seed: 1})
	require.NoError(t, err)

	// Exact five card probabilities; tolerances cover sampling noise.
	assert.InDelta(t, 0.5012, tally.Fraction(poker.HighCard), 0.01)
	assert.InDelta(t, 0.4226, tally.Fraction(poker.OnePair), 0.01)
	assert.InDelta(t, 0.0475, tally.Fraction(poker.TwoPair), 0.005)
	assert.InDelta(t, 0.0211, tally.Fraction(poker.ThreeOfAKind), 0.003)
}

func TestRunTwoCards(t *testing.T) {
	t.Parallel()
	tally, err := Run(context.Background(), Options{Cards: 2, Samples: 1000, Seed: 9})
	require.NoError(t, err)

	assert.Equal(t, 1000, tally.Count(poker.HighCard)+tally.Count(poker.OnePair))
	for _, c := range poker.Categories[2:] {
		assert.Zero(t, tally.Count(c), c.String())
	}
}

func TestRunValidation(t *testing.T) {
	t.Parallel()
	_, err := Run(context.Background(), Options{Cards: 8, Samples: 10})
	assert.ErrorIs(t, err, poker.ErrHandSize)

	_, err = Run(context.Background(), Options{Cards: 1, Samples: 10})
	assert.ErrorIs(t, err, poker.ErrHandSize)

	_, err = Run(context.Background(), Options{Cards: 5})
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{Cards: 7, Samples: 100000, Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTally(t *testing.T) {
	t.Parallel()
	var a, b Tally
	a.Add(poker.Flush)
	b.Add(poker.Flush)
	b.Add(poker.HighCard)
	a.Merge(b)

	assert.Equal(t, 3, a.Total)
	assert.Equal(t, 2, a.Count(poker.Flush))
	assert.InDelta(t, 1.0/3, a.Fraction(poker.HighCard), 1e-9)
	assert.Zero(t, a.Count(poker.Category(0)))
	assert.Zero(t, Tally{}.Fraction(poker.Flush))

	p := a.Proportion(poker.Flush)
	assert.Equal(t, 2, p.Hits)
	assert.Equal(t, 3, p.Trials)
	assert.NoError(t, p.Validate())
}
