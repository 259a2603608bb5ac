package predict

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerhint/internal/config"
	"github.com/lox/pokerhint/internal/features"
	"github.com/lox/pokerhint/poker"
)

// writeModel writes a coefficient file whose weights are all w except the
// last, which is last.
func writeModel(t *testing.T, dir, name string, width int, bias, w, last float64) string {
	t.Helper()
	weights := make([]string, width)
	for i := range weights {
		weights[i] = fmt.Sprint(w)
	}
	weights[width-1] = fmt.Sprint(last)
	body := fmt.Sprintf("bias = %v\nweights = [%s]\n", bias, strings.Join(weights, ", "))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLinearModel(t *testing.T) {
	t.Parallel()
	m := &LinearModel{Bias: -1, Threshold: 0.5, Weights: []float64{2, 0}}

	class, err := m.Predict([]float64{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, class)

	class, err = m.Predict([]float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 0, class)

	p, err := m.Probability([]float64{0.5, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-12)

	_, err = m.Predict([]float64{1})
	assert.Error(t, err)
}

func TestLoadLinearModel(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	path := writeModel(t, dir, "ok.hcl", 3, 0.25, 1, 2)
	m, err := LoadLinearModel(path, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.5, m.Threshold)
	assert.Equal(t, []float64{1, 1, 2}, m.Weights)
	assert.Equal(t, 3, m.Width())

	_, err = LoadLinearModel(path, 4)
	assert.ErrorContains(t, err, "has 3 weights, want 4")

	bad := filepath.Join(dir, "bad.hcl")
	require.NoError(t, os.WriteFile(bad, []byte("bias = \n"), 0o644))
	_, err = LoadLinearModel(bad, 3)
	assert.Error(t, err)

	threshold := filepath.Join(dir, "threshold.hcl")
	require.NoError(t, os.WriteFile(threshold, []byte("bias = 0\nthreshold = 2\nweights = [1]\n"), 0o644))
	_, err = LoadLinearModel(threshold, 1)
	assert.ErrorContains(t, err, "threshold")
}

func TestContextWithoutModels(t *testing.T) {
	t.Parallel()
	ctx, err := New()
	require.NoError(t, err)
	assert.False(t, ctx.HasHinted())
	assert.False(t, ctx.HasUnhinted())

	hand, err := poker.ParseHand("AcAd")
	require.NoError(t, err)

	pred, err := ctx.Predict(hand)
	assert.ErrorIs(t, err, ErrModelNotLoaded)
	assert.Equal(t, poker.OnePair, pred.Category)

	_, err = ctx.PredictUnhinted(hand)
	assert.ErrorIs(t, err, ErrModelNotLoaded)
}

func TestContextRejectsWidthMismatch(t *testing.T) {
	t.Parallel()
	_, err := New(WithHinted(&LinearModel{Threshold: 0.5, Weights: make([]float64, 52)}))
	assert.Error(t, err)
	_, err = New(WithUnhinted(&LinearModel{Threshold: 0.5, Weights: make([]float64, 53)}))
	assert.Error(t, err)
}

func TestLoadFromConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// The hinted model folds on weak categories: a large negative weight on
	// the category code pushes strong hands towards playing.
	hinted := writeModel(t, dir, "hinted.hcl", features.HintedWidth, 2, 0, -1)
	// The unhinted model always folds.
	unhinted := writeModel(t, dir, "unhinted.hcl", features.UnhintedWidth, 5, 0, 0)

	cfg := config.Default()
	cfg.Models = []config.ModelConfig{
		{Name: config.ModelHinted, Path: hinted},
		{Name: config.ModelUnhinted, Path: unhinted},
	}

	ctx, err := Load(cfg, nil)
	require.NoError(t, err)
	require.True(t, ctx.HasHinted())
	require.True(t, ctx.HasUnhinted())

	// High Card encodes as 3: 2 - 3 < 0, play.
	highCard, err := poker.ParseHand("As Kd 9h 7c 2s")
	require.NoError(t, err)
	pred, err := ctx.Predict(highCard)
	require.NoError(t, err)
	assert.Equal(t, poker.HighCard, pred.Category)
	assert.False(t, pred.Fold())

	// Flush encodes as 0: sigmoid(2) > 0.5, fold.
	flush, err := poker.ParseHand("2c 5c 9c Jc Kc")
	require.NoError(t, err)
	pred, err = ctx.Predict(flush)
	require.NoError(t, err)
	assert.Equal(t, poker.Flush, pred.Category)
	assert.True(t, pred.Fold())

	pred, err = ctx.PredictUnhinted(highCard)
	require.NoError(t, err)
	assert.Equal(t, ClassFold, pred.Class)
}

func TestLoadMissingModelFile(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Models = []config.ModelConfig{{Name: config.ModelHinted, Path: filepath.Join(t.TempDir(), "nope.hcl")}}
	_, err := Load(cfg, nil)
	assert.Error(t, err)
}
