package features

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerhint/poker"
)

func TestLabelCodes(t *testing.T) {
	t.Parallel()
	enc := NewEncoder()
	want := map[string]int{
		"Flush":           0,
		"Four of a Kind":  1,
		"Full House":      2,
		"High Card":       3,
		"One Pair":        4,
		"Royal Flush":     5,
		"Straight":        6,
		"Straight Flush":  7,
		"Three of a Kind": 8,
		"Two Pairs":       9,
	}
	for label, code := range want {
		got, err := enc.Labels().Transform(label)
		require.NoError(t, err, label)
		assert.Equal(t, code, got, label)

		back, err := enc.Labels().Inverse(code)
		require.NoError(t, err)
		assert.Equal(t, label, back)
	}

	_, err := enc.Labels().Transform("Five of a Kind")
	assert.Error(t, err)
	_, err = enc.Labels().Inverse(10)
	assert.Error(t, err)
}

// Every category the evaluator can produce must be encodable.
func TestVocabularyCoversCategories(t *testing.T) {
	t.Parallel()
	enc := NewEncoder()
	for _, c := range poker.Categories {
		_, err := enc.Labels().Transform(c.String())
		assert.NoError(t, err, c.String())
	}
}

func TestNewLabelEncoder(t *testing.T) {
	t.Parallel()
	le, err := NewLabelEncoder([]string{"b", "a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, le.Classes())

	_, err = NewLabelEncoder(nil)
	assert.Error(t, err)
}

func TestUnhinted(t *testing.T) {
	t.Parallel()
	enc := NewEncoder()
	hand, err := poker.ParseHand("2c As Td")
	require.NoError(t, err)

	row := enc.Unhinted(hand)
	require.Len(t, row, UnhintedWidth)

	var ones []int
	for i, v := range row {
		if v == 1 {
			ones = append(ones, i)
		} else {
			assert.Zero(t, v)
		}
	}
	assert.Equal(t, []int{0, 33, 51}, ones)
}

func TestHinted(t *testing.T) {
	t.Parallel()
	enc := NewEncoder()
	hand, err := poker.ParseHand("7d Ad Ah As Qh Qs Th")
	require.NoError(t, err)

	row, err := enc.Hinted(hand, poker.Evaluate(hand))
	require.NoError(t, err)
	require.Len(t, row, HintedWidth)
	assert.Equal(t, float64(2), row[DeckSize], "full house code")
	assert.Equal(t, enc.Unhinted(hand), row[:DeckSize])

	_, err = enc.Hinted(hand, poker.Category(0))
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	enc := NewEncoder()
	hand, err := poker.ParseHand("AcAd")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, enc.WriteCSV(&buf, []Row{{Hand: hand, Category: poker.OnePair}}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2c", records[0][0])
	assert.Equal(t, "As", records[0][51])
	assert.Equal(t, "category", records[0][52])
	assert.Equal(t, "1", records[1][48])
	assert.Equal(t, "1", records[1][49])
	assert.Equal(t, "0", records[1][50])
	assert.Equal(t, "4", records[1][52])
}
