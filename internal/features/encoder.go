// Package features turns hands into the numeric rows the fold model consumes:
// one column per card in the deck, optionally followed by the encoded hand
// category.
package features

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/lox/pokerhint/poker"
)

// DeckSize is the number of one-hot card columns.
const DeckSize = 52

const (
	// UnhintedWidth is the row width without the category column.
	UnhintedWidth = DeckSize
	// HintedWidth is the row width with the category column.
	HintedWidth = DeckSize + 1
)

// RoyalFlushLabel is part of the model's label vocabulary but is never
// produced by poker.Evaluate, which reports royal flushes as straight flushes.
const RoyalFlushLabel = "Royal Flush"

// Vocabulary is the label set the model was fitted with.
var Vocabulary = []string{
	"Flush", "Four of a Kind", "Full House", "High Card", "One Pair",
	RoyalFlushLabel, "Straight", "Straight Flush", "Three of a Kind", "Two Pairs",
}

// CardBinarizer one-hot encodes hands over the 52 deck indices.
type CardBinarizer struct{}

// Transform returns a DeckSize row with a 1 at each card's deck index.
func (CardBinarizer) Transform(h poker.Hand) []float64 {
	row := make([]float64, DeckSize)
	for _, c := range h.Cards() {
		row[c.Index()] = 1
	}
	return row
}

// Columns returns the card identifier for each column, in column order.
func (CardBinarizer) Columns() []string {
	cols := make([]string, DeckSize)
	for i := range cols {
		c, _ := poker.CardFromIndex(i)
		cols[i] = c.String()
	}
	return cols
}

// LabelEncoder maps labels to their position in the sorted class list.
type LabelEncoder struct {
	classes []string
	codes   map[string]int
}

// NewLabelEncoder fits an encoder on labels. Duplicates are collapsed.
func NewLabelEncoder(labels []string) (*LabelEncoder, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("label encoder needs at least one label")
	}
	classes := slices.Clone(labels)
	slices.Sort(classes)
	classes = slices.Compact(classes)

	codes := make(map[string]int, len(classes))
	for i, c := range classes {
		codes[c] = i
	}
	return &LabelEncoder{classes: classes, codes: codes}, nil
}

// Transform returns the code for label.
func (le *LabelEncoder) Transform(label string) (int, error) {
	code, ok := le.codes[label]
	if !ok {
		return 0, fmt.Errorf("unknown label %q", label)
	}
	return code, nil
}

// Inverse returns the label for code.
func (le *LabelEncoder) Inverse(code int) (string, error) {
	if code < 0 || code >= len(le.classes) {
		return "", fmt.Errorf("label code %d out of range", code)
	}
	return le.classes[code], nil
}

// Classes returns the fitted classes in code order.
func (le *LabelEncoder) Classes() []string {
	return slices.Clone(le.classes)
}

// Encoder bundles the fitted card and label encoders.
type Encoder struct {
	cards  CardBinarizer
	labels *LabelEncoder
}

// NewEncoder returns an encoder fitted on Vocabulary.
func NewEncoder() *Encoder {
	labels, err := NewLabelEncoder(Vocabulary)
	if err != nil {
		panic(err)
	}
	return &Encoder{labels: labels}
}

// Labels exposes the fitted label encoder.
func (e *Encoder) Labels() *LabelEncoder {
	return e.labels
}

// Unhinted returns the one-hot card row.
func (e *Encoder) Unhinted(h poker.Hand) []float64 {
	return e.cards.Transform(h)
}

// Hinted returns the one-hot card row followed by the category code.
func (e *Encoder) Hinted(h poker.Hand, c poker.Category) ([]float64, error) {
	code, err := e.labels.Transform(c.String())
	if err != nil {
		return nil, err
	}
	row := e.cards.Transform(h)
	return append(row, float64(code)), nil
}

// Row is one encoded hand ready for export.
type Row struct {
	Hand     poker.Hand
	Category poker.Category
}

// WriteCSV writes hinted rows with a header naming every column.
func (e *Encoder) WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	header := append(e.cards.Columns(), "category")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, HintedWidth)
	for i, r := range rows {
		values, err := e.Hinted(r.Hand, r.Category)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		for j, v := range values {
			record[j] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
