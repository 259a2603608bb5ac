package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lox/pokerhint/internal/batch"
	"github.com/lox/pokerhint/poker"
)

// ClassifyCmd prints the category of hands given as arguments or in a file.
type ClassifyCmd struct {
	Hands   []string `arg:"" optional:"" help:"Hands to classify, one per argument (e.g. 'AsKsQsJsTs' or 'As Ks Qs')"`
	File    string   `short:"f" type:"existingfile" help:"Read hands from a file, one per line"`
	Workers int      `short:"w" help:"Worker goroutines for file input (overrides config)"`
}

type classified struct {
	label    string
	hand     poker.Hand
	category poker.Category
}

func (c *ClassifyCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	switch {
	case c.File != "" && len(c.Hands) > 0:
		return errors.New("pass hands as arguments or --file, not both")
	case c.File == "" && len(c.Hands) == 0:
		return errors.New("no hands given")
	}

	if c.File == "" {
		rows := make([]classified, 0, len(c.Hands))
		for i, arg := range c.Hands {
			hand, err := poker.ParseHand(arg)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i+1, err)
			}
			rows = append(rows, classified{label: fmt.Sprint(i + 1), hand: hand, category: poker.Evaluate(hand)})
		}
		return writeClassified(g.out(), "#", rows)
	}

	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	lines, err := batch.ParseLines(f)
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	workers := cfg.Batch.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}
	logger.Debug("Classifying file", "file", c.File, "hands", len(lines), "workers", workers)

	categories, err := batch.Classify(context.Background(), batch.Hands(lines), workers)
	if err != nil {
		return err
	}

	rows := make([]classified, len(lines))
	for i, l := range lines {
		rows[i] = classified{label: fmt.Sprint(l.Number), hand: l.Hand, category: categories[i]}
	}
	return writeClassified(g.out(), "LINE", rows)
}

func writeClassified(out io.Writer, labelHeader string, rows []classified) error {
	var t table
	t.header(labelHeader, "HAND", "CATEGORY", "STRENGTH")
	for _, r := range rows {
		t.row(r.label, renderHand(r.hand), renderCategory(r.category), fmt.Sprint(r.category.Strength()))
	}
	return t.render(out)
}
