package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lox/pokerhint/internal/batch"
	"github.com/lox/pokerhint/internal/features"
	"github.com/lox/pokerhint/internal/fileutil"
)

// EncodeCmd writes the hinted feature matrix for every hand in a file.
type EncodeCmd struct {
	File    string `short:"f" required:"" type:"existingfile" help:"Hands to encode, one per line"`
	Out     string `short:"o" required:"" help:"CSV file to write"`
	Workers int    `short:"w" help:"Worker goroutines (overrides config)"`
}

func (c *EncodeCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
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
	hands := batch.Hands(lines)
	categories, err := batch.Classify(context.Background(), hands, workers)
	if err != nil {
		return err
	}

	rows := make([]features.Row, len(hands))
	for i, h := range hands {
		rows[i] = features.Row{Hand: h, Category: categories[i]}
	}

	enc := features.NewEncoder()
	err = fileutil.WriteAtomic(c.Out, 0o644, func(w io.Writer) error {
		return enc.WriteCSV(w, rows)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}

	logger.Info("Wrote feature matrix", "path", c.Out, "rows", len(rows), "columns", features.HintedWidth)
	return nil
}
