package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/pokerhint/internal/predict"
	"github.com/lox/pokerhint/poker"
)

// PredictCmd runs every configured fold model on one hand.
type PredictCmd struct {
	Cards []string `arg:"" help:"Cards of the hand (e.g. 'As Kd 7h' or 'AsKd7h')"`
}

func (c *PredictCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	hand, err := poker.ParseHand(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}

	pc, err := predict.Load(cfg, logger)
	if err != nil {
		return err
	}
	if !pc.HasHinted() && !pc.HasUnhinted() {
		return fmt.Errorf("no model blocks in %s: %w", g.Config, predict.ErrModelNotLoaded)
	}
	return writePredictions(g.out(), pc, hand)
}

// writePredictions prints the hand, its category and the advice of each loaded
// model.
func writePredictions(out io.Writer, pc *predict.Context, hand poker.Hand) error {
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render("Hand:"), renderHand(hand))
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render("Category:"), renderCategory(poker.Evaluate(hand)))

	if pc.HasHinted() {
		p, err := pc.Predict(hand)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", headerStyle.Render("Hinted:"), renderAdvice(p))
	}
	if pc.HasUnhinted() {
		p, err := pc.PredictUnhinted(hand)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", headerStyle.Render("Unhinted:"), renderAdvice(p))
	}
	return nil
}
