// Package batch classifies many hands concurrently.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerhint/poker"
)

// Line is a parsed hand together with the input line it came from.
type Line struct {
	Number int
	Hand   poker.Hand
}

// ParseLines reads one hand per line ("As Kd 7h" or "AsKd7h"). Blank lines and
// lines starting with '#' are skipped. The first invalid hand stops parsing.
func ParseLines(r io.Reader) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		hand, err := poker.ParseHand(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		lines = append(lines, Line{Number: n, Hand: hand})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read hands: %w", err)
	}
	return lines, nil
}

// Hands extracts the hands from parsed lines.
func Hands(lines []Line) []poker.Hand {
	hands := make([]poker.Hand, len(lines))
	for i, l := range lines {
		hands[i] = l.Hand
	}
	return hands
}

// chunkSize keeps goroutine overhead small relative to the evaluation work.
const chunkSize = 256

// Classify evaluates every hand using up to workers goroutines. Results are in
// input order. Cancelling ctx abandons the remaining work.
func Classify(ctx context.Context, hands []poker.Hand, workers int) ([]poker.Category, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]poker.Category, len(hands))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(hands); start += chunkSize {
		end := min(start+chunkSize, len(hands))
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				out[i] = poker.Evaluate(hands[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
