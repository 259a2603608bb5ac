package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = 2

// table aligns styled cells by their visible width. Escape sequences from
// lipgloss are not counted, so coloured and plain output line up the same.
type table struct {
	rows [][]string
}

func (t *table) header(cells ...string) {
	styled := make([]string, len(cells))
	for i, c := range cells {
		styled[i] = headerStyle.Render(c)
	}
	t.rows = append(t.rows, styled)
}

func (t *table) row(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) widths() []int {
	var widths []int
	for _, r := range t.rows {
		for i, c := range r {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}
	return widths
}

// render pads every cell but the last in each row.
func (t *table) render(out io.Writer) error {
	widths := t.widths()
	var b strings.Builder
	for _, r := range t.rows {
		b.Reset()
		for i, c := range r {
			b.WriteString(c)
			if i < len(r)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(c)+columnGap))
			}
		}
		if _, err := fmt.Fprintln(out, b.String()); err != nil {
			return err
		}
	}
	return nil
}
