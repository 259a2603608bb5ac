package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokerhint/internal/predict"
	"github.com/lox/pokerhint/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	strongStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	foldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	playStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

func disableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func renderHand(h poker.Hand) string {
	return handStyle.Render(h.String())
}

// renderCategory highlights straights and better.
func renderCategory(c poker.Category) string {
	if c >= poker.Straight {
		return strongStyle.Render(c.String())
	}
	return categoryStyle.Render(c.String())
}

func renderAdvice(p predict.Prediction) string {
	if p.Fold() {
		return foldStyle.Render("fold")
	}
	return playStyle.Render("play")
}
