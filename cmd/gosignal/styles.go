package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/evdnx/gosignal/suite"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// HelpStyle for secondary text.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	nameStyle    = lipgloss.NewStyle().Width(44)
	matchStyle   = lipgloss.NewStyle().Width(7)
	bullishStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	bearishStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// signalStyle colours a signal label by its lean.
func signalStyle(signal string) lipgloss.Style {
	switch suite.BiasOf(signal) {
	case suite.BiasBullish:
		return bullishStyle
	case suite.BiasBearish:
		return bearishStyle
	case suite.BiasError:
		return errorStyle
	default:
		return HelpStyle
	}
}

func verdictStyle(verdict string) lipgloss.Style {
	switch {
	case strings.HasSuffix(verdict, suite.VerdictBullish):
		return bullishStyle
	case strings.HasSuffix(verdict, suite.VerdictBearish):
		return bearishStyle
	default:
		return HelpStyle
	}
}

func renderEvaluation(eval evaluation, bars int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Signals over %d bars", bars)))
	b.WriteString("\n\n")
	b.WriteString(TitleStyle.Render(nameStyle.Render("Strategy") + matchStyle.Render("Match") + "Signal"))
	b.WriteString("\n")

	for _, r := range eval.Results {
		match := "no"
		if r.Match {
			match = "yes"
		}
		b.WriteString(nameStyle.Render(r.Name))
		b.WriteString(matchStyle.Render(match))
		b.WriteString(signalStyle(r.Signal).Render(r.Signal))
		b.WriteString("\n")
	}

	sum := eval.Summary
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(fmt.Sprintf("%d matched, %d bullish, %d bearish, %d neutral, %d errors",
		sum.Matched, sum.Bullish, sum.Bearish, sum.Neutral, sum.Errors)))
	b.WriteString("\n")
	b.WriteString(TitleStyle.Render("Verdict: ") + verdictStyle(sum.Verdict).Render(sum.Verdict))
	b.WriteString("\n")
	return b.String()
}
