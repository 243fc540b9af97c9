package viz

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

var (
	CanvasStyle = lipgloss.NewStyle().Padding(1, 2)

	StatsStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(38)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(12)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	ActiveParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	LegendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

func formatPotential(v float64) string {
	if math.IsInf(v, -1) {
		return "-∞"
	}
	if math.IsInf(v, 1) {
		return "+∞"
	}
	return fmt.Sprintf("%.4f", v)
}
