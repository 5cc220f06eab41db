package terminal

import (
	"github.com/Josmithr/rushstack/internal/core/domain"
	"github.com/charmbracelet/lipgloss"
)

// Severity colors.
var (
	red    = lipgloss.Color("#D93025")
	yellow = lipgloss.Color("#F59E0B")
	slate  = lipgloss.Color("#667085")
)

var severityStyles = map[domain.TipSeverity]lipgloss.Style{
	domain.SeverityError:   lipgloss.NewStyle().Foreground(red),
	domain.SeverityWarning: lipgloss.NewStyle().Foreground(yellow),
	domain.SeverityInfo:    lipgloss.NewStyle().Foreground(slate),
}

// styleFor returns the lipgloss style for a severity.
func styleFor(severity domain.TipSeverity) lipgloss.Style {
	if style, ok := severityStyles[severity]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
