package tui

import "github.com/charmbracelet/lipgloss"

// Styles.
var (
	appTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	tabActiveStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Underline(true)
	tabIdleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	usernameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	tagStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	gainStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	priceStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	longBadgeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))
	shortBadgeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9"))
	proBadgeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	aiBubbleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")).Padding(0, 1)
	userBubbleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Padding(0, 1)
	cardStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	statLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	statValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	footerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// changeStyle picks the gain or loss style for a percent change.
func changeStyle(change float64) lipgloss.Style {
	if change >= 0 {
		return gainStyle
	}
	return lossStyle
}
