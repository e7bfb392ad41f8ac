package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tradepulse/internal/domain"
)

// sparkRunes render a price series as a compact bar chart.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

func (m Model) updateMarkets(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) viewMarkets() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("↑/↓ scroll · tab or 1-4 switch view · ctrl+c quit"))
	return b.String()
}

func (m Model) renderMarkets() string {
	var b strings.Builder
	b.WriteString("Market Watch ")
	b.WriteString(gainStyle.Render("● LIVE"))
	b.WriteString("\n\n")

	for _, asset := range m.catalog.Assets() {
		b.WriteString(renderAsset(asset))
		b.WriteString("\n")
	}

	b.WriteString("\nUpcoming Matches & Betting Odds\n\n")
	for _, match := range m.catalog.Matches() {
		b.WriteString(renderMatch(match))
		b.WriteString("\n")
	}
	return b.String()
}

func renderAsset(a domain.MarketAsset) string {
	var b strings.Builder

	change := fmt.Sprintf("%+.2f%%", a.Change)
	b.WriteString(fmt.Sprintf("%-8s %-20s %s %s",
		usernameStyle.Render(a.Symbol),
		a.Name,
		priceStyle.Render("$"+formatPrice(a.Price)),
		changeStyle(a.Change).Render(change)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(sparkline(a.History)))

	return cardStyle.Render(b.String())
}

// sparkline maps the history series onto bar runes, normalised to the
// series' own min/max.
func sparkline(history []domain.PricePoint) string {
	if len(history) == 0 {
		return ""
	}
	lo, hi := history[0].Value, history[0].Value
	for _, p := range history {
		if p.Value < lo {
			lo = p.Value
		}
		if p.Value > hi {
			hi = p.Value
		}
	}

	var b strings.Builder
	for _, p := range history {
		idx := 0
		if hi > lo {
			idx = int((p.Value - lo) / (hi - lo) * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

func renderMatch(match domain.Match) string {
	odds := make([]string, len(match.Odds))
	for i, o := range match.Odds {
		odds[i] = fmt.Sprintf("%.2f", o)
	}
	return fmt.Sprintf("%-4s %s %s  %s",
		dimStyle.Render(match.League),
		match.Title,
		dimStyle.Render(match.Starts),
		tagStyle.Render(strings.Join(odds, " / ")))
}
