package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tradepulse/internal/session"
)

func (m Model) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "l":
		return m.logout()
	case "q":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// logout ends the session: the persisted record is cleared and the client
// drops back to the auth gate with a fresh form.
func (m Model) logout() (tea.Model, tea.Cmd) {
	if err := m.sessions.Logout(); err != nil {
		m.logger.Error("logout failed", "error", err)
		return m, nil
	}
	m.user = nil
	m.chat = nil
	m.activeTab = TabFeed
	m.authMode = session.ModeSignIn
	m.authInputs = newAuthInputs(m.authMode)
	m.authFocus = 0
	m.authInputs[0].Focus()
	m.authErr = ""
	return m, nil
}

func (m Model) viewProfile() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("l logout · tab or 1-4 switch view · q quit"))
	return b.String()
}

func (m Model) renderProfile() string {
	u := m.user

	var b strings.Builder
	name := u.DisplayName
	if u.IsPro {
		name += " " + proBadgeStyle.Render(" PRO ")
	}
	b.WriteString(priceStyle.Render(name))
	b.WriteString("\n")
	b.WriteString(usernameStyle.Render("@" + u.Username))
	b.WriteString("\n\n")
	b.WriteString(u.Bio)
	b.WriteString("\n\n")

	b.WriteString(renderStat("Followers", fmt.Sprintf("%d", u.Followers)))
	b.WriteString("  ")
	b.WriteString(renderStat("Following", fmt.Sprintf("%d", u.Following)))
	b.WriteString("  ")
	b.WriteString(renderStat("Signals", fmt.Sprintf("%d", m.countSignals())))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(u.Email))
	b.WriteString("\n")

	if m.countSignals() == 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Your trading journey is just beginning. Post your first signal!"))
	}
	return b.String()
}

func renderStat(label, value string) string {
	return statValueStyle.Render(value) + " " + statLabelStyle.Render(label)
}

// countSignals counts the current user's own posts in the feed.
func (m Model) countSignals() int {
	n := 0
	for _, p := range m.feed.Posts() {
		if p.UserID == m.user.ID {
			n++
		}
	}
	return n
}
