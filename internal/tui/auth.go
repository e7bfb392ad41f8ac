package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tradepulse/internal/chat"
	"tradepulse/internal/session"
)

// Auth form field order. Sign-in uses only the username field.
const (
	authFieldUsername = iota
	authFieldDisplayName
	authFieldEmail
	authFieldPassword
)

func newAuthInputs(mode session.Mode) []textinput.Model {
	username := textinput.New()
	username.Placeholder = "e.g. Satoshi_2024"
	username.Prompt = "Username     > "
	username.CharLimit = 40

	if mode == session.ModeSignIn {
		return []textinput.Model{username}
	}

	displayName := textinput.New()
	displayName.Placeholder = "Full Name"
	displayName.Prompt = "Display name > "
	displayName.CharLimit = 60

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "Email        > "
	email.CharLimit = 80

	password := textinput.New()
	password.Placeholder = "secret"
	password.Prompt = "Password     > "
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 80

	return []textinput.Model{username, displayName, email, password}
}

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+t":
		// Toggle sign-in / register; field contents reset with the form.
		if m.authMode == session.ModeSignIn {
			m.authMode = session.ModeRegister
		} else {
			m.authMode = session.ModeSignIn
		}
		m.authInputs = newAuthInputs(m.authMode)
		m.authFocus = 0
		m.authInputs[0].Focus()
		m.authErr = ""
		return m, nil

	case "tab", "down":
		return m.focusAuthField(m.authFocus + 1), nil

	case "shift+tab", "up":
		return m.focusAuthField(m.authFocus - 1), nil

	case "enter":
		if m.authFocus < len(m.authInputs)-1 {
			return m.focusAuthField(m.authFocus + 1), nil
		}
		return m.submitAuth()
	}

	var cmd tea.Cmd
	m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
	return m, cmd
}

func (m Model) focusAuthField(i int) Model {
	n := len(m.authInputs)
	i = ((i % n) + n) % n
	m.authInputs[m.authFocus].Blur()
	m.authFocus = i
	m.authInputs[i].Focus()
	return m
}

// submitAuth validates and starts the session. Validation failures show an
// inline message; the form input stays put for correction.
func (m Model) submitAuth() (tea.Model, tea.Cmd) {
	creds := session.Credentials{
		Mode:     m.authMode,
		Username: m.authInputs[authFieldUsername].Value(),
	}
	if m.authMode == session.ModeRegister {
		creds.DisplayName = m.authInputs[authFieldDisplayName].Value()
		creds.Email = m.authInputs[authFieldEmail].Value()
		creds.Password = m.authInputs[authFieldPassword].Value()
	}

	user, err := m.sessions.Login(creds)
	if err != nil {
		var verr *session.ValidationError
		if errors.As(err, &verr) {
			m.authErr = verr.Error()
			return m, nil
		}
		m.logger.Error("login failed", "error", err)
		m.authErr = "something went wrong, try again"
		return m, nil
	}

	m.user = user
	m.chat = chat.NewSession(user.ID, m.logger)
	m.activeTab = TabFeed
	m.authErr = ""
	m.syncFocus()
	m.refreshViewport()
	return m, nil
}

func (m Model) viewAuth() string {
	var b strings.Builder

	b.WriteString(appTitleStyle.Render("TradePulse"))
	b.WriteString(dimStyle.Render("  — the social edge for financial elites"))
	b.WriteString("\n\n")

	if m.authMode == session.ModeSignIn {
		b.WriteString("Sign in\n\n")
	} else {
		b.WriteString("Create account\n\n")
	}

	for _, in := range m.authInputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if m.authErr != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.authErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("enter submit · ctrl+t toggle sign-in/register · ctrl+c quit"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("crypto · forex · betting"))
	return b.String()
}
