package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/lipgloss"

	"tradepulse/internal/domain"
	"tradepulse/internal/media"
)

// chartCommand asks the analyst about a local chart image:
// /chart <path> [prompt...]
const chartCommand = "/chart "

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submitChat()
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

// submitChat appends the user message and dispatches the collaborator
// request. Blank input and an already-outstanding request are both rejected
// by the session with no state change.
func (m Model) submitChat() (tea.Model, tea.Cmd) {
	text := m.chatInput.Value()
	if _, err := m.chat.Send(text); err != nil {
		return m, nil
	}
	m.chatInput.SetValue("")
	m.refreshViewport()
	m.viewport.GotoBottom()

	if strings.HasPrefix(text, chartCommand) {
		return m, m.dispatchChartQuery(strings.TrimPrefix(text, chartCommand))
	}
	return m, m.analyzeCmd(text)
}

// dispatchChartQuery loads the referenced image and sends it inline with the
// remaining words as the prompt. A failed read resolves the turn through the
// normal fallback path.
func (m Model) dispatchChartQuery(rest string) tea.Cmd {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return m.analyzeCmd(rest)
	}
	path := fields[0]
	prompt := strings.Join(fields[1:], " ")

	att, err := media.ReadAttachment(path)
	if err != nil {
		return func() tea.Msg { return aiReplyMsg{err: err} }
	}
	return m.analyzeImageCmd(att, prompt)
}

func (m Model) viewChat() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())

	b.WriteString("Market Analyst AI ")
	b.WriteString(gainStyle.Render("● online"))
	b.WriteString("\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.chat.Busy() {
		b.WriteString(dimStyle.Render("analyst is typing..."))
	} else {
		b.WriteString(m.chatInput.View())
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("enter send · /chart <path> [prompt] analyze an image · tab/alt+1-4 switch view"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("not financial advice. trade at your own risk."))
	return b.String()
}

func (m Model) renderTranscript() string {
	width := minInt(m.width-10, 70)
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for _, msg := range m.chat.Messages() {
		b.WriteString(renderMessage(msg, width, m.width))
		b.WriteString("\n")
	}
	return b.String()
}

func renderMessage(msg domain.Message, bubbleWidth, totalWidth int) string {
	stamp := dimStyle.Render(formatClock(msg.Timestamp))
	if msg.IsAI {
		body := aiBubbleStyle.Width(bubbleWidth).Render(msg.Text)
		return body + " " + stamp
	}
	body := userBubbleStyle.Width(bubbleWidth).Render(msg.Text) + " " + stamp
	if totalWidth > 0 {
		return lipgloss.PlaceHorizontal(totalWidth, lipgloss.Right, body)
	}
	return body
}
