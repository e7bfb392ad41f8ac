package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tradepulse/internal/domain"
	"tradepulse/internal/feed"
	"tradepulse/internal/media"
)

func (m Model) updateFeed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.attaching {
		switch msg.String() {
		case "enter":
			path := strings.TrimSpace(m.attachInput.Value())
			if path == "" {
				m.attaching = false
				m.attachInput.Blur()
				m.composer.Focus()
				return m, nil
			}
			return m, loadAttachmentCmd(path)
		case "esc":
			m.attaching = false
			m.attachInput.Blur()
			m.attachInput.SetValue("")
			m.composer.Focus()
			return m, nil
		}
		var cmd tea.Cmd
		m.attachInput, cmd = m.attachInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+s":
		return m.submitPost()
	case "ctrl+o":
		m.attaching = true
		m.composer.Blur()
		m.attachInput.Focus()
		return m, nil
	case "ctrl+x":
		m.attachment = nil
		m.feedNotice = ""
		return m, nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

// submitPost hands the draft to the feed store. An empty draft is silently
// ignored: no mutation, no error surfaced.
func (m Model) submitPost() (tea.Model, tea.Cmd) {
	var att *domain.Media
	if m.attachment != nil {
		att = &m.attachment.Media
	}

	_, err := m.feed.CreatePost(*m.user, m.composer.Value(), att)
	if err != nil {
		if !errors.Is(err, feed.ErrEmptyPost) {
			m.logger.Error("creating post", "error", err)
		}
		return m, nil
	}

	m.composer.Reset()
	m.attachment = nil
	m.attachInput.SetValue("")
	m.feedNotice = ""
	m.refreshViewport()
	m.viewport.GotoTop()
	return m, nil
}

func loadAttachmentCmd(path string) tea.Cmd {
	return func() tea.Msg {
		att, err := media.ReadAttachment(path)
		return attachmentMsg{att: att, err: err}
	}
}

func (m Model) updateAttachment(msg attachmentMsg) (tea.Model, tea.Cmd) {
	m.attaching = false
	m.attachInput.Blur()
	m.composer.Focus()
	if msg.err != nil {
		m.logger.Warn("loading attachment", "error", msg.err)
		m.feedNotice = "could not attach: " + msg.err.Error()
		return m, nil
	}
	m.attachment = msg.att
	m.feedNotice = fmt.Sprintf("attached %s (%d bytes)", msg.att.MIME, len(msg.att.Data))
	return m, nil
}

func (m Model) viewFeed() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())

	b.WriteString(m.composer.View())
	b.WriteString("\n")
	if m.attaching {
		b.WriteString(m.attachInput.View())
		b.WriteString("\n")
	}
	if m.feedNotice != "" {
		b.WriteString(dimStyle.Render(m.feedNotice))
		b.WriteString("\n")
	}

	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("ctrl+s post · ctrl+o attach · ctrl+x clear attachment · tab/alt+1-4 switch view · ctrl+c quit"))
	return b.String()
}

func (m Model) renderPosts() string {
	var b strings.Builder
	for _, p := range m.feed.Posts() {
		b.WriteString(renderPost(p))
		b.WriteString("\n")
	}
	return b.String()
}

func renderPost(p domain.Post) string {
	var b strings.Builder

	header := usernameStyle.Render("@"+p.Username) + dimStyle.Render("  "+formatClock(p.Timestamp))
	if p.Prediction != nil {
		if p.Prediction.Direction == domain.DirectionUp {
			header += "  " + longBadgeStyle.Render(fmt.Sprintf(" ▲ LONG %s @ %s ", p.Prediction.Asset, formatPrice(p.Prediction.EntryPrice)))
		} else {
			header += "  " + shortBadgeStyle.Render(fmt.Sprintf(" ▼ SHORT %s @ %s ", p.Prediction.Asset, formatPrice(p.Prediction.EntryPrice)))
		}
	}
	b.WriteString(header)
	b.WriteString("\n")

	if p.Content != "" {
		b.WriteString(p.Content)
		b.WriteString("\n")
	}
	if p.Media != nil {
		b.WriteString(dimStyle.Render(fmt.Sprintf("[%s attachment]", p.Media.Kind)))
		b.WriteString("\n")
	}
	if len(p.Tags) > 0 {
		tags := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			tags[i] = "#" + t
		}
		b.WriteString(tagStyle.Render(strings.Join(tags, " ")))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("👍 %d   💬 %d", p.Likes, p.Comments)))

	return cardStyle.Render(b.String())
}

func formatClock(unixMilli int64) string {
	return time.UnixMilli(unixMilli).Format("15:04")
}

func formatPrice(v float64) string {
	if v >= 100 {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.4f", v)
}
