// Package tui is the tradepulse terminal client: an Elm-style model holding
// the active view, the auth gate, and the wiring between user input and the
// session, feed, market, and chat stores.
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tradepulse/internal/ai"
	"tradepulse/internal/chat"
	"tradepulse/internal/domain"
	"tradepulse/internal/feed"
	"tradepulse/internal/market"
	"tradepulse/internal/media"
	"tradepulse/internal/session"
)

// Tab selects which top-level view is rendered. The four views are mutually
// exclusive; switching is a flat select with no history stack.
type Tab int

const (
	TabFeed Tab = iota
	TabMarkets
	TabChat
	TabProfile
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabFeed:
		return "Feed"
	case TabMarkets:
		return "Markets"
	case TabChat:
		return "AI Analyst"
	case TabProfile:
		return "Profile"
	}
	return "?"
}

// Messages.
type tickMsg time.Time

type aiReplyMsg struct {
	text string
	err  error
}

type attachmentMsg struct {
	att *media.Attachment
	err error
}

func tickCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the top-level TUI state.
type Model struct {
	// Collaborators.
	sessions *session.Store
	feed     *feed.Store
	catalog  *market.Catalog
	analyst  ai.Analyst // nil when no API key is configured
	logger   *slog.Logger

	// Session state. chat is created per login and dropped on logout.
	user *domain.User
	chat *chat.Session

	// View state.
	activeTab     Tab
	width, height int
	ready         bool
	viewport      viewport.Model

	// Auth form.
	authMode   session.Mode
	authInputs []textinput.Model
	authFocus  int
	authErr    string

	// Feed composer.
	composer    textarea.Model
	attachInput textinput.Model
	attaching   bool
	attachment  *media.Attachment
	feedNotice  string

	// Chat input.
	chatInput textinput.Model
}

// New builds the TUI model. user may be nil (no restored session), in which
// case only the auth view is reachable.
func New(sessions *session.Store, feedStore *feed.Store, catalog *market.Catalog, analyst ai.Analyst, user *domain.User, logger *slog.Logger) Model {
	m := Model{
		sessions: sessions,
		feed:     feedStore,
		catalog:  catalog,
		analyst:  analyst,
		logger:   logger,
		user:     user,
	}
	m.authInputs = newAuthInputs(session.ModeSignIn)

	m.composer = textarea.New()
	m.composer.Placeholder = "Share your trade signal or analysis..."
	m.composer.SetHeight(3)
	m.composer.CharLimit = 500

	m.attachInput = textinput.New()
	m.attachInput.Placeholder = "path to image or video"
	m.attachInput.Prompt = "attach> "

	m.chatInput = textinput.New()
	m.chatInput.Placeholder = "Ask about BTC sentiment or EUR/USD resistance..."
	m.chatInput.Prompt = "> "
	m.chatInput.CharLimit = 400

	if user != nil {
		m.chat = chat.NewSession(user.ID, logger)
		m.composer.Focus()
	} else {
		m.authInputs[0].Focus()
	}
	return m
}

// Init starts the periodic markets refresh.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), textinput.Blink)
}

// Update routes messages to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.user == nil {
			return m.updateAuth(msg)
		}
		// Flat view switch; selecting the current view is a no-op re-render.
		switch key := msg.String(); key {
		case "tab":
			return m.selectTab((m.activeTab + 1) % tabCount), nil
		case "shift+tab":
			return m.selectTab((m.activeTab + tabCount - 1) % tabCount), nil
		case "alt+1", "alt+2", "alt+3", "alt+4":
			return m.selectTab(Tab(key[len(key)-1] - '1')), nil
		case "1", "2", "3", "4":
			// Bare digits select directly only where no text input owns
			// them; on Feed and Chat they type into the focused input.
			if m.activeTab == TabMarkets || m.activeTab == TabProfile {
				return m.selectTab(Tab(key[0] - '1')), nil
			}
		}
		switch m.activeTab {
		case TabFeed:
			return m.updateFeed(msg)
		case TabMarkets:
			return m.updateMarkets(msg)
		case TabChat:
			return m.updateChat(msg)
		case TabProfile:
			return m.updateProfile(msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerH := 2
		footerH := 1
		vpHeight := m.height - headerH - footerH - 6
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.composer.SetWidth(minInt(m.width-4, 76))
		m.chatInput.Width = minInt(m.width-6, 74)
		m.refreshViewport()
		return m, nil

	case tickMsg:
		// Display-only refresh; the mock catalog itself never changes.
		if m.user != nil && m.activeTab == TabMarkets {
			m.refreshViewport()
		}
		return m, tickCmd()

	case aiReplyMsg:
		// Busy() gates out replies whose session is gone: a logout while a
		// request is in flight must not leak the reply into the transcript
		// of a later login.
		if m.chat != nil && m.chat.Busy() {
			m.chat.Resolve(msg.text, msg.err)
			m.refreshViewport()
			m.viewport.GotoBottom()
		}
		return m, nil

	case attachmentMsg:
		return m.updateAttachment(msg)
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the active view behind the auth gate.
func (m Model) View() string {
	if m.user == nil {
		return m.viewAuth()
	}
	switch m.activeTab {
	case TabFeed:
		return m.viewFeed()
	case TabMarkets:
		return m.viewMarkets()
	case TabChat:
		return m.viewChat()
	case TabProfile:
		return m.viewProfile()
	}
	return ""
}

// selectTab switches to the given view and re-homes input focus.
func (m Model) selectTab(t Tab) Model {
	m.activeTab = t
	m.syncFocus()
	m.refreshViewport()
	return m
}

// syncFocus moves input focus to the control owned by the active tab.
func (m *Model) syncFocus() {
	m.composer.Blur()
	m.chatInput.Blur()
	m.attachInput.Blur()
	m.attaching = false
	switch m.activeTab {
	case TabFeed:
		m.composer.Focus()
	case TabChat:
		m.chatInput.Focus()
	}
}

// refreshViewport re-renders the scrollable content of the active tab.
func (m *Model) refreshViewport() {
	if !m.ready || m.user == nil {
		return
	}
	switch m.activeTab {
	case TabFeed:
		m.viewport.SetContent(m.renderPosts())
	case TabMarkets:
		m.viewport.SetContent(m.renderMarkets())
	case TabChat:
		m.viewport.SetContent(m.renderTranscript())
	case TabProfile:
		m.viewport.SetContent(m.renderProfile())
	}
}

// analyzeCmd dispatches one collaborator request. At most one is outstanding
// at a time; the chat session enforces that before this is called.
func (m *Model) analyzeCmd(query string) tea.Cmd {
	analyst := m.analyst
	return func() tea.Msg {
		if analyst == nil {
			return aiReplyMsg{err: ai.ErrNoAPIKey}
		}
		text, err := analyst.AnalyzeQuery(context.Background(), query)
		return aiReplyMsg{text: text, err: err}
	}
}

// analyzeImageCmd dispatches one image-analysis request.
func (m *Model) analyzeImageCmd(att *media.Attachment, prompt string) tea.Cmd {
	analyst := m.analyst
	return func() tea.Msg {
		if analyst == nil {
			return aiReplyMsg{err: ai.ErrNoAPIKey}
		}
		text, err := analyst.AnalyzePostImage(context.Background(), att.Data, att.MIME, prompt)
		return aiReplyMsg{text: text, err: err}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// renderHeader draws the title and tab bar shown above every view.
func (m Model) renderHeader() string {
	parts := make([]string, 0, int(tabCount))
	for t := TabFeed; t < tabCount; t++ {
		label := t.String()
		if t == m.activeTab {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabIdleStyle.Render(label))
		}
	}
	return appTitleStyle.Render("TradePulse") + "  " + joinTabs(parts) + "\n\n"
}

func joinTabs(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += dimStyle.Render(" │ ")
		}
		out += p
	}
	return out
}
