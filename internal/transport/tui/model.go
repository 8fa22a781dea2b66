package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/sandevgo/groundchat/internal/config"
	"github.com/sandevgo/groundchat/internal/core"
	"github.com/sandevgo/groundchat/internal/providers/docs"
	"github.com/sandevgo/groundchat/internal/service/chat"
	"github.com/sandevgo/groundchat/internal/service/dispatch"
	"github.com/sandevgo/groundchat/internal/service/ui"
)

type (
	noticeMsg    struct{ text string }
	replyMsg     struct{ assistant core.Message }
	sendFailMsg  struct{ err error }
	attachOKMsg  struct{ cx core.Context }
	attachErrMsg struct{ err error }
)

type model struct {
	ctx      context.Context
	appCfg   *config.AppConfig
	session  *chat.Session
	ingestor *docs.Ingestor

	viewport viewport.Model
	input    textinput.Model
	spin     spinner.Model
	renderer *glamour.TermRenderer

	busy     bool
	status   string
	width    int
	height   int
	ready    bool
	quitting bool
}

func newModel(ctx context.Context, appCfg *config.AppConfig, session *chat.Session, ingestor *docs.Ingestor) model {
	ti := textinput.New()
	ti.Placeholder = "Type a message, or /help for commands"
	ti.CharLimit = 4096
	ti.Prompt = "> "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		ctx:      ctx,
		appCfg:   appCfg,
		session:  session,
		ingestor: ingestor,
		input:    ti,
		spin:     sp,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 5
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.input.Width = msg.Width - 4
		m.renderer = newRenderer(msg.Width - 2)
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}

	case noticeMsg:
		m.status = ui.NoticeStyle.Render(msg.text)
		return m, nil

	case replyMsg:
		m.busy = false
		m.status = ""
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, nil

	case sendFailMsg:
		m.busy = false
		m.status = ui.ErrorStyle.Render(dispatch.Describe(msg.err))
		return m, nil

	case attachOKMsg:
		count := len(m.session.Contexts().All())
		note := fmt.Sprintf("Attached %q (%d tokens). Use /use %d to ground replies.",
			msg.cx.Name, msg.cx.Tokens, count)
		if msg.cx.Tokens > m.appCfg.ContextTokenAlert {
			note += " Warning: this context is large and may be truncated by the model."
		}
		m.status = ui.NoticeStyle.Render(note)
		return m, nil

	case attachErrMsg:
		m.status = ui.ErrorStyle.Render(fmt.Sprintf("Attach failed: %v", msg.err))
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return m, nil
	}
	if strings.HasPrefix(value, "/") {
		m.input.Reset()
		return m.handleCommand(value)
	}
	if m.busy {
		m.status = ui.NoticeStyle.Render("Still waiting on the previous message...")
		return m, nil
	}

	m.busy = true
	m.status = ""
	m.input.Reset()
	return m, tea.Batch(m.spin.Tick, m.sendCmd(value))
}

func (m model) sendCmd(input string) tea.Cmd {
	return func() tea.Msg {
		assistant, err := m.session.Send(m.ctx, input)
		if err != nil {
			return sendFailMsg{err: err}
		}
		return replyMsg{assistant: assistant}
	}
}

func (m *model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.transcriptView())
}

func (m model) transcriptView() string {
	messages := m.session.Transcript().Messages()
	if len(messages) == 0 {
		return ui.MutedStyle.Render("Attach a document with /attach <path>, pick it with /use 1, and start asking questions.")
	}

	var b strings.Builder
	for _, msg := range messages {
		switch msg.Role {
		case core.RoleUser:
			b.WriteString(ui.UserStyle.Render("You") + "\n")
			b.WriteString(msg.Content + "\n\n")
		case core.RoleAssistant:
			b.WriteString(ui.AssistantStyle.Render("Gemini") + "\n")
			b.WriteString(m.renderMarkdown(msg.Content) + "\n")
		}
	}
	return b.String()
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "starting..."
	}

	status := m.status
	if m.busy {
		status = m.spin.View() + ui.MutedStyle.Render("thinking...")
		if m.status != "" {
			status = m.spin.View() + m.status
		}
	}

	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("GroundChat") + " " + m.contextBadge() + "\n")
	b.WriteString(m.viewport.View() + "\n")
	b.WriteString(status + "\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(ui.MutedStyle.Render("/attach /contexts /use /help /quit"))
	return b.String()
}

func (m model) contextBadge() string {
	if cx, ok := m.session.Contexts().Selected(); ok {
		return ui.MutedStyle.Render("grounded on " + cx.Name)
	}
	return ui.MutedStyle.Render("no context")
}
