package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/groundchat/internal/core"
	"github.com/sandevgo/groundchat/internal/service/ui"
)

func (m model) handleCommand(value string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(value)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/quit", "/exit":
		m.quitting = true
		return m, tea.Quit

	case "/help":
		m.status = ui.MutedStyle.Render(
			"/attach <path> add a document | /contexts list documents | /use <n> ground on document n | /use none ungrounded | /quit leave")
		return m, nil

	case "/attach":
		if len(args) != 1 {
			m.status = ui.ErrorStyle.Render("Usage: /attach <path>")
			return m, nil
		}
		m.status = ui.MutedStyle.Render("Reading " + args[0] + "...")
		return m, m.attachCmd(args[0])

	case "/contexts":
		m.status = m.contextListView()
		return m, nil

	case "/use":
		if len(args) != 1 {
			m.status = ui.ErrorStyle.Render("Usage: /use <n> or /use none")
			return m, nil
		}
		return m.selectContext(args[0])
	}

	m.status = ui.ErrorStyle.Render("Unknown command " + cmd + ". Try /help.")
	return m, nil
}

func (m model) attachCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := m.ingestor.FromFile(m.ctx, path)
		if err != nil {
			return attachErrMsg{err: err}
		}
		cx := m.session.Contexts().Add(doc.Name, doc.Text, doc.Tokens)
		return attachOKMsg{cx: cx}
	}
}

func (m model) selectContext(arg string) (tea.Model, tea.Cmd) {
	if arg == "none" {
		m.session.Contexts().Select(core.NoContextID)
		m.status = ui.NoticeStyle.Render("Grounding disabled; replies use the raw prompt.")
		return m, nil
	}

	n, err := strconv.Atoi(arg)
	all := m.session.Contexts().All()
	if err != nil || n < 1 || n > len(all) {
		m.status = ui.ErrorStyle.Render(fmt.Sprintf("No document %q. /contexts lists what is attached.", arg))
		return m, nil
	}

	m.session.Contexts().Select(all[n-1].ID)
	m.status = ui.NoticeStyle.Render("Replies are now grounded on " + all[n-1].Name + ".")
	return m, nil
}

func (m model) contextListView() string {
	all := m.session.Contexts().All()
	if len(all) == 0 {
		return ui.MutedStyle.Render("No documents attached yet. /attach <path> to add one.")
	}

	selected, hasSelection := m.session.Contexts().Selected()
	var b strings.Builder
	for i, cx := range all {
		marker := "  "
		if hasSelection && cx.ID == selected.ID {
			marker = "* "
		}
		b.WriteString(fmt.Sprintf("%s%d. %s (%d tokens)", marker, i+1, cx.Name, cx.Tokens))
		if i < len(all)-1 {
			b.WriteString("\n")
		}
	}
	return ui.MutedStyle.Render(b.String())
}
