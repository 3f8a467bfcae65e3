package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type model struct {
	app      appConfig
	viewport viewport.Model
	input    textinput.Model
	ready    bool
	status   string
	running  bool
	events   <-chan any
	cancel   context.CancelFunc
	pending  *pendingInput
	lines    []string
}

var (
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runTUI(app appConfig) error {
	p := tea.NewProgram(newModel(app), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(model); ok && m.cancel != nil {
		m.cancel()
	}
	return nil
}

func newModel(app appConfig) model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 4096
	return model{
		app:      app,
		viewport: viewport.New(80, 20),
		input:    ti,
		status:   "starting",
	}
}

func startVM(app appConfig) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(context.Background())
		events := make(chan any, 256)
		go runVM(ctx, app, events)
		return vmStartedMsg{events: events, cancel: cancel}
	}
}

func waitVMEvent(events <-chan any) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

func (m model) Init() tea.Cmd {
	return startVM(m.app)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		vh := msg.Height - 2
		if vh < 1 {
			vh = 1
		}
		m.viewport.Width = msg.Width
		m.viewport.Height = vh
		m.input.Width = msg.Width - 4
		m.ready = true
		m.rebuildContent()
		return m, nil

	case vmStartedMsg:
		m.events = msg.events
		m.cancel = msg.cancel
		m.running = true
		m.status = "running"
		return m, waitVMEvent(m.events)

	case vmOutputMsg:
		m.appendLine(msg.out.Text)
		return m, waitVMEvent(m.events)

	case vmPromptMsg:
		m.pending = &pendingInput{req: msg.req, resp: msg.resp}
		m.input.SetValue("")
		m.status = "read " + msg.req.Name
		return m, m.input.Focus()

	case vmDoneMsg:
		m.running = false
		m.pending = nil
		m.input.Blur()
		if msg.err != nil {
			m.status = "failed"
			m.appendLine(errStyle.Render(msg.err.Error()))
		} else {
			m.status = "done"
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

		if m.pending != nil {
			if msg.Type == tea.KeyEnter {
				val := m.input.Value()
				m.appendLine(echoStyle.Render(m.pending.req.Prompt + val))
				m.pending.resp <- val
				m.pending = nil
				m.input.Blur()
				m.input.SetValue("")
				m.status = "running"
				return m, waitVMEvent(m.events)
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		case "r":
			if m.running {
				return m, nil
			}
			if m.cancel != nil {
				m.cancel()
			}
			m.lines = nil
			m.rebuildContent()
			m.status = "restarting"
			return m, startVM(m.app)
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "initializing..."
	}
	footer := statusStyle.Render(fmt.Sprintf("%s | %s", m.app.path, m.status))
	if m.pending != nil {
		footer = inputStyle.Render(m.pending.req.Prompt + m.input.View())
	} else if !m.running {
		footer += statusStyle.Render("  (r: rerun, q: quit)")
	}
	return m.viewport.View() + "\n" + footer
}

func (m *model) appendLine(line string) {
	m.lines = append(m.lines, line)
	m.rebuildContent()
}

func (m *model) rebuildContent() {
	content := strings.Join(m.lines, "\n")
	if content == "" {
		content = "(no output yet)"
	}
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}
