package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilbergold/mentora/internal/cli/formatter"
	"github.com/emilbergold/mentora/internal/session"
)

// appModel is the root bubbletea Model for the TUI. It owns the view
// stack and routes workflow-level completion messages; everything else
// is forwarded to the active view.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		App:     app,
		Session: session.New(),
	}
	m := appModel{state: state}
	m.viewStack = []View{newSelectView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		return m.forward(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case transcriptReadyMsg:
		return m.onTranscriptReady(msg)

	case moduleReadyMsg:
		return m.onModuleReady(msg)
	}

	return m.forward(msg)
}

// onTranscriptReady applies a transcription completion to the session
// and moves to the analysis hub. Stale completions are dropped.
func (m appModel) onTranscriptReady(msg transcriptReadyMsg) (tea.Model, tea.Cmd) {
	if !m.state.Session.StillCurrent(msg.gen) {
		return m, nil
	}
	if msg.err != nil {
		// Transcription failure is inline: back to media selection
		// with the error shown next to the triggering control.
		sel := newSelectView(m.state)
		sel.errText = msg.err.Error()
		m.viewStack = []View{sel}
		return m, nil
	}
	m.state.Session.SetTranscript(msg.text)
	m.viewStack = []View{newHubView(m.state)}
	return m, nil
}

// onModuleReady applies the one-shot module generation result. Failures
// here are terminal: the session moves to the error phase and the whole
// workflow requires a reset.
func (m appModel) onModuleReady(msg moduleReadyMsg) (tea.Model, tea.Cmd) {
	s := m.state.Session
	if !s.StillCurrent(msg.gen) {
		return m, nil
	}
	if s.Phase != session.PhaseGenerating {
		return m, nil
	}

	if msg.err != nil {
		if err := s.GenerationFailed(msg.err); err != nil {
			return m, nil
		}
		m.viewStack = []View{newErrorView(m.state)}
		return m, nil
	}

	if err := s.ModuleReady(msg.module); err != nil {
		return m, nil
	}
	if s.Phase == session.PhaseError {
		m.viewStack = []View{newErrorView(m.state)}
		return m, nil
	}

	pre := newPreModuleView(m.state)
	m.viewStack = []View{pre}
	return m, tea.Batch(pre.Init(), visualImagesCmd(m.state, s.Module.VisualTask))
}

// forward sends a message to the active view.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	v := m.activeView()
	if v == nil {
		return m, nil
	}
	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	v := m.activeView()
	if v == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Dim("mentora · "+v.Title()) + "\n\n")
	b.WriteString(v.View())
	b.WriteString("\n\n" + helpBar(v.ShortHelp()))
	return b.String()
}

func helpBar(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings)+1)
	for _, kb := range bindings {
		parts = append(parts, fmt.Sprintf("%s %s", kb.Help().Key, kb.Help().Desc))
	}
	parts = append(parts, "ctrl+c quit")
	return formatter.Dim(strings.Join(parts, " · "))
}

// Run starts the TUI.
func Run(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
