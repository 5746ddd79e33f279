package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilbergold/mentora/internal/cli/formatter"
)

// errorView is the terminal failure screen for module generation. The
// only way forward is a reset: r keeps the media and transcript, R
// wipes everything.
type errorView struct {
	state *SharedState
}

func newErrorView(state *SharedState) *errorView {
	return &errorView{state: state}
}

func (v *errorView) Init() tea.Cmd { return nil }

func (v *errorView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch keyMsg.String() {
	case "r":
		v.state.Session.ResetModule()
		if v.state.Session.Transcript != "" {
			return v, replaceView(newHubView(v.state))
		}
		return v, replaceView(newSelectView(v.state))
	case "R":
		v.state.Session.ResetApp()
		return v, replaceView(newSelectView(v.state))
	}
	return v, nil
}

func (v *errorView) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Something went wrong") + "\n\n")

	if err := v.state.Session.Err; err != nil {
		b.WriteString(formatter.Bad(err.Error()) + "\n\n")
	}
	b.WriteString(formatter.Dim("The module could not be generated. Your media and transcript are kept.") + "\n\n")
	b.WriteString(formatter.Accent("[r]") + " try again    " + formatter.Accent("[R]") + " start over\n")
	return b.String()
}

func (v *errorView) ID() ViewID    { return ViewError }
func (v *errorView) Title() string { return "error" }
func (v *errorView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "try again")),
		key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "start over")),
	}
}
