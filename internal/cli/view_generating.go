package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilbergold/mentora/internal/cli/formatter"
)

// generatingView shows a spinner while an external call is in flight.
// The appModel swaps it out when the completion message arrives.
type generatingView struct {
	state *SharedState
	label string
	spin  spinner.Model
}

func newGeneratingView(state *SharedState, label string) *generatingView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleBlue
	return &generatingView{state: state, label: label, spin: sp}
}

func (v *generatingView) Init() tea.Cmd { return v.spin.Tick }

func (v *generatingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	v.spin, cmd = v.spin.Update(msg)
	return v, cmd
}

func (v *generatingView) View() string {
	return v.spin.View() + " " + v.label
}

func (v *generatingView) ID() ViewID               { return ViewGenerating }
func (v *generatingView) Title() string            { return "working" }
func (v *generatingView) ShortHelp() []key.Binding { return nil }
