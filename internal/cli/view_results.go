package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilbergold/mentora/internal/cli/formatter"
	"github.com/emilbergold/mentora/internal/export"
)

// resultsView shows the final score and earned badges, and offers the
// study-notes export plus the two reset paths.
type resultsView struct {
	state *SharedState

	exportedTo string
	exportErr  string
}

func newResultsView(state *SharedState) *resultsView {
	return &resultsView{state: state}
}

func (v *resultsView) Init() tea.Cmd { return nil }

func (v *resultsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "e":
		path := notesFilename(v.state)
		if err := export.WriteStudyNotes(v.state.Session, path); err != nil {
			v.exportErr = err.Error()
			v.exportedTo = ""
		} else {
			v.exportedTo = path
			v.exportErr = ""
		}
	case "r":
		v.state.Session.ResetModule()
		return v, replaceView(newHubView(v.state))
	case "R":
		v.state.Session.ResetApp()
		return v, replaceView(newSelectView(v.state))
	}
	return v, nil
}

// notesFilename derives a filesystem-safe name from the media label.
func notesFilename(state *SharedState) string {
	label := "module"
	if state.Session.Media != nil {
		label = state.Session.Media.Label()
	}
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '.':
			b.WriteByte('-')
		}
	}
	name := strings.Trim(b.String(), "-")
	if name == "" {
		name = "module"
	}
	return "study-notes-" + name + ".txt"
}

func (v *resultsView) View() string {
	var b strings.Builder
	s := v.state.Session

	b.WriteString(formatter.Header("Module complete!") + "\n\n")
	b.WriteString(formatter.ScoreLine(s.ComputeScore()) + "\n")

	if s.Module != nil {
		var badges []string
		for _, c := range s.Module.Concepts {
			if c.Badge.Name != "" {
				badges = append(badges, c.Badge.Name)
			}
		}
		if len(badges) > 0 {
			b.WriteString("\n" + formatter.StyleBold.Render("Badges earned") + "\n")
			for _, name := range badges {
				fmt.Fprintf(&b, "  %s %s\n", formatter.StyleYellow.Render("★"), name)
			}
		}
	}

	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s export study notes    %s study this again    %s new media\n",
		formatter.Accent("[e]"), formatter.Accent("[r]"), formatter.Accent("[R]"))

	if v.exportedTo != "" {
		b.WriteString("\n" + formatter.Good("Notes saved to "+v.exportedTo))
	}
	if v.exportErr != "" {
		b.WriteString("\n" + formatter.Bad(v.exportErr))
	}
	return b.String()
}

func (v *resultsView) ID() ViewID    { return ViewResults }
func (v *resultsView) Title() string { return "results" }
func (v *resultsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "again")),
		key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "start over")),
	}
}
