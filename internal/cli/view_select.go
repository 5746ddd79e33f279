package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilbergold/mentora/internal/cli/formatter"
	"github.com/emilbergold/mentora/internal/media"
)

// selectView is the entry screen: upload a local audio/video file or
// search for a remote video. Validation errors render inline and never
// change workflow state.
type selectView struct {
	state *SharedState

	choice  int // 0 = upload, 1 = search
	typing  bool
	input   textinput.Model
	errText string
}

func newSelectView(state *SharedState) *selectView {
	ti := textinput.New()
	ti.CharLimit = 512
	return &selectView{state: state, input: ti}
}

func (v *selectView) Init() tea.Cmd { return nil }

func (v *selectView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.typing {
		switch keyMsg.Type {
		case tea.KeyEsc:
			v.typing = false
			v.input.Blur()
			return v, nil
		case tea.KeyEnter:
			return v.submit()
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch keyMsg.String() {
	case "up", "k", "down", "j", "tab":
		v.choice = 1 - v.choice
	case "enter":
		v.typing = true
		v.errText = ""
		v.input.SetValue("")
		if v.choice == 0 {
			v.input.Placeholder = "path to an audio/video file (max 20 MB)"
		} else {
			v.input.Placeholder = "what do you want to learn about?"
		}
		return v, v.input.Focus()
	}
	return v, nil
}

func (v *selectView) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(v.input.Value())
	if value == "" {
		return v, nil
	}
	v.typing = false
	v.input.Blur()

	if v.choice == 1 {
		return v, pushView(newSearchView(v.state, value))
	}

	file, err := media.SelectFile(value)
	if err != nil {
		v.errText = err.Error()
		return v, nil
	}
	if err := v.state.Session.SelectMedia(file); err != nil {
		v.errText = err.Error()
		return v, nil
	}
	return v, tea.Batch(
		replaceView(newGeneratingView(v.state, "Transcribing "+file.Label()+"…")),
		transcribeFileCmd(v.state, file),
	)
}

func (v *selectView) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("What would you like to study?") + "\n\n")

	options := []string{"Upload an audio or video file", "Search for a video"}
	for i, opt := range options {
		cursor := "  "
		line := opt
		if i == v.choice {
			cursor = formatter.Accent("> ")
			line = formatter.StyleBold.Render(opt)
		}
		fmt.Fprintf(&b, "%s%s\n", cursor, line)
	}

	if v.typing {
		b.WriteString("\n" + v.input.View())
	}
	if v.errText != "" {
		b.WriteString("\n" + formatter.Bad(v.errText))
	}
	return b.String()
}

func (v *selectView) ID() ViewID    { return ViewSelect }
func (v *selectView) Title() string { return "select media" }
func (v *selectView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "choose")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	}
}
