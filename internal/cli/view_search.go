package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilbergold/mentora/internal/cli/formatter"
	"github.com/emilbergold/mentora/internal/media"
)

// searchView runs a grounded video search and lets the user pick one
// result as the study source.
type searchView struct {
	state *SharedState
	query string

	loading bool
	spin    spinner.Model
	videos  []media.Video
	cursor  int
	errText string
}

func newSearchView(state *SharedState, query string) *searchView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleBlue
	return &searchView{state: state, query: query, loading: true, spin: sp}
}

func (v *searchView) Init() tea.Cmd {
	return tea.Batch(v.spin.Tick, searchCmd(v.state, v.query))
}

func (v *searchView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case searchResultsMsg:
		if !v.state.Session.StillCurrent(msg.gen) {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		v.videos = msg.videos
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, popView()
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.videos)-1 {
				v.cursor++
			}
		case "enter":
			return v.pick()
		}
	}
	return v, nil
}

func (v *searchView) pick() (tea.Model, tea.Cmd) {
	if v.loading || v.cursor >= len(v.videos) {
		return v, nil
	}
	video := v.videos[v.cursor]
	if err := v.state.Session.SelectMedia(video); err != nil {
		v.errText = err.Error()
		return v, nil
	}
	return v, tea.Batch(
		replaceView(newGeneratingView(v.state, "Preparing a transcript for "+video.Title+"…")),
		transcribeVideoCmd(v.state, video),
	)
}

func (v *searchView) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Videos for: "+v.query) + "\n\n")

	switch {
	case v.loading:
		b.WriteString(v.spin.View() + " Searching…")
	case v.errText != "":
		b.WriteString(formatter.Bad(v.errText))
	case len(v.videos) == 0:
		b.WriteString(formatter.Dim("No videos found."))
	default:
		for i, video := range v.videos {
			cursor := "  "
			title := video.Title
			if i == v.cursor {
				cursor = formatter.Accent("> ")
				title = formatter.StyleBold.Render(title)
			}
			fmt.Fprintf(&b, "%s%s\n", cursor, title)
			fmt.Fprintf(&b, "    %s\n", formatter.Dim(video.Channel+" · "+video.WatchURL()))
		}
	}
	return b.String()
}

func (v *searchView) ID() ViewID    { return ViewSearch }
func (v *searchView) Title() string { return "video search" }
func (v *searchView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "choose")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "study this")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}
