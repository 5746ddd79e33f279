package cli

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilbergold/mentora/internal/cli/formatter"
	"github.com/emilbergold/mentora/internal/studio"
)

// preModuleView shows the module's simple summary and gates the start
// of learning behind a warm-up: match each key term to the generated
// illustration it belongs to. Illustrations arrive one by one while
// the view is on screen; a failed illustration unlocks the skip path
// so a rate-limited image provider never blocks the module.
type preModuleView struct {
	state *SharedState
	spin  spinner.Model

	items []studio.VisualTaskItem

	// order maps display slot → item index, shuffled once.
	order  []int
	images []studio.SequenceResult
	loaded bool

	termCursor int
	matched    map[int]bool // item index → matched
	missText   string
}

func newPreModuleView(state *SharedState) *preModuleView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleBlue

	var items []studio.VisualTaskItem
	if state.Session.Module != nil {
		items = state.Session.Module.VisualTask
	}
	order := rand.Perm(len(items))

	return &preModuleView{
		state:   state,
		spin:    sp,
		items:   items,
		order:   order,
		matched: map[int]bool{},
	}
}

func (v *preModuleView) Init() tea.Cmd { return v.spin.Tick }

func (v *preModuleView) allMatched() bool {
	return len(v.matched) == len(v.items) && len(v.items) > 0
}

func (v *preModuleView) anyImageFailed() bool {
	for _, r := range v.images {
		if r.Err != nil {
			return true
		}
	}
	return false
}

func (v *preModuleView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case visualImagesMsg:
		if !v.state.Session.StillCurrent(msg.gen) {
			return v, nil
		}
		v.images = msg.results
		v.loaded = true
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v.onKey(msg)
	}
	return v, nil
}

func (v *preModuleView) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.termCursor > 0 {
			v.termCursor--
		}
	case "down", "j":
		if v.termCursor < len(v.items)-1 {
			v.termCursor++
		}
	case "1", "2", "3":
		v.tryMatch(int(msg.String()[0] - '1'))
	case "s":
		// Skip is available only when an illustration failed to load.
		if v.loaded && v.anyImageFailed() {
			return v.begin()
		}
	case "enter":
		if v.allMatched() {
			return v.begin()
		}
	}
	return v, nil
}

func (v *preModuleView) tryMatch(slot int) {
	if slot < 0 || slot >= len(v.order) || v.termCursor >= len(v.items) {
		return
	}
	if v.matched[v.termCursor] {
		return
	}
	if v.order[slot] == v.termCursor {
		v.matched[v.termCursor] = true
		v.missText = ""
		// Move the cursor to the next unmatched term.
		for i := range v.items {
			if !v.matched[i] {
				v.termCursor = i
				break
			}
		}
	} else {
		v.missText = "Not that one. Try another illustration."
	}
}

func (v *preModuleView) begin() (tea.Model, tea.Cmd) {
	if err := v.state.Session.StartModule(); err != nil {
		return v, nil
	}
	return v, replaceView(newLearningView(v.state))
}

func (v *preModuleView) View() string {
	var b strings.Builder
	s := v.state.Session

	b.WriteString(formatter.Header("Before you start") + "\n\n")
	if s.Module != nil {
		b.WriteString(formatter.Wrap(s.Module.SimpleSummary, v.width()) + "\n\n")
	}

	b.WriteString(formatter.StyleBold.Render("Warm-up: match each term to its illustration") + "\n\n")

	for i, item := range v.items {
		cursor := "  "
		line := item.Term
		switch {
		case v.matched[i]:
			line = formatter.Good("✓ " + item.Term)
		case i == v.termCursor:
			cursor = formatter.Accent("> ")
			line = formatter.StyleBold.Render(item.Term)
		}
		fmt.Fprintf(&b, "%s%s\n", cursor, line)
	}
	b.WriteByte('\n')

	if !v.loaded {
		b.WriteString(v.spin.View() + " Generating illustrations…\n")
	} else {
		for slot, itemIdx := range v.order {
			status := formatter.Dim("(no illustration)")
			if itemIdx < len(v.images) {
				r := v.images[itemIdx]
				if r.Err != nil {
					status = formatter.Bad("failed: " + r.Err.Error())
				} else if r.Image != nil {
					status = formatter.Dim(r.Prompt)
				}
			}
			fmt.Fprintf(&b, "%s %s\n", formatter.Accent(fmt.Sprintf("[%d]", slot+1)), status)
		}
	}

	if v.missText != "" {
		b.WriteString("\n" + formatter.Bad(v.missText))
	}
	if v.allMatched() {
		b.WriteString("\n" + formatter.Good("All matched! Press enter to begin."))
	} else if v.loaded && v.anyImageFailed() {
		b.WriteString("\n" + formatter.Dim("Some illustrations failed; press s to skip the warm-up."))
	}
	return b.String()
}

func (v *preModuleView) width() int {
	if v.state.Width > 8 {
		return v.state.Width - 4
	}
	return 76
}

func (v *preModuleView) ID() ViewID    { return ViewPreModule }
func (v *preModuleView) Title() string { return "warm-up" }
func (v *preModuleView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "term")),
		key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "match")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "begin")),
	}
}
