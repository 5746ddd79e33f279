package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilbergold/mentora/internal/cli/formatter"
	"github.com/emilbergold/mentora/internal/export"
	"github.com/emilbergold/mentora/internal/studio"
)

// hubView is the analysis hub shown once a transcript exists. From here
// the user launches module generation or runs the lighter analysis
// pipeline: summary, article ideas by category, full article draft.
// Every analysis failure renders inline; only module generation can
// move the session to the error phase, and that transition is owned by
// the appModel.
type hubView struct {
	state *SharedState
	spin  spinner.Model

	summarizing bool
	summary     *studio.Summary
	summaryErr  string

	ideasLoading bool
	ideaCategory studio.IdeaCategory
	ideas        []string
	ideaCursor   int
	ideasErr     string

	writing    bool
	idea       string
	article    string
	articleErr string
}

func newHubView(state *SharedState) *hubView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleBlue
	return &hubView{state: state, spin: sp}
}

func (v *hubView) Init() tea.Cmd { return v.spin.Tick }

func (v *hubView) busy() bool {
	return v.summarizing || v.ideasLoading || v.writing
}

func (v *hubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case summaryMsg:
		if !v.state.Session.StillCurrent(msg.gen) {
			return v, nil
		}
		v.summarizing = false
		if msg.err != nil {
			v.summaryErr = msg.err.Error()
			return v, nil
		}
		v.summary = msg.summary
		return v, nil

	case ideasMsg:
		if !v.state.Session.StillCurrent(msg.gen) {
			return v, nil
		}
		v.ideasLoading = false
		if msg.err != nil {
			v.ideasErr = msg.err.Error()
			return v, nil
		}
		v.ideaCategory = msg.category
		v.ideas = msg.ideas
		v.ideaCursor = 0
		return v, nil

	case articleMsg:
		if !v.state.Session.StillCurrent(msg.gen) {
			return v, nil
		}
		v.writing = false
		if msg.err != nil {
			v.articleErr = msg.err.Error()
			return v, nil
		}
		v.idea = msg.idea
		v.article = msg.article
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

func (v *hubView) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.busy() {
		return v, nil
	}

	switch msg.String() {
	case "g":
		return v.startGeneration()
	case "s":
		v.summarizing = true
		v.summaryErr = ""
		return v, tea.Batch(v.spin.Tick, summarizeCmd(v.state, v.state.Session.Transcript))
	case "i":
		return v.pickIdeaCategory()
	case "up", "k":
		if v.ideaCursor > 0 {
			v.ideaCursor--
		}
	case "down", "j":
		if v.ideaCursor < len(v.ideas)-1 {
			v.ideaCursor++
		}
	case "enter":
		return v.writeArticle()
	case "w":
		v.state.Session.ResetApp()
		return v, replaceView(newSelectView(v.state))
	}
	return v, nil
}

func (v *hubView) startGeneration() (tea.Model, tea.Cmd) {
	s := v.state.Session
	transcript := s.Transcript
	if err := s.StartGeneration(transcript); err != nil {
		return v, nil
	}
	return v, tea.Batch(
		replaceView(newGeneratingView(v.state, "Building your learning module…")),
		generateModuleCmd(v.state, transcript),
	)
}

// pickIdeaCategory pushes the category form; the pick starts the ideas
// call and the completion message lands back on this view.
func (v *hubView) pickIdeaCategory() (tea.Model, tea.Cmd) {
	if v.summary == nil {
		return v, nil
	}
	summary := v.summary.Quick
	picker := newIdeaCategoryView(v.state, func(category studio.IdeaCategory) tea.Cmd {
		v.ideasLoading = true
		v.ideasErr = ""
		v.ideas = nil
		v.article = ""
		v.articleErr = ""
		return tea.Batch(v.spin.Tick, ideasCmd(v.state, summary, category))
	})
	return v, pushView(picker)
}

func (v *hubView) writeArticle() (tea.Model, tea.Cmd) {
	if len(v.ideas) == 0 || v.ideaCursor >= len(v.ideas) {
		return v, nil
	}
	v.writing = true
	v.articleErr = ""
	idea := v.ideas[v.ideaCursor]
	return v, tea.Batch(v.spin.Tick, articleCmd(v.state, idea, v.state.Session.Transcript))
}

func (v *hubView) View() string {
	var b strings.Builder
	s := v.state.Session

	label := ""
	if s.Media != nil {
		label = s.Media.Label()
	}
	b.WriteString(formatter.Header("Analysis: "+label) + "\n\n")
	b.WriteString(formatter.Dim(transcriptPreview(s.Transcript, 240)) + "\n\n")

	fmt.Fprintf(&b, "%s generate learning module    %s summarize    %s new media\n",
		formatter.Accent("[g]"), formatter.Accent("[s]"), formatter.Accent("[w]"))

	if v.summarizing {
		b.WriteString("\n" + v.spin.View() + " Summarizing…")
	}
	if v.summaryErr != "" {
		b.WriteString("\n" + formatter.Bad(v.summaryErr))
	}
	if v.summary != nil {
		b.WriteString("\n\n" + formatter.StyleBold.Render("Quick summary") + "\n")
		b.WriteString(formatter.Wrap(v.summary.Quick, v.width()) + "\n")
		if v.summary.KeyConcepts != "" {
			b.WriteString("\n" + formatter.StyleBold.Render("Key concepts") + "\n")
			b.WriteString(formatter.Wrap(v.summary.KeyConcepts, v.width()) + "\n")
		}
		fmt.Fprintf(&b, "\n%s article ideas\n", formatter.Accent("[i]"))
	}

	if v.ideasLoading {
		b.WriteString("\n" + v.spin.View() + " Thinking up ideas…")
	}
	if v.ideasErr != "" {
		b.WriteString("\n" + formatter.Bad(v.ideasErr))
	}
	if len(v.ideas) > 0 {
		fmt.Fprintf(&b, "\n%s ideas (enter to draft):\n", string(v.ideaCategory))
		for i, idea := range v.ideas {
			cursor := "  "
			line := idea
			if i == v.ideaCursor {
				cursor = formatter.Accent("> ")
				line = formatter.StyleBold.Render(idea)
			}
			fmt.Fprintf(&b, "%s%s\n", cursor, line)
		}
	}

	if v.writing {
		b.WriteString("\n" + v.spin.View() + " Drafting article…")
	}
	if v.articleErr != "" {
		b.WriteString("\n" + formatter.Bad(v.articleErr))
	}
	if v.article != "" {
		b.WriteString("\n" + formatter.StyleBold.Render(v.idea) + "\n")
		b.WriteString(formatter.Wrap(v.article, v.width()) + "\n\n")
		b.WriteString(formatter.Dim("Open as a document: ") + formatter.Accent(export.ArticleDocURL(v.idea, v.article)))
	}

	return b.String()
}

func (v *hubView) width() int {
	if v.state.Width > 8 {
		return v.state.Width - 4
	}
	return 76
}

// transcriptPreview truncates the transcript at a rune boundary.
func transcriptPreview(s string, max int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max]) + "…"
}

func (v *hubView) ID() ViewID    { return ViewHub }
func (v *hubView) Title() string { return "analysis" }
func (v *hubView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "module")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "summary")),
		key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "ideas")),
		key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "new media")),
	}
}
