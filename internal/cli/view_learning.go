package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilbergold/mentora/internal/cli/formatter"
	"github.com/emilbergold/mentora/internal/studio"
)

// learningView walks the module one concept chapter at a time. Within a
// chapter the user answers the quiz, flips flashcards, works the
// problem-solving challenge, and can request an on-demand illustration.
// Quiz answers are recorded on the session; everything else is local
// presentation state that survives chapter navigation.
type learningView struct {
	state *SharedState
	spin  spinner.Model

	// quiz: per concept, the revealed short-answer awaiting self-report.
	revealed map[int]int // concept index → question index, -1 when none

	// flashcards
	cardIdx map[int]int
	flipped map[string]bool // "concept:card" → flipped

	// challenge
	solving    bool
	solution   textinput.Model
	evaluating map[int]bool
	feedback   map[int]string
	challErr   map[int]string

	// illustrations
	imageLoading map[int]bool
	imageReady   map[int]bool
	imageErr     map[int]string
}

func newLearningView(state *SharedState) *learningView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleBlue

	ti := textinput.New()
	ti.Placeholder = "your solution"
	ti.CharLimit = 1024

	return &learningView{
		state:        state,
		spin:         sp,
		revealed:     map[int]int{},
		cardIdx:      map[int]int{},
		flipped:      map[string]bool{},
		solution:     ti,
		evaluating:   map[int]bool{},
		feedback:     map[int]string{},
		challErr:     map[int]string{},
		imageLoading: map[int]bool{},
		imageReady:   map[int]bool{},
		imageErr:     map[int]string{},
	}
}

func (v *learningView) Init() tea.Cmd { return v.spin.Tick }

func (v *learningView) concept() (int, *studio.Concept) {
	s := v.state.Session
	if s.Module == nil || s.ConceptIndex >= len(s.Module.Concepts) {
		return 0, nil
	}
	return s.ConceptIndex, &s.Module.Concepts[s.ConceptIndex]
}

// currentQuestion returns the first unanswered quiz question, or -1
// when the chapter's quiz is complete.
func (v *learningView) currentQuestion(ci int, c *studio.Concept) int {
	for qi := range c.Quiz {
		if _, ok := v.state.Session.AnswerFor(ci, qi); !ok {
			return qi
		}
	}
	return -1
}

func (v *learningView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case feedbackMsg:
		if !v.state.Session.StillCurrent(msg.gen) {
			return v, nil
		}
		v.evaluating[msg.concept] = false
		if msg.err != nil {
			v.challErr[msg.concept] = msg.err.Error()
			return v, nil
		}
		v.feedback[msg.concept] = msg.feedback
		return v, nil

	case conceptImageMsg:
		if !v.state.Session.StillCurrent(msg.gen) {
			return v, nil
		}
		v.imageLoading[msg.concept] = false
		if msg.err != nil {
			v.imageErr[msg.concept] = msg.err.Error()
			return v, nil
		}
		v.imageReady[msg.concept] = true
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

func (v *learningView) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ci, c := v.concept()
	if c == nil {
		return v, nil
	}

	if v.solving {
		switch msg.Type {
		case tea.KeyEsc:
			v.solving = false
			v.solution.Blur()
			return v, nil
		case tea.KeyEnter:
			return v.submitSolution(ci, c)
		}
		var cmd tea.Cmd
		v.solution, cmd = v.solution.Update(msg)
		return v, cmd
	}

	// A revealed short answer waits for the self-report before anything
	// else in the chapter responds.
	if qi, ok := v.revealed[ci]; ok && qi >= 0 {
		switch msg.String() {
		case "y":
			v.state.Session.RecordAnswer(ci, qi, c.Quiz[qi].Answer, true)
			v.revealed[ci] = -1
		case "n":
			v.state.Session.RecordAnswer(ci, qi, "", false)
			v.revealed[ci] = -1
		}
		return v, nil
	}

	switch msg.String() {
	case "n", "right":
		v.state.Session.Next()
	case "p", "left":
		v.state.Session.Prev()
	case "f":
		return v.finish(ci)
	case "1", "2", "3", "4":
		v.answer(ci, c, int(msg.String()[0]-'1'))
	case "enter":
		if qi := v.currentQuestion(ci, c); qi >= 0 && c.Quiz[qi].ShortAnswer() {
			v.revealed[ci] = qi
		}
	case " ":
		cardKey := fmt.Sprintf("%d:%d", ci, v.cardIdx[ci])
		v.flipped[cardKey] = !v.flipped[cardKey]
	case "]":
		if v.cardIdx[ci] < len(c.Flashcards)-1 {
			v.cardIdx[ci]++
		}
	case "[":
		if v.cardIdx[ci] > 0 {
			v.cardIdx[ci]--
		}
	case "c":
		if c.Challenge.Scenario != "" && !v.evaluating[ci] {
			v.solving = true
			v.challErr[ci] = ""
			v.solution.SetValue("")
			return v, v.solution.Focus()
		}
	case "m":
		return v.requestImage(ci, c)
	}
	return v, nil
}

// answer records a multiple-choice pick. Correctness is a local string
// comparison against the generated answer key.
func (v *learningView) answer(ci int, c *studio.Concept, option int) {
	qi := v.currentQuestion(ci, c)
	if qi < 0 {
		return
	}
	q := c.Quiz[qi]
	if q.ShortAnswer() || option >= len(q.Options) {
		return
	}
	selected := q.Options[option]
	v.state.Session.RecordAnswer(ci, qi, selected, selected == q.Answer)
}

func (v *learningView) submitSolution(ci int, c *studio.Concept) (tea.Model, tea.Cmd) {
	solution := strings.TrimSpace(v.solution.Value())
	if solution == "" {
		return v, nil
	}
	v.solving = false
	v.solution.Blur()
	v.evaluating[ci] = true
	return v, tea.Batch(v.spin.Tick, evaluateCmd(v.state, ci, c.Title, c.Challenge, solution))
}

func (v *learningView) requestImage(ci int, c *studio.Concept) (tea.Model, tea.Cmd) {
	if c.ImagePrompt == "" || v.imageLoading[ci] || v.imageReady[ci] {
		return v, nil
	}
	v.imageLoading[ci] = true
	v.imageErr[ci] = ""
	return v, tea.Batch(v.spin.Tick, conceptImageCmd(v.state, ci, c.ImagePrompt))
}

func (v *learningView) finish(ci int) (tea.Model, tea.Cmd) {
	s := v.state.Session
	if ci != len(s.Module.Concepts)-1 {
		return v, nil
	}
	if err := s.Finish(); err != nil {
		return v, nil
	}
	return v, replaceView(newResultsView(v.state))
}

func (v *learningView) View() string {
	ci, c := v.concept()
	if c == nil {
		return formatter.Dim("No module loaded.")
	}
	s := v.state.Session
	total := len(s.Module.Concepts)
	width := v.width()

	var b strings.Builder
	b.WriteString(formatter.ConceptHeader(ci, total, c.Title) + "\n\n")

	if c.StoryScene != "" {
		b.WriteString(formatter.StylePurple.Render(formatter.Wrap(c.StoryScene, width)) + "\n\n")
	}
	if c.Narration != "" {
		b.WriteString(formatter.Wrap(c.Narration, width) + "\n\n")
	} else {
		b.WriteString(formatter.Wrap(c.Summary, width) + "\n\n")
	}

	v.renderImage(&b, ci, c)
	v.renderQuiz(&b, ci, c)
	v.renderCards(&b, ci, c)
	v.renderChallenge(&b, ci, c)

	if ci == total-1 && v.quizComplete(ci, c) {
		b.WriteString("\n" + formatter.Good("Last chapter done. Press f to see your results."))
	}
	return b.String()
}

func (v *learningView) quizComplete(ci int, c *studio.Concept) bool {
	return v.currentQuestion(ci, c) == -1
}

func (v *learningView) renderImage(b *strings.Builder, ci int, c *studio.Concept) {
	if c.ImagePrompt == "" {
		return
	}
	switch {
	case v.imageLoading[ci]:
		b.WriteString(v.spin.View() + " Illustrating…\n\n")
	case v.imageReady[ci]:
		b.WriteString(formatter.Dim("[illustration: "+c.ImagePrompt+"]") + "\n\n")
	case v.imageErr[ci] != "":
		b.WriteString(formatter.Bad("illustration failed: "+v.imageErr[ci]) + "\n\n")
	default:
		b.WriteString(formatter.Dim("(m to illustrate this concept)") + "\n\n")
	}
}

func (v *learningView) renderQuiz(b *strings.Builder, ci int, c *studio.Concept) {
	if len(c.Quiz) == 0 {
		return
	}
	b.WriteString(formatter.StyleBold.Render("Quiz") + "\n")

	current := v.currentQuestion(ci, c)
	for qi, q := range c.Quiz {
		if answer, ok := v.state.Session.AnswerFor(ci, qi); ok {
			b.WriteString(formatter.QuizQuestion(q, qi+1, &answer) + "\n")
			continue
		}
		if qi != current {
			fmt.Fprintf(b, "%s\n", formatter.Dim(fmt.Sprintf("Q%d. (locked)", qi+1)))
			continue
		}
		if revealedQ, ok := v.revealed[ci]; ok && revealedQ == qi {
			fmt.Fprintf(b, "%s %s\n", formatter.StyleBold.Render(fmt.Sprintf("Q%d.", qi+1)), q.Question)
			fmt.Fprintf(b, "  Answer: %s\n", formatter.Accent(q.Answer))
			b.WriteString(formatter.Dim("  Did you have it? y/n") + "\n")
			continue
		}
		b.WriteString(formatter.QuizQuestion(q, qi+1, nil) + "\n")
	}
	b.WriteByte('\n')
}

func (v *learningView) renderCards(b *strings.Builder, ci int, c *studio.Concept) {
	if len(c.Flashcards) == 0 {
		return
	}
	idx := v.cardIdx[ci]
	if idx >= len(c.Flashcards) {
		idx = 0
	}
	cardKey := fmt.Sprintf("%d:%d", ci, idx)
	fmt.Fprintf(b, "%s %s\n", formatter.StyleBold.Render("Flashcards"),
		formatter.Dim(fmt.Sprintf("(%d/%d)", idx+1, len(c.Flashcards))))
	b.WriteString(formatter.Flashcard(c.Flashcards[idx], v.flipped[cardKey]) + "\n\n")
}

func (v *learningView) renderChallenge(b *strings.Builder, ci int, c *studio.Concept) {
	if c.Challenge.Scenario == "" {
		return
	}
	b.WriteString(formatter.StyleBold.Render("Challenge") + "\n")
	b.WriteString(formatter.Wrap(c.Challenge.Scenario, v.width()) + "\n")
	b.WriteString(formatter.Accent("Task: ") + c.Challenge.Task + "\n")

	switch {
	case v.solving:
		b.WriteString(v.solution.View() + "\n")
	case v.evaluating[ci]:
		b.WriteString(v.spin.View() + " Evaluating your solution…\n")
	case v.feedback[ci] != "":
		b.WriteString(formatter.Good("Feedback:") + "\n" + formatter.Wrap(v.feedback[ci], v.width()) + "\n")
	case v.challErr[ci] != "":
		b.WriteString(formatter.Bad(v.challErr[ci]) + "\n")
	default:
		b.WriteString(formatter.Dim("(c to attempt the challenge)") + "\n")
	}
}

func (v *learningView) width() int {
	if v.state.Width > 8 {
		return v.state.Width - 4
	}
	return 76
}

func (v *learningView) ID() ViewID    { return ViewLearning }
func (v *learningView) Title() string { return "learning" }
func (v *learningView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "answer")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "flip card")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "challenge")),
		key.NewBinding(key.WithKeys("n", "p"), key.WithHelp("n/p", "chapter")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "finish")),
	}
}
