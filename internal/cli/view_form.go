package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/emilbergold/mentora/internal/cli/formatter"
	"github.com/emilbergold/mentora/internal/studio"
)

// mentoraHuhTheme styles huh forms to match the rest of the TUI.
func mentoraHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// formView wraps a huh.Form as a View on the navigation stack. When the
// form completes or is cancelled the view pops itself; on completion it
// also runs the done callback, whose message lands on the view below.
type formView struct {
	state    *SharedState
	form     *huh.Form
	titleStr string
	done     func() tea.Cmd
}

func newFormView(state *SharedState, title string, form *huh.Form, done func() tea.Cmd) *formView {
	return &formView{state: state, form: form, titleStr: title, done: done}
}

func (v *formView) Init() tea.Cmd { return v.form.Init() }

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, popView()
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		var doneCmd tea.Cmd
		if v.done != nil {
			doneCmd = v.done()
		}
		return v, tea.Batch(popView(), doneCmd)
	}

	return v, cmd
}

func (v *formView) View() string { return v.form.View() }

func (v *formView) ID() ViewID    { return ViewForm }
func (v *formView) Title() string { return v.titleStr }
func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// newIdeaCategoryView builds the article-idea category picker.
func newIdeaCategoryView(state *SharedState, onPick func(studio.IdeaCategory) tea.Cmd) *formView {
	category := studio.CategoryProfessional

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[studio.IdeaCategory]().
				Title("What kind of article?").
				Options(
					huh.NewOption("Professional", studio.CategoryProfessional),
					huh.NewOption("Casual Blog", studio.CategoryCasualBlog),
					huh.NewOption("Educational", studio.CategoryEducational),
				).
				Value(&category),
		),
	).WithTheme(mentoraHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return onPick(category)
	}
	return newFormView(state, "article ideas", form, done)
}
