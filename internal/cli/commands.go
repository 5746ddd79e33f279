package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilbergold/mentora/internal/media"
	"github.com/emilbergold/mentora/internal/studio"
)

// Completion messages for asynchronous service calls. Every message
// carries the session generation at the time the call was issued; the
// appModel drops completions whose generation is stale, so resets and
// media changes never have their results applied late. In-flight calls
// are not cancelled, only ignored.

type transcriptReadyMsg struct {
	gen  int
	text string
	err  error
}

type moduleReadyMsg struct {
	gen    int
	module *studio.ModuleData
	err    error
}

type searchResultsMsg struct {
	gen    int
	videos []media.Video
	err    error
}

type visualImagesMsg struct {
	gen     int
	results []studio.SequenceResult
}

type summaryMsg struct {
	gen     int
	summary *studio.Summary
	err     error
}

type ideasMsg struct {
	gen      int
	category studio.IdeaCategory
	ideas    []string
	err      error
}

type articleMsg struct {
	gen     int
	idea    string
	article string
	err     error
}

type feedbackMsg struct {
	gen      int
	concept  int
	feedback string
	err      error
}

type conceptImageMsg struct {
	gen     int
	concept int
	data    string // base64 image payload
	err     error
}

func transcribeFileCmd(state *SharedState, file media.File) tea.Cmd {
	gen := state.Session.Generation
	return func() tea.Msg {
		text, err := state.App.Transcribe.TranscribeFile(context.Background(), file)
		return transcriptReadyMsg{gen: gen, text: text, err: err}
	}
}

func transcribeVideoCmd(state *SharedState, ref media.Video) tea.Cmd {
	gen := state.Session.Generation
	return func() tea.Msg {
		text, err := state.App.Transcribe.TranscribeVideo(context.Background(), ref)
		return transcriptReadyMsg{gen: gen, text: text, err: err}
	}
}

func generateModuleCmd(state *SharedState, transcript string) tea.Cmd {
	gen := state.Session.Generation
	return func() tea.Msg {
		module, err := state.App.Modules.Generate(context.Background(), transcript)
		return moduleReadyMsg{gen: gen, module: module, err: err}
	}
}

func searchCmd(state *SharedState, query string) tea.Cmd {
	gen := state.Session.Generation
	return func() tea.Msg {
		videos, err := state.App.Search.Search(context.Background(), query)
		return searchResultsMsg{gen: gen, videos: videos, err: err}
	}
}

// visualImagesCmd fetches the visual-task images one prompt at a time;
// GenerateSequence awaits each image before issuing the next to respect
// the provider rate limit.
func visualImagesCmd(state *SharedState, items []studio.VisualTaskItem) tea.Cmd {
	gen := state.Session.Generation
	prompts := make([]string, len(items))
	for i, item := range items {
		prompts[i] = item.ImagePrompt
	}
	return func() tea.Msg {
		results := state.App.Images.GenerateSequence(context.Background(), prompts)
		return visualImagesMsg{gen: gen, results: results}
	}
}

func summarizeCmd(state *SharedState, transcript string) tea.Cmd {
	gen := state.Session.Generation
	return func() tea.Msg {
		summary, err := state.App.Summaries.Summarize(context.Background(), transcript)
		return summaryMsg{gen: gen, summary: summary, err: err}
	}
}

func ideasCmd(state *SharedState, summary string, category studio.IdeaCategory) tea.Cmd {
	gen := state.Session.Generation
	return func() tea.Msg {
		ideas, err := state.App.Summaries.GenerateIdeas(context.Background(), summary, category)
		return ideasMsg{gen: gen, category: category, ideas: ideas, err: err}
	}
}

func articleCmd(state *SharedState, idea, transcript string) tea.Cmd {
	gen := state.Session.Generation
	return func() tea.Msg {
		article, err := state.App.Summaries.WriteArticle(context.Background(), idea, transcript)
		return articleMsg{gen: gen, idea: idea, article: article, err: err}
	}
}

func evaluateCmd(state *SharedState, conceptIdx int, title string, challenge studio.Challenge, solution string) tea.Cmd {
	gen := state.Session.Generation
	return func() tea.Msg {
		feedback, err := state.App.Challenges.Evaluate(context.Background(), title, challenge, solution)
		return feedbackMsg{gen: gen, concept: conceptIdx, feedback: feedback, err: err}
	}
}

func conceptImageCmd(state *SharedState, conceptIdx int, prompt string) tea.Cmd {
	gen := state.Session.Generation
	return func() tea.Msg {
		img, err := state.App.Images.Generate(context.Background(), prompt)
		msg := conceptImageMsg{gen: gen, concept: conceptIdx, err: err}
		if img != nil {
			msg.data = img.Data
		}
		return msg
	}
}
