package cli

import (
	"context"
	"testing"

	"github.com/emilbergold/mentora/internal/genai"
	"github.com/emilbergold/mentora/internal/media"
	"github.com/emilbergold/mentora/internal/studio"
)

// Service fakes with overridable function fields. Zero-value fakes
// return empty results.

type fakeTranscribe struct {
	file  func(media.File) (string, error)
	video func(media.Video) (string, error)
}

func (f *fakeTranscribe) TranscribeFile(_ context.Context, file media.File) (string, error) {
	if f.file != nil {
		return f.file(file)
	}
	return "", nil
}

func (f *fakeTranscribe) TranscribeVideo(_ context.Context, ref media.Video) (string, error) {
	if f.video != nil {
		return f.video(ref)
	}
	return "", nil
}

type fakeModules struct {
	generate func(string) (*studio.ModuleData, error)
}

func (f *fakeModules) Generate(_ context.Context, transcript string) (*studio.ModuleData, error) {
	if f.generate != nil {
		return f.generate(transcript)
	}
	return &studio.ModuleData{}, nil
}

type fakeSummaries struct {
	summarize func(string) (*studio.Summary, error)
	ideas     func(string, studio.IdeaCategory) ([]string, error)
	article   func(string, string) (string, error)
}

func (f *fakeSummaries) Summarize(_ context.Context, transcript string) (*studio.Summary, error) {
	if f.summarize != nil {
		return f.summarize(transcript)
	}
	return &studio.Summary{}, nil
}

func (f *fakeSummaries) GenerateIdeas(_ context.Context, summary string, c studio.IdeaCategory) ([]string, error) {
	if f.ideas != nil {
		return f.ideas(summary, c)
	}
	return nil, nil
}

func (f *fakeSummaries) WriteArticle(_ context.Context, idea, transcript string) (string, error) {
	if f.article != nil {
		return f.article(idea, transcript)
	}
	return "", nil
}

type fakeChallenges struct {
	evaluate func(string, studio.Challenge, string) (string, error)
}

func (f *fakeChallenges) Evaluate(_ context.Context, title string, ch studio.Challenge, solution string) (string, error) {
	if f.evaluate != nil {
		return f.evaluate(title, ch, solution)
	}
	return "", nil
}

type fakeImages struct {
	generate func(string) (*genai.ImageResponse, error)
	sequence func([]string) []studio.SequenceResult
}

func (f *fakeImages) Generate(_ context.Context, prompt string) (*genai.ImageResponse, error) {
	if f.generate != nil {
		return f.generate(prompt)
	}
	return &genai.ImageResponse{Data: "aGVsbG8=", MIMEType: "image/png"}, nil
}

func (f *fakeImages) GenerateSequence(_ context.Context, prompts []string) []studio.SequenceResult {
	if f.sequence != nil {
		return f.sequence(prompts)
	}
	results := make([]studio.SequenceResult, len(prompts))
	for i, p := range prompts {
		results[i] = studio.SequenceResult{Prompt: p, Image: &genai.ImageResponse{Data: "aGVsbG8="}}
	}
	return results
}

type fakeSearch struct {
	search func(string) ([]media.Video, error)
}

func (f *fakeSearch) Search(_ context.Context, query string) ([]media.Video, error) {
	if f.search != nil {
		return f.search(query)
	}
	return nil, nil
}

func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Transcribe:    &fakeTranscribe{},
		Modules:       &fakeModules{},
		Summaries:     &fakeSummaries{},
		Challenges:    &fakeChallenges{},
		Images:        &fakeImages{},
		Search:        &fakeSearch{},
		IsInteractive: func() bool { return true },
	}
}

func sampleModule() *studio.ModuleData {
	concept := func(title string) studio.Concept {
		return studio.Concept{
			Title:   title,
			Summary: "summary of " + title,
			Quiz: []studio.QuizQuestion{
				{Question: "pick A", Options: []string{"A", "B", "C", "D"}, Answer: "A", Explanation: "it is A"},
				{Question: "pick B", Options: []string{"A", "B", "C", "D"}, Answer: "B"},
				{Question: "name it", Answer: "gravity"},
			},
			Flashcards: []studio.Flashcard{
				{Front: "front 1", Back: "back 1"},
				{Front: "front 2", Back: "back 2"},
			},
			Badge:       studio.Badge{Name: title + " badge"},
			ImagePrompt: "illustrate " + title,
			Challenge:   studio.Challenge{Scenario: "a scenario", Task: "solve it"},
		}
	}
	return &studio.ModuleData{
		SimpleSummary: "a short overview",
		VisualTask: []studio.VisualTaskItem{
			{Term: "gravity", ImagePrompt: "an apple falling"},
			{Term: "inertia", ImagePrompt: "a sliding puck"},
			{Term: "friction", ImagePrompt: "skid marks"},
		},
		Concepts: []studio.Concept{concept("Gravity"), concept("Inertia")},
	}
}
