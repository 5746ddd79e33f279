package studio

import (
	"context"

	"github.com/emilbergold/mentora/internal/genai"
)

// fakeClient scripts genai.Client responses for service tests.
type fakeClient struct {
	generate      func(req genai.GenerateRequest) (*genai.GenerateResponse, error)
	generateImage func(prompt string) (*genai.ImageResponse, error)

	requests     []genai.GenerateRequest
	imagePrompts []string
}

func (f *fakeClient) Generate(_ context.Context, req genai.GenerateRequest) (*genai.GenerateResponse, error) {
	f.requests = append(f.requests, req)
	if f.generate == nil {
		return &genai.GenerateResponse{Text: "ok"}, nil
	}
	return f.generate(req)
}

func (f *fakeClient) GenerateImage(_ context.Context, prompt string) (*genai.ImageResponse, error) {
	f.imagePrompts = append(f.imagePrompts, prompt)
	if f.generateImage == nil {
		return &genai.ImageResponse{Data: "aW1n", MIMEType: "image/png"}, nil
	}
	return f.generateImage(prompt)
}

// sampleConceptJSON builds one contract-conforming concept.
func sampleConcept(title string) Concept {
	return Concept{
		Title:       title,
		Summary:     "A summary of " + title + ".",
		StoryScene:  "A scene about " + title + ".",
		ImagePrompt: "An illustration of " + title + ".",
		Quiz: []QuizQuestion{
			{Question: "Q1?", Options: []string{"a", "b", "c", "d"}, Answer: "a", Explanation: "because"},
			{Question: "Q2?", Options: []string{"a", "b", "c", "d"}, Answer: "b", Explanation: "because"},
			{Question: "Q3?", Options: nil, Answer: "short answer", Explanation: "because"},
		},
		Flashcards: []Flashcard{
			{Front: "front 1", Back: "back 1"},
			{Front: "front 2", Back: "back 2"},
		},
		Badge:     Badge{Name: title + " badge", Description: "earned"},
		Narration: "Narration for " + title + ".",
		Challenge: Challenge{Scenario: "A scenario.", Task: "Solve it."},
	}
}

// sampleModule builds a contract-conforming module with n concepts.
func sampleModule(n int) ModuleData {
	m := ModuleData{
		SimpleSummary: "A simple summary.",
		VisualTask: []VisualTaskItem{
			{Term: "inertia", ImagePrompt: "a sliding puck"},
			{Term: "force", ImagePrompt: "a push arrow"},
			{Term: "mass", ImagePrompt: "a weight"},
		},
	}
	for i := 0; i < n; i++ {
		m.Concepts = append(m.Concepts, sampleConcept("Concept "+string(rune('A'+i))))
	}
	return m
}
