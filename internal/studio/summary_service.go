package studio

import (
	"context"
	"fmt"

	"github.com/emilbergold/mentora/internal/genai"
)

// SummaryService covers the standalone analysis pipeline: transcript
// summary, article idea generation, and article writing.
type SummaryService interface {
	// Summarize returns a two-section summary parsed from free text by
	// locating the key-concepts header line.
	Summarize(ctx context.Context, transcript string) (*Summary, error)

	// GenerateIdeas proposes exactly 3 article titles for the category.
	GenerateIdeas(ctx context.Context, summary string, category IdeaCategory) ([]string, error)

	// WriteArticle writes a formatted article for the chosen idea,
	// grounded in the transcript.
	WriteArticle(ctx context.Context, idea, transcript string) (string, error)
}

type summaryService struct {
	client genai.Client
}

// NewSummaryService creates a SummaryService backed by a genai client.
func NewSummaryService(client genai.Client) SummaryService {
	return &summaryService{client: client}
}

func (s *summaryService) Summarize(ctx context.Context, transcript string) (*Summary, error) {
	resp, err := s.client.Generate(ctx, genai.GenerateRequest{
		Task:   genai.TaskSummary,
		System: summarizeSystemPrompt,
		Prompt: "Transcript:\n\n" + transcript,
	})
	if err != nil {
		return nil, fmt.Errorf("summarizing transcript: %w", err)
	}

	sections, err := genai.SplitSummarySections(resp.Text)
	if err != nil {
		return nil, fmt.Errorf("parsing summary: %w", err)
	}
	return &Summary{Quick: sections.Quick, KeyConcepts: sections.KeyConcepts}, nil
}

func (s *summaryService) GenerateIdeas(ctx context.Context, summary string, category IdeaCategory) ([]string, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown idea category %q", category)
	}

	prompt := fmt.Sprintf("Style: %s\n\nContent summary:\n\n%s", category, summary)
	resp, err := s.client.Generate(ctx, genai.GenerateRequest{
		Task:   genai.TaskIdeas,
		System: ideasSystemPrompt,
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("generating ideas: %w", err)
	}

	titles, err := genai.ExtractJSONArray[string](resp.Text)
	if err != nil {
		return nil, fmt.Errorf("parsing ideas: %w", err)
	}
	if len(titles) != 3 {
		return nil, fmt.Errorf("%w: expected 3 titles, got %d", genai.ErrFormat, len(titles))
	}
	return titles, nil
}

func (s *summaryService) WriteArticle(ctx context.Context, idea, transcript string) (string, error) {
	prompt := fmt.Sprintf("Title: %s\n\nSource transcript:\n\n%s", idea, transcript)
	resp, err := s.client.Generate(ctx, genai.GenerateRequest{
		Task:   genai.TaskArticle,
		System: articleSystemPrompt,
		Prompt: prompt,
	})
	if err != nil {
		return "", fmt.Errorf("writing article: %w", err)
	}
	return resp.Text, nil
}
