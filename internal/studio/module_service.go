package studio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emilbergold/mentora/internal/genai"
)

// ModuleService produces complete learning modules from transcripts.
type ModuleService interface {
	// Generate issues one structured-output request and returns the
	// parsed module. Failures are terminal for the workflow: callers
	// surface them and never retry automatically.
	Generate(ctx context.Context, transcript string) (*ModuleData, error)
}

type moduleService struct {
	client genai.Client
}

// NewModuleService creates a ModuleService backed by a genai client.
func NewModuleService(client genai.Client) ModuleService {
	return &moduleService{client: client}
}

func (s *moduleService) Generate(ctx context.Context, transcript string) (*ModuleData, error) {
	resp, err := s.client.Generate(ctx, genai.GenerateRequest{
		Task:       genai.TaskModule,
		System:     moduleSystemPrompt,
		Prompt:     "Transcript:\n\n" + transcript,
		JSONSchema: moduleResponseSchema(),
	})
	if err != nil {
		if errors.Is(err, genai.ErrEmptyResponse) {
			return nil, fmt.Errorf("%w: %v", ErrEmptyGeneration, err)
		}
		return nil, fmt.Errorf("generating module: %w", err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, ErrEmptyGeneration
	}

	module, err := genai.ExtractJSON[ModuleData](resp.Text, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing module: %w", err)
	}

	if err := ValidateModule(module); err != nil {
		if errors.Is(err, ErrZeroConcepts) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", genai.ErrFormat, err)
	}

	return &module, nil
}
