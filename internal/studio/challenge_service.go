package studio

import (
	"context"
	"fmt"

	"github.com/emilbergold/mentora/internal/genai"
)

// ChallengeService reviews learner solutions to problem-solving
// challenges. Feedback is generative commentary; nothing is machine
// checked for correctness.
type ChallengeService interface {
	Evaluate(ctx context.Context, conceptTitle string, challenge Challenge, solution string) (string, error)
}

type challengeService struct {
	client genai.Client
}

// NewChallengeService creates a ChallengeService backed by a genai client.
func NewChallengeService(client genai.Client) ChallengeService {
	return &challengeService{client: client}
}

func (s *challengeService) Evaluate(ctx context.Context, conceptTitle string, challenge Challenge, solution string) (string, error) {
	prompt := fmt.Sprintf(
		"Concept: %s\n\nScenario: %s\n\nTask: %s\n\nLearner's solution:\n\n%s",
		conceptTitle, challenge.Scenario, challenge.Task, solution,
	)
	resp, err := s.client.Generate(ctx, genai.GenerateRequest{
		Task:   genai.TaskEvaluate,
		System: evaluateSystemPrompt,
		Prompt: prompt,
	})
	if err != nil {
		return "", fmt.Errorf("evaluating solution: %w", err)
	}
	return resp.Text, nil
}
