package studio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go"

	"github.com/emilbergold/mentora/internal/genai"
)

const (
	// imageRetryAttempts is the number of retries after the initial
	// call when the provider signals a rate limit.
	imageRetryAttempts = 3

	// imageRetryBaseDelay is the first backoff delay; it doubles on
	// each subsequent attempt (1000ms, 2000ms, 4000ms).
	imageRetryBaseDelay = 1000 * time.Millisecond
)

// ImageService generates illustration images from prompts. Rate-limit
// failures are retried with exponential backoff; any other failure, or
// exhaustion of retries, surfaces as a terminal error.
type ImageService interface {
	Generate(ctx context.Context, prompt string) (*genai.ImageResponse, error)

	// GenerateSequence fetches one image per prompt, strictly one at a
	// time. Results preserve prompt order and carry per-item errors.
	GenerateSequence(ctx context.Context, prompts []string) []SequenceResult
}

// SequenceResult is the outcome of one prompt in a sequential fetch.
type SequenceResult struct {
	Prompt string
	Image  *genai.ImageResponse
	Err    error
}

type imageService struct {
	client    genai.Client
	attempts  uint
	baseDelay time.Duration
}

// NewImageService creates an ImageService backed by a genai client.
func NewImageService(client genai.Client) ImageService {
	return &imageService{
		client:    client,
		attempts:  imageRetryAttempts,
		baseDelay: imageRetryBaseDelay,
	}
}

func (s *imageService) Generate(ctx context.Context, prompt string) (*genai.ImageResponse, error) {
	var result *genai.ImageResponse
	err := retry.Do(
		func() error {
			resp, err := s.client.GenerateImage(ctx, prompt)
			if err != nil {
				// Only rate-limit signals are retried.
				if !errors.Is(err, genai.ErrRateLimited) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = resp
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.attempts+1),
		retry.Delay(s.baseDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.MaxDelay(s.baseDelay<<s.attempts),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("generating image: %w", err)
	}
	return result, nil
}

// GenerateSequence issues requests one at a time, each awaited before
// the next begins, to stay under the provider-side rate limit. A failed
// prompt does not stop the remaining fetches.
func (s *imageService) GenerateSequence(ctx context.Context, prompts []string) []SequenceResult {
	results := make([]SequenceResult, 0, len(prompts))
	for _, prompt := range prompts {
		if ctx.Err() != nil {
			results = append(results, SequenceResult{Prompt: prompt, Err: ctx.Err()})
			continue
		}
		img, err := s.Generate(ctx, prompt)
		results = append(results, SequenceResult{Prompt: prompt, Image: img, Err: err})
	}
	return results
}
