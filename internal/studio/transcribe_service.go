package studio

import (
	"context"
	"fmt"

	"github.com/emilbergold/mentora/internal/genai"
	"github.com/emilbergold/mentora/internal/media"
)

// TranscribeService turns selected media into transcript text.
type TranscribeService interface {
	// TranscribeFile uploads the file contents inline and returns the
	// spoken transcript.
	TranscribeFile(ctx context.Context, file media.File) (string, error)

	// TranscribeVideo fabricates a plausible transcript for a remote
	// video from its title and channel only. It is explicitly not a
	// real transcript of the video.
	TranscribeVideo(ctx context.Context, ref media.Video) (string, error)
}

type transcribeService struct {
	client genai.Client
}

// NewTranscribeService creates a TranscribeService backed by a genai client.
func NewTranscribeService(client genai.Client) TranscribeService {
	return &transcribeService{client: client}
}

func (s *transcribeService) TranscribeFile(ctx context.Context, file media.File) (string, error) {
	resp, err := s.client.Generate(ctx, genai.GenerateRequest{
		Task:   genai.TaskTranscribe,
		System: transcribeFileSystemPrompt,
		Prompt: "Transcribe the attached media file.",
		Media: &genai.MediaPart{
			MIMEType: file.MIMEType,
			Data:     file.Data,
		},
	})
	if err != nil {
		return "", fmt.Errorf("transcribing %s: %w", file.Label(), err)
	}
	return resp.Text, nil
}

func (s *transcribeService) TranscribeVideo(ctx context.Context, ref media.Video) (string, error) {
	prompt := fmt.Sprintf("Video title: %q\nChannel: %q", ref.Title, ref.Channel)
	resp, err := s.client.Generate(ctx, genai.GenerateRequest{
		Task:   genai.TaskTranscribe,
		System: transcribeVideoSystemPrompt,
		Prompt: prompt,
	})
	if err != nil {
		return "", fmt.Errorf("drafting transcript for %q: %w", ref.Title, err)
	}
	return resp.Text, nil
}
