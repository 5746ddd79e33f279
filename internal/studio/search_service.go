package studio

import (
	"context"
	"fmt"

	"github.com/emilbergold/mentora/internal/genai"
	"github.com/emilbergold/mentora/internal/media"
)

// searchResultLimit caps how many candidates a search returns.
const searchResultLimit = 5

// SearchService finds remote video candidates for a text query via
// search-grounded generation. The textual response is not guaranteed to
// be pure struct data, so only the outermost bracketed region is parsed.
type SearchService interface {
	Search(ctx context.Context, query string) ([]media.Video, error)
}

type searchService struct {
	client genai.Client
}

// NewSearchService creates a SearchService backed by a genai client.
func NewSearchService(client genai.Client) SearchService {
	return &searchService{client: client}
}

func (s *searchService) Search(ctx context.Context, query string) ([]media.Video, error) {
	resp, err := s.client.Generate(ctx, genai.GenerateRequest{
		Task:      genai.TaskSearch,
		System:    searchSystemPrompt,
		Prompt:    "Query: " + query,
		UseSearch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("searching videos: %w", err)
	}

	videos, err := genai.ExtractJSONArray[media.Video](resp.Text)
	if err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}

	// Drop structurally incomplete entries rather than failing the
	// whole search over one bad row.
	valid := videos[:0]
	for _, v := range videos {
		if v.ID != "" && v.Title != "" {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: no usable video entries in response", genai.ErrFormat)
	}
	if len(valid) > searchResultLimit {
		valid = valid[:searchResultLimit]
	}
	return valid, nil
}
