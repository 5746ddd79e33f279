package studio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilbergold/mentora/internal/genai"
)

func TestSearchService_Search(t *testing.T) {
	client := &fakeClient{generate: func(req genai.GenerateRequest) (*genai.GenerateResponse, error) {
		return &genai.GenerateResponse{Text: `I found these videos for you:
[
  {"id": "v1", "title": "Newton's Laws", "channel": "Physics Hub"},
  {"id": "v2", "title": "Forces Explained", "channel": "SciShow"}
]
Enjoy!`}, nil
	}}

	svc := NewSearchService(client)
	videos, err := svc.Search(context.Background(), "newton's laws")
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "v1", videos[0].ID)
	assert.Equal(t, "SciShow", videos[1].Channel)

	require.Len(t, client.requests, 1)
	assert.Equal(t, genai.TaskSearch, client.requests[0].Task)
	assert.True(t, client.requests[0].UseSearch, "search must use web grounding")
}

func TestSearchService_Search_DropsIncompleteEntries(t *testing.T) {
	client := &fakeClient{generate: func(req genai.GenerateRequest) (*genai.GenerateResponse, error) {
		return &genai.GenerateResponse{Text: `[
  {"id": "v1", "title": "Good", "channel": "C"},
  {"id": "", "title": "No ID", "channel": "C"},
  {"id": "v3", "title": "", "channel": "C"}
]`}, nil
	}}

	svc := NewSearchService(client)
	videos, err := svc.Search(context.Background(), "q")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "v1", videos[0].ID)
}

func TestSearchService_Search_CapsResultCount(t *testing.T) {
	client := &fakeClient{generate: func(req genai.GenerateRequest) (*genai.GenerateResponse, error) {
		return &genai.GenerateResponse{Text: `[
  {"id":"v1","title":"t","channel":"c"},{"id":"v2","title":"t","channel":"c"},
  {"id":"v3","title":"t","channel":"c"},{"id":"v4","title":"t","channel":"c"},
  {"id":"v5","title":"t","channel":"c"},{"id":"v6","title":"t","channel":"c"},
  {"id":"v7","title":"t","channel":"c"}
]`}, nil
	}}

	svc := NewSearchService(client)
	videos, err := svc.Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Len(t, videos, searchResultLimit)
}

func TestSearchService_Search_NoBracketedRegion(t *testing.T) {
	client := &fakeClient{generate: func(req genai.GenerateRequest) (*genai.GenerateResponse, error) {
		return &genai.GenerateResponse{Text: "Sorry, I could not find any videos."}, nil
	}}

	svc := NewSearchService(client)
	_, err := svc.Search(context.Background(), "q")
	assert.ErrorIs(t, err, genai.ErrFormat)
}

func TestSearchService_Search_AllEntriesUnusable(t *testing.T) {
	client := &fakeClient{generate: func(req genai.GenerateRequest) (*genai.GenerateResponse, error) {
		return &genai.GenerateResponse{Text: `[{"id":"","title":"","channel":""}]`}, nil
	}}

	svc := NewSearchService(client)
	_, err := svc.Search(context.Background(), "q")
	assert.ErrorIs(t, err, genai.ErrFormat)
}
