package genai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// MediaPart is an inline binary attachment sent alongside a prompt.
type MediaPart struct {
	MIMEType string
	Data     []byte
}

// GenerateRequest holds the parameters for a text generation call.
type GenerateRequest struct {
	Task        Task
	System      string
	Prompt      string
	Media       *MediaPart     // optional inline binary part
	JSONSchema  map[string]any // constrains output to JSON matching the schema
	UseSearch   bool           // augment generation with web search grounding
	Temperature *float64       // nil uses task default
	MaxTokens   *int           // nil uses task default
}

// GenerateResponse holds the result of a text generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// ImageResponse holds a generated image as a base64 payload.
type ImageResponse struct {
	Data      string // base64-encoded image bytes
	MIMEType  string
	LatencyMs int64
}

// Client provides access to the generative AI provider.
type Client interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// GenerateImage produces one image for the given prompt.
	// Callers own the retry policy for rate-limit failures.
	GenerateImage(ctx context.Context, prompt string) (*ImageResponse, error)
}

// geminiClient implements Client against the Gemini REST API.
type geminiClient struct {
	cfg      Config
	http     *resty.Client
	observer Observer
}

// NewGeminiClient creates a Client that talks to the Gemini API.
func NewGeminiClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	client := resty.New()
	client.SetBaseURL(cfg.Endpoint)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("x-goog-api-key", cfg.APIKey)

	return &geminiClient{
		cfg:      cfg,
		http:     client,
		observer: observer,
	}
}

// Wire format for POST /v1beta/models/{model}:generateContent.

type geminiInlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature        float64        `json:"temperature,omitempty"`
	MaxOutputTokens    int            `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType   string         `json:"responseMimeType,omitempty"`
	ResponseSchema     map[string]any `json:"responseSchema,omitempty"`
	ResponseModalities []string       `json:"responseModalities,omitempty"`
}

type geminiTool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
	Tools             []geminiTool            `json:"tools,omitempty"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason"`
}

type geminiResponse struct {
	Candidates   []geminiCandidate `json:"candidates"`
	ModelVersion string            `json:"modelVersion"`
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	parts := []geminiPart{{Text: req.Prompt}}
	if req.Media != nil {
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MIMEType: req.Media.MIMEType,
			Data:     base64.StdEncoding.EncodeToString(req.Media.Data),
		}})
	}

	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     temp,
			MaxOutputTokens: maxTok,
		},
	}
	if req.System != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.System}}}
	}
	if req.JSONSchema != nil {
		body.GenerationConfig.ResponseMIMEType = "application/json"
		body.GenerationConfig.ResponseSchema = req.JSONSchema
	}
	if req.UseSearch {
		body.Tools = []geminiTool{{GoogleSearch: &struct{}{}}}
	}

	resp, err := c.doGenerate(ctx, c.cfg.Model, req.Task, body)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		c.observe(req.Task, latency, err)
		return nil, err
	}

	text := collectText(resp)
	if strings.TrimSpace(text) == "" {
		err = fmt.Errorf("%w: model returned no text", ErrEmptyResponse)
		c.observe(req.Task, latency, err)
		return nil, err
	}

	c.observe(req.Task, latency, nil)
	return &GenerateResponse{
		Text:      text,
		Model:     resp.ModelVersion,
		LatencyMs: latency,
	}, nil
}

func (c *geminiClient) GenerateImage(ctx context.Context, prompt string) (*ImageResponse, error) {
	start := time.Now()

	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:        c.cfg.Tasks[TaskImage].Temperature,
			ResponseModalities: []string{"IMAGE", "TEXT"},
		},
	}

	resp, err := c.doGenerate(ctx, c.cfg.ImageModel, TaskImage, body)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		c.observe(TaskImage, latency, err)
		return nil, err
	}

	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				c.observe(TaskImage, latency, nil)
				return &ImageResponse{
					Data:      part.InlineData.Data,
					MIMEType:  part.InlineData.MIMEType,
					LatencyMs: latency,
				}, nil
			}
		}
	}

	err = fmt.Errorf("%w: no image data in response", ErrEmptyResponse)
	c.observe(TaskImage, latency, err)
	return nil, err
}

func (c *geminiClient) doGenerate(ctx context.Context, model string, task Task, body geminiRequest) (*geminiResponse, error) {
	timeoutMs := c.cfg.TaskTimeout(task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	var result geminiResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", model))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	switch {
	case resp.StatusCode() == http.StatusOK:
		return &result, nil
	case resp.StatusCode() == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status 429", ErrRateLimited)
	default:
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode(), resp.String())
	}
}

func (c *geminiClient) observe(task Task, latency int64, err error) {
	c.observer.OnCallComplete(CallEvent{
		Task:      task,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
}

// collectText concatenates all text parts of the first candidate.
func collectText(resp *geminiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String()
}
