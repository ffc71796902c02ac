package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/fwojciec/kickoff"
)

// Interface compliance check.
var _ kickoff.Generator = (*Client)(nil)

// Client implements [kickoff.Generator] for the Google Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the model ID. Default is gemini-3.1-pro-preview.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c := &Client{
		client: gc,
		model:  defaultModel,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Stream sends a streaming request to the Gemini API and returns a
// [kickoff.Stream] that emits one fragment per response chunk.
func (c *Client) Stream(ctx context.Context, req kickoff.Request) (kickoff.Stream, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	system := gatherSystemPrompt
	prompt := buildGatherPrompt(req)
	if req.Synthesis {
		system = synthesisSystemPrompt
		prompt = buildSynthesisPrompt(req)
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: defaultMaxTokens,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
	}
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}

	iter := c.client.Models.GenerateContentStream(ctx, model, contents, config)
	return newStream(iter), nil
}
