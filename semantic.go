package main

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	defaultRegion = "europe-west1"
	defaultModel  = "gemini-2.5-flash"
)

const definePrompt = `Give a short crossword-style clue (definition) for the English word %q.

Rules:
- Answer with the clue text only, no quotes, no markdown, no trailing period.
- Keep it under 35 characters so it fits a single print column.
- If you don't recognize the word, answer with exactly: UNKNOWN`

// GeminiSemanticDictionary is the concrete, optional SemanticDictionary
// backed by Vertex AI Gemini: same client wrapper and opt-in construction as
// a Gemini-backed image analyzer, repurposed here from image analysis to
// word definition.
type GeminiSemanticDictionary struct {
	client    *genai.Client
	modelName string
	cache     map[string]string
}

// NewGeminiSemanticDictionary creates a client using Application Default
// Credentials. Set GOOGLE_APPLICATION_CREDENTIALS to the service account
// key file path.
func NewGeminiSemanticDictionary(ctx context.Context, projectID, region string) (*GeminiSemanticDictionary, error) {
	if region == "" {
		region = defaultRegion
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiSemanticDictionary{
		client:    client,
		modelName: defaultModel,
		cache:     make(map[string]string),
	}, nil
}

// Close does nothing and always returns nil.
func (g *GeminiSemanticDictionary) Close() error { return nil }

// Define implements SemanticDictionary.
func (g *GeminiSemanticDictionary) Define(word string) (string, bool) {
	if def, ok := g.cache[word]; ok {
		return def, def != ""
	}

	ctx := context.Background()
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role: "user",
			Parts: []*genai.Part{
				{Text: fmt.Sprintf(definePrompt, word)},
			},
		}},
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.1)),
			TopP:        genai.Ptr(float32(1)),
		},
	)
	if err != nil {
		return "", false
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" || strings.EqualFold(text, "UNKNOWN") {
		g.cache[word] = ""
		return "", false
	}

	g.cache[word] = text
	return text, true
}
