package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/maxcopy/maxcopy-backend/internal/models"
)

// GeminiGenerator is a real ListingGenerator backed by the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
}

func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiGenerator{client: client}, nil
}

func (g *GeminiGenerator) GenerateListing(ctx context.Context, req ListingRequest) (models.JSONMap, error) {
	modelName := req.ModelName
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	model := g.client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"

	res, err := model.GenerateContent(ctx, genai.Text(BuildPrompt(req)))
	if err != nil {
		return nil, fmt.Errorf("error calling model %s: %w", modelName, err)
	}
	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from model %s", modelName)
	}

	text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected response part type %T", res.Candidates[0].Content.Parts[0])
	}

	var payload models.JSONMap
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("model returned invalid JSON: %w", err)
	}
	return payload, nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}
