package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripdoc/pkg/utils"
)

// GeminiIntroductionGenerator generates introductions through Google's
// Gemini models (free tier friendly).
type GeminiIntroductionGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiIntroductionGenerator(apiKey, model string) (*GeminiIntroductionGenerator, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}
	if apiKey == "" {
		return &GeminiIntroductionGenerator{model: model}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiIntroductionGenerator{client: client, model: model}, nil
}

func (g *GeminiIntroductionGenerator) GenerateIntroduction(ctx context.Context, locationName, lang string) (string, error) {
	if g.client == nil {
		return "", utils.ErrIntroductionUnavailable
	}

	m := g.client.GenerativeModel(g.model)
	m.SetTemperature(0.4)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(200)

	system, user := introductionPrompts(locationName, lang)
	resp, err := m.GenerateContent(ctx, genai.Text(system+"\n\n"+user))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}
	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return strings.TrimSpace(content), nil
}
