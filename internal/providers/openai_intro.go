package providers

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"tripdoc/pkg/utils"
)

// OpenAIIntroductionGenerator generates introductions through the OpenAI
// chat completion API.
type OpenAIIntroductionGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIIntroductionGenerator(apiKey, model string) *OpenAIIntroductionGenerator {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	var client *openai.Client
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}
	return &OpenAIIntroductionGenerator{client: client, model: model}
}

func (g *OpenAIIntroductionGenerator) GenerateIntroduction(ctx context.Context, locationName, lang string) (string, error) {
	if g.client == nil {
		return "", utils.ErrIntroductionUnavailable
	}

	system, user := introductionPrompts(locationName, lang)
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: 200,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no content generated")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
