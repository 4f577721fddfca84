package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Johnny027-Picard/draftcraft-agent/internal/utils"
	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a helpful freelance proposal writer."

const promptTemplate = `
Write a professional freelance proposal for the following client and job:

Client Name: %s
Job Description: %s
Skills to Highlight: %s

The proposal should be concise, persuasive, and tailored to the client's needs.
`

// OpenAIGenerator calls the OpenAI chat completion API.
type OpenAIGenerator struct {
	client *openai.Client
}

func NewOpenAIGenerator(apiKey string) *OpenAIGenerator {
	cfg := openai.DefaultConfig(apiKey)
	cfg.HTTPClient = utils.NewHTTPClient(60 * time.Second)
	return &OpenAIGenerator{client: openai.NewClientWithConfig(cfg)}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, clientName, jobDescription, skills, model string) (string, error) {
	prompt := fmt.Sprintf(promptTemplate, clientName, jobDescription, skills)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty completion")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
