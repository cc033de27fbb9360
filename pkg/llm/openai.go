package llm

import (
	"context"
	"errors"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	deepseekBaseURL     = "https://api.deepseek.com/v1"
	grokBaseURL         = "https://api.x.ai/v1"
	githubModelsBaseURL = "https://models.inference.ai.azure.com"
)

var _ StreamingProvider = (*OpenAICompatible)(nil)

// OpenAICompatible talks to any endpoint that implements the OpenAI chat
// completion API.
type OpenAICompatible struct {
	client       *openai.Client
	defaultModel string
}

func newOpenAICompatible(apiKey string, baseURL string, defaultModel string) *OpenAICompatible {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAICompatible{
		client:       openai.NewClientWithConfig(cfg),
		defaultModel: defaultModel,
	}
}

// NewOpenAI is the provider behind /gpt.
func NewOpenAI(apiKey string) *OpenAICompatible {
	return newOpenAICompatible(apiKey, "", "gpt-4o-mini")
}

// NewDeepSeek is the provider behind /deepseek and /r1.
func NewDeepSeek(apiKey string) *OpenAICompatible {
	return newOpenAICompatible(apiKey, deepseekBaseURL, "deepseek-chat")
}

// NewGrok is the provider behind /grok and /grok_think.
func NewGrok(apiKey string) *OpenAICompatible {
	return newOpenAICompatible(apiKey, grokBaseURL, "grok-3")
}

// NewGitHubModels serves the same models as OpenAI through the GitHub Models
// inference endpoint.
func NewGitHubModels(apiKey string) *OpenAICompatible {
	return newOpenAICompatible(apiKey, githubModelsBaseURL, "gpt-4o-mini")
}

func (p *OpenAICompatible) model(req Request) string {
	if req.Model != "" {
		return req.Model
	}

	return p.defaultModel
}

func (p *OpenAICompatible) messages(req Request) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}

	return append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})
}

func (p *OpenAICompatible) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    p.model(req),
		Messages: p.messages(req),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm: completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// CompleteStream accumulates the streamed deltas, handing the growing text to
// onPartial after each one. The full answer is returned either way.
func (p *OpenAICompatible) CompleteStream(ctx context.Context, req Request, onPartial StreamHandler) (string, error) {
	stream, err := p.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    p.model(req),
		Messages: p.messages(req),
		Stream:   true,
	})
	if err != nil {
		return "", err
	}
	defer stream.Close()

	var sb strings.Builder

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Delta.Content == "" {
			continue
		}

		sb.WriteString(resp.Choices[0].Delta.Content)

		if onPartial != nil {
			onPartial(sb.String())
		}
	}

	return sb.String(), nil
}
