package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openAIClient talks to any OpenAI-compatible chat completions endpoint.
// Gemini, Cohere and Mistral are reached through their compatibility APIs.
type openAIClient struct {
	caller
	client openai.Client
}

func newOpenAIClient(cfg LLMConfig, provider Provider, observer Observer) (*openAIClient, error) {
	pc := cfg.Provider(provider)
	if pc.APIKey == "" {
		return nil, fmt.Errorf("%w: set %s_API_KEY", ErrMissingAPIKey, provider.EnvPrefix())
	}

	opts := []option.RequestOption{
		option.WithAPIKey(pc.APIKey),
		// Retries are handled by caller so attempts are counted once.
		option.WithMaxRetries(0),
	}
	if pc.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(pc.BaseURL))
	}

	return &openAIClient{
		caller: newCaller(cfg, provider, observer),
		client: openai.NewClient(opts...),
	}, nil
}

func (c *openAIClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return c.generate(ctx, req, func(ctx context.Context, p completion) (string, string, error) {
		var messages []openai.ChatCompletionMessageParamUnion
		if p.System != "" {
			messages = append(messages, openai.SystemMessage(p.System))
		}
		messages = append(messages, openai.UserMessage(p.User))

		params := openai.ChatCompletionNewParams{
			Model:       openai.ChatModel(p.Model),
			Messages:    messages,
			Temperature: openai.Float(p.Temperature),
		}
		if p.MaxTokens > 0 {
			params.MaxTokens = openai.Int(int64(p.MaxTokens))
		}

		resp, err := c.client.Chat.Completions.New(ctx, params)
		if err != nil {
			return "", "", classifyOpenAIError(err)
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return "", "", fmt.Errorf("%w: empty response from %s", ErrInvalidOutput, c.provider)
		}
		return resp.Choices[0].Message.Content, resp.Model, nil
	})
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && isClientStatus(apiErr.StatusCode) {
		return permanent(err)
	}
	return err
}

func (c *openAIClient) Available(ctx context.Context) bool {
	_, err := c.client.Models.List(ctx)
	return err == nil
}
