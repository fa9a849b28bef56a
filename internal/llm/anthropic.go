package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type anthropicClient struct {
	caller
	client anthropic.Client
}

func newAnthropicClient(cfg LLMConfig, observer Observer) (*anthropicClient, error) {
	pc := cfg.Provider(ProviderAnthropic)
	if pc.APIKey == "" {
		return nil, fmt.Errorf("%w: set %s_API_KEY", ErrMissingAPIKey, ProviderAnthropic.EnvPrefix())
	}

	opts := []option.RequestOption{
		option.WithAPIKey(pc.APIKey),
		option.WithMaxRetries(0),
	}
	if pc.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(pc.BaseURL))
	}

	return &anthropicClient{
		caller: newCaller(cfg, ProviderAnthropic, observer),
		client: anthropic.NewClient(opts...),
	}, nil
}

func (c *anthropicClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return c.generate(ctx, req, func(ctx context.Context, p completion) (string, string, error) {
		maxTokens := int64(p.MaxTokens)
		if maxTokens <= 0 {
			maxTokens = 4096
		}
		params := anthropic.MessageNewParams{
			Model:       anthropic.Model(p.Model),
			MaxTokens:   maxTokens,
			Temperature: anthropic.Float(p.Temperature),
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(p.User)),
			},
		}
		if p.System != "" {
			params.System = []anthropic.TextBlockParam{{Text: p.System}}
		}

		resp, err := c.client.Messages.New(ctx, params)
		if err != nil {
			var apiErr *anthropic.Error
			if errors.As(err, &apiErr) && isClientStatus(apiErr.StatusCode) {
				return "", "", permanent(err)
			}
			return "", "", err
		}

		var text strings.Builder
		for _, block := range resp.Content {
			text.WriteString(block.Text)
		}
		if text.Len() == 0 {
			return "", "", fmt.Errorf("%w: empty response from anthropic", ErrInvalidOutput)
		}
		return text.String(), string(resp.Model), nil
	})
}

func (c *anthropicClient) Available(ctx context.Context) bool {
	_, err := c.client.Models.List(ctx, anthropic.ModelListParams{})
	return err == nil
}
