package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/contentplan/internal/domain"
	"github.com/alexanderramin/contentplan/internal/importer"
	"github.com/alexanderramin/contentplan/internal/llm"
	"github.com/alexanderramin/contentplan/internal/prompt"
	"github.com/alexanderramin/contentplan/internal/store"
)

type summaryService struct {
	deps     Deps
	observer UseCaseObserver
}

func NewSummaryService(deps Deps, observers ...UseCaseObserver) SummaryService {
	return &summaryService{deps: deps.withDefaults(), observer: useCaseObserverOrNoop(observers)}
}

// CombinedSummary is the document handed to the consolidator, keyed by
// provider name.
type CombinedSummary struct {
	Summaries map[string]json.RawMessage `json:"resumos"`
}

// Summarize condenses each provider's newest posts and combines them.
// Providers without a posts file are skipped. With useLLM the condensation
// is delegated to the provider's own model; a failed model call falls back
// to the field filter.
func (s *summaryService) Summarize(ctx context.Context, providers []llm.Provider, useLLM bool) (result *SummaryResult, err error) {
	ctx = ensureRunID(ctx)
	span := startStage(s.observer, "summarize", map[string]any{
		"providers": len(providers),
		"use_llm":   useLLM,
	})
	defer func() { span.finish(ctx, err) }()

	ts := store.Timestamp(s.deps.Clock.Now())
	result = &SummaryResult{Paths: map[llm.Provider]string{}}
	combined := CombinedSummary{Summaries: map[string]json.RawMessage{}}

	for _, provider := range providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := provider.DisplayName()
		src, err := store.Latest(s.deps.Layout.PostsDir(name), store.HasPrefixSuffix(name+"_posts_", ".json"))
		if errors.Is(err, store.ErrNoFiles) {
			s.deps.Logger.Warn("no posts to summarize", "provider", provider)
			result.Skipped = append(result.Skipped, provider)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("finding %s posts: %w", name, err)
		}

		content, warnings, err := importer.LoadContent(src)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", src, err)
		}
		logWarnings(s.deps, src, warnings)

		summary, err := s.summarize(ctx, provider, content.Posts, ts, useLLM)
		if err != nil {
			return nil, err
		}

		path := s.deps.Layout.SummaryPath(name, ts)
		if err := store.SaveJSON(path, summary); err != nil {
			return nil, err
		}
		result.Paths[provider] = path
		combined.Summaries[string(provider)] = summary
	}

	if len(combined.Summaries) == 0 {
		return nil, ErrNoSummaries
	}

	result.CombinedPath = s.deps.Layout.CombinedPath(ts)
	if err := store.SaveJSON(result.CombinedPath, combined); err != nil {
		return nil, err
	}
	span.fields["summarized"] = len(combined.Summaries)
	span.fields["skipped"] = len(result.Skipped)
	return result, nil
}

func (s *summaryService) summarize(ctx context.Context, provider llm.Provider, posts []domain.Post, ts string,
	useLLM bool) (json.RawMessage, error) {
	if useLLM {
		obj, err := s.deps.ask(ctx, provider, llm.TaskSummarize, prompt.Summary(posts, provider.DisplayName()), ts, "resumos")
		if err == nil {
			return obj["resumos"], nil
		}
		if ctx.Err() != nil {
			return nil, err
		}
		s.deps.Logger.Warn("llm summary failed, using field filter", "provider", provider, "error", err)
	}

	summaries := make([]domain.PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, p.Summarize())
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(summaries); err != nil {
		return nil, fmt.Errorf("encoding %s summary: %w", provider, err)
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}
