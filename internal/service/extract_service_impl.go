package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/contentplan/internal/domain"
	"github.com/alexanderramin/contentplan/internal/importer"
	"github.com/alexanderramin/contentplan/internal/llm"
	"github.com/alexanderramin/contentplan/internal/store"
)

type extractService struct {
	deps     Deps
	observer UseCaseObserver
}

func NewExtractService(deps Deps, observers ...UseCaseObserver) ExtractService {
	return &extractService{deps: deps.withDefaults(), observer: useCaseObserverOrNoop(observers)}
}

type postsDocument struct {
	Posts []domain.Post `json:"posts"`
}

// Extract pulls the posts out of the provider's newest response. The output
// keeps the response's timestamp so the two files pair up.
func (s *extractService) Extract(ctx context.Context, provider llm.Provider) (result *ExtractResult, err error) {
	ctx = ensureRunID(ctx)
	span := startStage(s.observer, "extract", map[string]any{"provider": string(provider)})
	defer func() { span.finish(ctx, err) }()

	name := provider.DisplayName()
	src, err := store.Latest(s.deps.Layout.ResponseDir(name), store.HasPrefixSuffix(name+"_response_", ".json"))
	if err != nil {
		return nil, fmt.Errorf("finding %s response: %w", name, err)
	}

	content, warnings, err := importer.LoadContent(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src, err)
	}
	logWarnings(s.deps, src, warnings)
	if len(content.Posts) == 0 {
		return nil, fmt.Errorf("%s: %w", src, importer.ErrMissingPosts)
	}

	ts, ok := store.TimestampFromName(src)
	if !ok {
		ts = store.Timestamp(s.deps.Clock.Now())
	}
	path := s.deps.Layout.PostsPath(name, ts)
	if err := store.SaveJSON(path, postsDocument{Posts: content.Posts}); err != nil {
		return nil, err
	}

	span.fields["posts"] = len(content.Posts)
	return &ExtractResult{Provider: provider, Path: path, PostCount: len(content.Posts), Warnings: warnings}, nil
}
