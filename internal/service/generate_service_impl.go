package service

import (
	"context"

	"github.com/alexanderramin/contentplan/internal/llm"
	"github.com/alexanderramin/contentplan/internal/prompt"
	"github.com/alexanderramin/contentplan/internal/scheduler"
	"github.com/alexanderramin/contentplan/internal/store"
)

type generateService struct {
	deps     Deps
	observer UseCaseObserver
}

func NewGenerateService(deps Deps, observers ...UseCaseObserver) GenerateService {
	return &generateService{deps: deps.withDefaults(), observer: useCaseObserverOrNoop(observers)}
}

func (s *generateService) Generate(ctx context.Context, provider llm.Provider) (result *GenerateResult, err error) {
	ctx = ensureRunID(ctx)
	span := startStage(s.observer, "generate", map[string]any{"provider": string(provider)})
	defer func() { span.finish(ctx, err) }()

	briefing, err := s.deps.loadBriefing()
	if err != nil {
		return nil, err
	}

	now := s.deps.Clock.Now()
	ts := store.Timestamp(now)
	p := prompt.Generation(*briefing, scheduler.DateOnly(now))

	obj, err := s.deps.ask(ctx, provider, llm.TaskGenerate, p, ts, "posts")
	if err != nil {
		return nil, err
	}
	setIfMissing(obj, "nome_do_cliente", briefing.ClientName)
	setIfMissing(obj, "generation_date", now.Format(scheduler.DateLayout))

	path := s.deps.Layout.ResponsePath(provider.DisplayName(), ts)
	if err := store.SaveJSON(path, obj); err != nil {
		return nil, err
	}
	result = &GenerateResult{Provider: provider, Path: path, PostCount: countPosts(obj["posts"])}
	span.fields["posts"] = result.PostCount
	return result, nil
}
