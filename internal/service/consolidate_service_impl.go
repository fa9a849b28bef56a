package service

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/contentplan/internal/llm"
	"github.com/alexanderramin/contentplan/internal/prompt"
	"github.com/alexanderramin/contentplan/internal/scheduler"
	"github.com/alexanderramin/contentplan/internal/store"
)

type consolidateService struct {
	deps     Deps
	render   RenderService
	observer UseCaseObserver
}

// NewConsolidateService builds the final-plan stage. When render is nil the
// consolidated plan is saved but not rendered.
func NewConsolidateService(deps Deps, render RenderService, observers ...UseCaseObserver) ConsolidateService {
	return &consolidateService{deps: deps.withDefaults(), render: render, observer: useCaseObserverOrNoop(observers)}
}

func (s *consolidateService) Consolidate(ctx context.Context, provider llm.Provider) (result *ConsolidateResult, err error) {
	ctx = ensureRunID(ctx)
	span := startStage(s.observer, "consolidate", map[string]any{"provider": string(provider)})
	defer func() { span.finish(ctx, err) }()

	src, err := store.Latest(s.deps.Layout.CombinedDir(), store.HasPrefixSuffix("combined_summary_", ".json"))
	if err != nil {
		return nil, fmt.Errorf("finding combined summary: %w", err)
	}
	combined, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("reading combined summary: %w", err)
	}

	briefing, err := s.deps.loadBriefing()
	if err != nil {
		return nil, err
	}

	now := s.deps.Clock.Now()
	start := scheduler.DateOnly(now)
	ts := store.Timestamp(now)
	p := prompt.Consolidation(prompt.ConsolidationInput{
		Briefing:        *briefing,
		Strategy:        prompt.AnalyzeStrategy(*briefing),
		CombinedSummary: combined,
		StartDate:       start,
	})

	obj, err := s.deps.ask(ctx, provider, llm.TaskConsolidate, p, ts, "posts")
	if err != nil {
		return nil, err
	}
	client := briefing.DisplayName("cliente")
	setIfMissing(obj, "nome_do_cliente", client)
	setIfMissing(obj, "generation_date", now.Format(scheduler.DateLayout))
	setIfMissing(obj, "start_date", start.Format(scheduler.DateLayout))

	path := s.deps.Layout.ConsolidatedPath(string(provider), client, ts)
	if err := store.SaveJSON(path, obj); err != nil {
		return nil, err
	}
	result = &ConsolidateResult{Provider: provider, Path: path}
	span.fields["posts"] = countPosts(obj["posts"])

	if s.render == nil {
		return result, nil
	}
	rendered, err := s.render.Render(ctx, RenderRequest{ContentPath: path, ClientName: client, StartDate: start})
	if err != nil {
		return result, fmt.Errorf("rendering consolidated plan: %w", err)
	}
	result.Render = rendered
	return result, nil
}
