package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexanderramin/contentplan/internal/llm"
)

type pipelineService struct {
	deps        Deps
	generate    GenerateService
	extract     ExtractService
	summarize   SummaryService
	consolidate ConsolidateService
	observer    UseCaseObserver
}

// NewPipelineService wires every stage over the same dependencies.
func NewPipelineService(deps Deps, observers ...UseCaseObserver) PipelineService {
	deps = deps.withDefaults()
	render := NewRenderService(deps, observers...)
	return &pipelineService{
		deps:        deps,
		generate:    NewGenerateService(deps, observers...),
		extract:     NewExtractService(deps, observers...),
		summarize:   NewSummaryService(deps, observers...),
		consolidate: NewConsolidateService(deps, render, observers...),
		observer:    useCaseObserverOrNoop(observers),
	}
}

// Run executes generate and extract for every generator, then summarizes
// the survivors and consolidates with the configured consolidator. A
// failing generator is logged and left out; the run fails only when none
// succeeds.
func (s *pipelineService) Run(ctx context.Context) (result *PipelineResult, err error) {
	runID := uuid.NewString()
	ctx = WithRunID(ctx, runID)
	generators := s.deps.Settings.Generators
	span := startStage(s.observer, "pipeline", map[string]any{"generators": len(generators)})
	defer func() { span.finish(ctx, err) }()

	result = &PipelineResult{RunID: runID, Failed: map[llm.Provider]error{}}
	var ready []llm.Provider
	for _, provider := range generators {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		gen, err := s.generate.Generate(ctx, provider)
		if err != nil {
			s.deps.Logger.Warn("generator failed", "provider", provider, "run_id", runID, "error", err)
			result.Failed[provider] = err
			continue
		}
		result.Generated = append(result.Generated, *gen)

		if _, err := s.extract.Extract(ctx, provider); err != nil {
			s.deps.Logger.Warn("extract failed", "provider", provider, "run_id", runID, "error", err)
			result.Failed[provider] = err
			continue
		}
		ready = append(ready, provider)
	}
	if len(ready) == 0 {
		return result, fmt.Errorf("%w (%d tried)", ErrAllGenerations, len(generators))
	}

	result.Summary, err = s.summarize.Summarize(ctx, ready, false)
	if err != nil {
		return result, fmt.Errorf("summarizing: %w", err)
	}

	consolidator := s.deps.Settings.Consolidator
	if consolidator == "" {
		consolidator = ready[0]
	}
	result.Consolidated, err = s.consolidate.Consolidate(ctx, consolidator)
	if err != nil {
		return result, fmt.Errorf("consolidating: %w", err)
	}
	span.fields["generated"] = len(result.Generated)
	span.fields["failed"] = len(result.Failed)
	return result, nil
}
