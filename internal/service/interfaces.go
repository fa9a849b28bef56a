package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/contentplan/internal/domain"
	"github.com/alexanderramin/contentplan/internal/llm"
	"github.com/alexanderramin/contentplan/internal/scheduler"
	"github.com/alexanderramin/contentplan/internal/store"
)

// ClientFactory resolves the LLM client for a provider.
type ClientFactory func(provider llm.Provider) (llm.LLMClient, error)

// Settings are the pipeline knobs taken from configuration.
type Settings struct {
	BriefingPath    string
	CompanyName     string
	LogoPath        string
	Locale          scheduler.Locale
	Slots           scheduler.SlotTable
	PrepareLeadDays int
	FollowUpDays    int
	Generators      []llm.Provider
	Consolidator    llm.Provider
}

// Deps is what every stage needs.
type Deps struct {
	Layout   *store.Layout
	Settings Settings
	Clients  ClientFactory
	Clock    scheduler.Clock
	Logger   *slog.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Clock == nil {
		d.Clock = scheduler.SystemClock{}
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}
	return d
}

type GenerateResult struct {
	Provider  llm.Provider
	Path      string
	PostCount int
}

type ExtractResult struct {
	Provider  llm.Provider
	Path      string
	PostCount int
	Warnings  []error
}

type SummaryResult struct {
	CombinedPath string
	Paths        map[llm.Provider]string
	Skipped      []llm.Provider
}

type ConsolidateResult struct {
	Provider llm.Provider
	Path     string
	Render   *RenderResult
}

// RenderRequest names the plan to render. Content, when set, wins over
// ContentPath.
type RenderRequest struct {
	ContentPath string
	Content     *domain.Content
	ClientName  string
	StartDate   time.Time
	OutDir      string
}

type RenderResult struct {
	HTMLPath  string
	PDFPath   string
	Calendar  []scheduler.CalendarEntry
	Checklist []scheduler.ChecklistDayEntry
}

type PipelineResult struct {
	RunID        string
	Generated    []GenerateResult
	Failed       map[llm.Provider]error
	Summary      *SummaryResult
	Consolidated *ConsolidateResult
}

type GenerateService interface {
	Generate(ctx context.Context, provider llm.Provider) (*GenerateResult, error)
}

type ExtractService interface {
	Extract(ctx context.Context, provider llm.Provider) (*ExtractResult, error)
}

type SummaryService interface {
	Summarize(ctx context.Context, providers []llm.Provider, useLLM bool) (*SummaryResult, error)
}

type ConsolidateService interface {
	Consolidate(ctx context.Context, provider llm.Provider) (*ConsolidateResult, error)
}

type RenderService interface {
	Render(ctx context.Context, req RenderRequest) (*RenderResult, error)
}

type PipelineService interface {
	Run(ctx context.Context) (*PipelineResult, error)
}
