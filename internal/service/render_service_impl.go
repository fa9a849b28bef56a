package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/contentplan/internal/domain"
	"github.com/alexanderramin/contentplan/internal/importer"
	"github.com/alexanderramin/contentplan/internal/report"
	"github.com/alexanderramin/contentplan/internal/scheduler"
	"github.com/alexanderramin/contentplan/internal/store"
)

type renderService struct {
	deps     Deps
	observer UseCaseObserver
}

func NewRenderService(deps Deps, observers ...UseCaseObserver) RenderService {
	return &renderService{deps: deps.withDefaults(), observer: useCaseObserverOrNoop(observers)}
}

// Render schedules the plan's posts and writes the HTML and PDF reports.
// Both files share one timestamp.
func (s *renderService) Render(ctx context.Context, req RenderRequest) (result *RenderResult, err error) {
	ctx = ensureRunID(ctx)
	span := startStage(s.observer, "render", map[string]any{"source": req.ContentPath})
	defer func() { span.finish(ctx, err) }()

	content := req.Content
	if content == nil {
		if req.ContentPath == "" {
			return nil, fmt.Errorf("render: no content given")
		}
		var warnings []error
		content, warnings, err = importer.LoadContent(req.ContentPath)
		if err != nil {
			return nil, fmt.Errorf("loading content: %w", err)
		}
		logWarnings(s.deps, req.ContentPath, warnings)
	}

	now := s.deps.Clock.Now()
	start := req.StartDate
	if start.IsZero() {
		start = scheduler.ResolveStartDate(content.StartDate, s.deps.Clock)
	}
	settings := s.deps.Settings

	calendar, checklist := Schedule(content, start, settings)

	briefing := s.deps.optionalBriefing()
	rep := report.BuildReport(content, briefing, calendar, checklist, now, report.Options{
		ClientName:  req.ClientName,
		CompanyName: settings.CompanyName,
		LogoPath:    settings.LogoPath,
		StartDate:   start,
		Locale:      settings.Locale,
	})

	client := domain.CoalesceStr(req.ClientName, rep.ClientName)
	ts := store.Timestamp(now)
	result = &RenderResult{
		HTMLPath:  s.deps.Layout.ReportPath(req.OutDir, client, ts, "html"),
		PDFPath:   s.deps.Layout.ReportPath(req.OutDir, client, ts, "pdf"),
		Calendar:  calendar,
		Checklist: checklist,
	}

	var html bytes.Buffer
	if err := report.WriteHTML(&html, rep); err != nil {
		return nil, err
	}
	if err := store.SaveBytes(result.HTMLPath, html.Bytes()); err != nil {
		return nil, err
	}

	var pdf bytes.Buffer
	if err := report.WritePDF(&pdf, rep); err != nil {
		return nil, err
	}
	if err := store.SaveBytes(result.PDFPath, pdf.Bytes()); err != nil {
		return nil, err
	}

	span.fields["posts"] = len(content.Posts)
	span.fields["days"] = len(calendar)
	return result, nil
}

// Schedule lays the plan's posts on the calendar and derives the checklist
// using the configured slots, lead days and locale.
func Schedule(content *domain.Content, start time.Time, settings Settings) ([]scheduler.CalendarEntry, []scheduler.ChecklistDayEntry) {
	var refs []scheduler.PostRef
	if content != nil {
		refs = make([]scheduler.PostRef, 0, len(content.Posts))
		for _, p := range content.Posts {
			refs = append(refs, scheduler.PostRef{Title: p.Title})
		}
	}
	calendar := scheduler.BuildCalendar(start, refs, scheduler.CalendarOptions{
		Slots:  settings.Slots,
		Locale: settings.Locale,
	})
	checklist := scheduler.BuildChecklist(calendar, scheduler.ChecklistOptions{
		PrepareLeadDays: settings.PrepareLeadDays,
		FollowUpDays:    settings.FollowUpDays,
		Locale:          settings.Locale,
	})
	return calendar, checklist
}
