// Package report turns a consolidated plan plus its calendar and checklist
// into the HTML and PDF deliverables.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/contentplan/internal/domain"
	"github.com/alexanderramin/contentplan/internal/scheduler"
)

const periodLayout = "02/01/06"

type Options struct {
	ClientName  string
	CompanyName string
	LogoPath    string
	StartDate   time.Time
	Locale      scheduler.Locale
}

// Report is the view model shared by the HTML and PDF writers.
type Report struct {
	Labels      Labels
	Title       string
	ClientName  string
	Period      string
	CompanyName string
	LogoPath    string
	GeneratedAt string

	StrategySummary  string
	FutureStrategy   string
	MarketReferences []domain.MarketReference

	Calendar     []CalendarRow
	DayCounts    []DayCount
	Posts        []PostSection
	Metrics      domain.SuccessMetrics
	HasMetrics   bool
	Checklist    []ChecklistRow
	QuickView    []QuickCard
	VaryingCount bool
}

type CalendarRow struct {
	Day        string
	Time       string
	PostNumber int
	Content    string
}

type DayCount struct {
	Day   string
	Count int
}

type ChecklistRow struct {
	Day        string
	Task       string
	PostNumber int
	Title      string
}

// PostSection is one post with its scheduled slot resolved.
type PostSection struct {
	Number   int
	Anchor   string
	Schedule string
	Post     domain.Post
}

// BuildReport assembles the view model. The period runs from the start
// date (or the first calendar day) to the last calendar day.
func BuildReport(content *domain.Content, briefing domain.ClientBriefing, calendar []scheduler.CalendarEntry,
	checklist []scheduler.ChecklistDayEntry, generatedAt time.Time, opts Options) Report {
	if content == nil {
		content = &domain.Content{}
	}
	labels := LabelsFor(opts.Locale)

	r := Report{
		Labels:           labels,
		Title:            labels.CoverTitle,
		ClientName:       domain.CoalesceStr(opts.ClientName, content.ClientName, briefing.ClientName, "Cliente"),
		Period:           formatPeriod(opts.StartDate, calendar, labels),
		CompanyName:      opts.CompanyName,
		LogoPath:         opts.LogoPath,
		GeneratedAt:      generatedAt.Format(periodLayout),
		StrategySummary:  content.WeeklyStrategySummary,
		FutureStrategy:   content.FutureStrategy,
		MarketReferences: content.MarketReferences,
		Metrics:          content.Metrics,
		HasMetrics:       !content.Metrics.IsZero(),
	}

	schedule := scheduleByPost(calendar)
	for _, entry := range calendar {
		r.DayCounts = append(r.DayCounts, DayCount{Day: entry.Day, Count: len(entry.Entries)})
		for _, item := range entry.Entries {
			r.Calendar = append(r.Calendar, CalendarRow{
				Day:        entry.Day,
				Time:       item.Time,
				PostNumber: item.PostNumber,
				Content:    item.Content,
			})
		}
	}
	r.VaryingCount = countsVary(r.DayCounts)

	for i, p := range content.Posts {
		n := i + 1
		r.Posts = append(r.Posts, PostSection{
			Number:   n,
			Anchor:   fmt.Sprintf("post-%d", n),
			Schedule: domain.CoalesceStr(schedule[n], p.PostingTime, labels.ToBeDefined),
			Post:     p,
		})
	}
	r.QuickView = BuildQuickView(r.Posts)

	locale := opts.Locale
	if locale.Name == "" {
		locale = scheduler.LocaleEN
	}
	for _, day := range checklist {
		for _, task := range SortTasksForDisplay(day.Tasks) {
			r.Checklist = append(r.Checklist, ChecklistRow{
				Day:        day.Day,
				Task:       locale.TaskLabel(task.Type),
				PostNumber: task.PostNumber,
				Title:      task.Title,
			})
		}
	}
	return r
}

func formatPeriod(start time.Time, calendar []scheduler.CalendarEntry, labels Labels) string {
	end := scheduler.LastDate(calendar)
	if start.IsZero() {
		if len(calendar) == 0 {
			return ""
		}
		start = calendar[0].Date
	}
	if end.IsZero() {
		end = start
	}
	return fmt.Sprintf("%s %s %s", start.Format(periodLayout), labels.PeriodSeparator, end.Format(periodLayout))
}

func scheduleByPost(calendar []scheduler.CalendarEntry) map[int]string {
	out := make(map[int]string)
	for _, entry := range calendar {
		for _, item := range entry.Entries {
			out[item.PostNumber] = strings.TrimSpace(entry.Day + " " + item.Time)
		}
	}
	return out
}

func countsVary(counts []DayCount) bool {
	for i := 1; i < len(counts); i++ {
		if counts[i].Count != counts[0].Count {
			return true
		}
	}
	return false
}

var displayRank = map[scheduler.TaskType]int{
	scheduler.TaskPost:                      0,
	scheduler.TaskPrepare:                   1,
	scheduler.TaskRespondComments:           2,
	scheduler.TaskRespondCommentsSecondPass: 3,
}

// SortTasksForDisplay orders a day's tasks as Post, Prepare, Respond,
// Respond (2nd pass); ties keep post order. The input is not modified.
func SortTasksForDisplay(tasks []scheduler.ChecklistTask) []scheduler.ChecklistTask {
	out := append([]scheduler.ChecklistTask(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(out[i].Type), rank(out[j].Type)
		if ri != rj {
			return ri < rj
		}
		return out[i].PostNumber < out[j].PostNumber
	})
	return out
}

func rank(t scheduler.TaskType) int {
	if r, ok := displayRank[t]; ok {
		return r
	}
	return len(displayRank)
}
