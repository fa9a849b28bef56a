package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/contentplan/internal/domain"
	"github.com/alexanderramin/contentplan/internal/scheduler"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleContent() *domain.Content {
	return &domain.Content{
		ClientName:            "Padaria Aurora",
		WeeklyStrategySummary: "Semana do fermento natural.",
		FutureStrategy:        "Repetir os bastidores.",
		MarketReferences: []domain.MarketReference{
			{Name: "@padocadoze", Differentials: "fornada ao vivo"},
		},
		Metrics: domain.SuccessMetrics{MainObjective: "Alcance", KeyIndicators: []string{"salvamentos"}},
		Posts: []domain.Post{
			{
				Title:             "Fermento",
				MainCaption:       "<b>Pão</b> quentinho & café",
				CaptionVariations: []string{"v1", "v2", "v3"},
				Hashtags:          []string{"#1", "#2", "#3", "#4", "#5", "#6", "#7", "#8", "#9"},
				FormatSuggestion:  "Carrossel",
				CarouselSlides:    []domain.CarouselSlide{{Title: "Capa", Text: "Pão — feito à mão"}},
				ResponseScript:    []domain.ResponseScript{{GenericComment: "Que lindo!", SuggestedReply: "Obrigado!"}},
			},
			{Title: "Bastidores", MicroScript: []domain.Scene{{Scene: "1", Description: "forno", Speech: "olha só"}}},
			{Title: "Promo"},
		},
	}
}

func buildSample(t *testing.T, locale scheduler.Locale) Report {
	t.Helper()
	content := sampleContent()
	start := date(2024, 7, 15)
	refs := make([]scheduler.PostRef, 0, len(content.Posts))
	for _, p := range content.Posts {
		refs = append(refs, scheduler.PostRef{Title: p.Title})
	}
	opts := scheduler.CalendarOptions{
		Slots: scheduler.SlotTable{
			{Weekday: time.Monday, Time: "10:00"},
			{Weekday: time.Monday, Time: "18:00"},
			{Weekday: time.Wednesday, Time: "10:00"},
		},
		Locale: locale,
	}
	cal := scheduler.BuildCalendar(start, refs, opts)
	checklist := scheduler.BuildChecklist(cal, scheduler.ChecklistOptions{Locale: locale})
	return BuildReport(content, domain.ClientBriefing{}, cal, checklist, date(2024, 7, 12),
		Options{CompanyName: "Agência Norte", StartDate: start, Locale: locale})
}

func TestBuildReport_Cover(t *testing.T) {
	r := buildSample(t, scheduler.LocalePTBR)

	assert.Equal(t, "Calendário Semanal de Conteúdo", r.Title)
	assert.Equal(t, "Padaria Aurora", r.ClientName)
	assert.Equal(t, "15/07/24 a 17/07/24", r.Period)
	assert.Equal(t, "12/07/24", r.GeneratedAt)
	assert.True(t, r.HasMetrics)
}

func TestBuildReport_CalendarAndPosts(t *testing.T) {
	r := buildSample(t, scheduler.LocaleEN)

	require.Len(t, r.Calendar, 3)
	assert.Equal(t, CalendarRow{Day: "Monday, 15/07", Time: "18:00", PostNumber: 2, Content: "Bastidores"}, r.Calendar[1])
	assert.Equal(t, []DayCount{{"Monday, 15/07", 2}, {"Wednesday, 17/07", 1}}, r.DayCounts)
	assert.True(t, r.VaryingCount)

	require.Len(t, r.Posts, 3)
	assert.Equal(t, "post-3", r.Posts[2].Anchor)
	assert.Equal(t, "Wednesday, 17/07 10:00", r.Posts[2].Schedule)
	assert.Equal(t, "15/07/24 to 17/07/24", r.Period)
}

func TestBuildReport_ChecklistDisplayOrder(t *testing.T) {
	r := buildSample(t, scheduler.LocaleEN)

	var monday []string
	for _, row := range r.Checklist {
		if row.Day == "Monday, 15/07" {
			monday = append(monday, fmt.Sprintf("%s#%d", row.Task, row.PostNumber))
		}
	}
	assert.Equal(t, []string{
		"Post#1", "Post#2", "Prepare#1", "Prepare#2",
		"Respond to comments#1", "Respond to comments#2",
	}, monday)
}

func TestBuildReport_ClientFallbacks(t *testing.T) {
	r := BuildReport(nil, domain.ClientBriefing{ClientName: "Da Briefing"}, nil, nil, date(2024, 7, 1), Options{})
	assert.Equal(t, "Da Briefing", r.ClientName)
	assert.Empty(t, r.Period)
	assert.False(t, r.HasMetrics)

	r = BuildReport(&domain.Content{ClientName: "Do Conteúdo"}, domain.ClientBriefing{}, nil, nil, date(2024, 7, 1),
		Options{ClientName: "Da Linha de Comando", StartDate: date(2024, 7, 1)})
	assert.Equal(t, "Da Linha de Comando", r.ClientName)
	assert.Equal(t, "01/07/24 to 01/07/24", r.Period)
}

func TestBuildReport_UnscheduledPostUsesPostingTime(t *testing.T) {
	content := &domain.Content{Posts: []domain.Post{{Title: "A", PostingTime: "Sexta 19h"}, {Title: "B"}}}
	r := BuildReport(content, domain.ClientBriefing{}, nil, nil, date(2024, 7, 1), Options{Locale: scheduler.LocalePTBR})

	assert.Equal(t, "Sexta 19h", r.Posts[0].Schedule)
	assert.Equal(t, "Definir", r.Posts[1].Schedule)
}

func TestSortTasksForDisplay(t *testing.T) {
	tasks := []scheduler.ChecklistTask{
		{Type: scheduler.TaskRespondCommentsSecondPass, PostNumber: 1},
		{Type: scheduler.TaskPrepare, PostNumber: 3},
		{Type: scheduler.TaskRespondComments, PostNumber: 2},
		{Type: scheduler.TaskPost, PostNumber: 2},
		{Type: scheduler.TaskPrepare, PostNumber: 2},
	}
	got := SortTasksForDisplay(tasks)

	want := []scheduler.TaskType{
		scheduler.TaskPost, scheduler.TaskPrepare, scheduler.TaskPrepare,
		scheduler.TaskRespondComments, scheduler.TaskRespondCommentsSecondPass,
	}
	for i, task := range got {
		assert.Equal(t, want[i], task.Type, i)
	}
	assert.Equal(t, 2, got[1].PostNumber)
	assert.Equal(t, scheduler.TaskRespondCommentsSecondPass, tasks[0].Type, "input untouched")
}

func TestQuickCaption(t *testing.T) {
	assert.Equal(t, "Curta\n\nv1\nv2", QuickCaption("Curta", []string{"v1", "v2", "v3"}))
	assert.Equal(t, "Sem variações", QuickCaption("Sem variações", nil))

	long := strings.Repeat("a", 320)
	assert.Equal(t, long, QuickCaption(long, []string{"ignored"}))

	tooLong := strings.Repeat("é", 600)
	got := QuickCaption(tooLong, nil)
	assert.Equal(t, strings.Repeat("é", 500)+"...", got)
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Pão quentinho & café", StripHTML("<b>Pão</b> quentinho &amp; café"))
	assert.Equal(t, "linha 1\nlinha 2", StripHTML("<p>linha 1<br/>linha 2</p>"))
	assert.Equal(t, "", StripHTML(""))
	assert.Equal(t, "texto puro", StripHTML("  texto puro "))
}

func TestBuildQuickView(t *testing.T) {
	r := buildSample(t, scheduler.LocaleEN)
	require.Len(t, r.QuickView, 3)

	card := r.QuickView[0]
	assert.Equal(t, "Fermento", card.Title)
	assert.Equal(t, "Pão quentinho & café\n\nv1\nv2", card.Caption)
	assert.Equal(t, "#1 #2 #3 #4 #5 #6 #7 #8", card.Hashtags)
	assert.Equal(t, "Carrossel", card.Format)
	assert.Equal(t, "Monday, 15/07 10:00", card.Schedule)
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, buildSample(t, scheduler.LocalePTBR)))
	out := buf.String()

	assert.Contains(t, out, `<html lang="pt-BR">`)
	assert.Contains(t, out, "Calendário Semanal de Conteúdo")
	assert.Contains(t, out, "Período 15/07/24 a 17/07/24")
	assert.Contains(t, out, `id="post-2"`)
	assert.Contains(t, out, `href="#post-1"`)
	assert.Contains(t, out, "Pão quentinho &amp; café")
	assert.Contains(t, out, "Segunda-feira, 15/07")
	assert.Contains(t, out, "Postar")
	assert.Contains(t, out, "Métricas de Sucesso Sugeridas")
	assert.NotContains(t, out, "<b>Pão</b>")
}

func TestWriteHTML_EmptySections(t *testing.T) {
	r := BuildReport(&domain.Content{}, domain.ClientBriefing{}, nil, nil, date(2024, 7, 1), Options{})
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, r))

	assert.Contains(t, buf.String(), "No publication calendar available.")
	assert.Contains(t, buf.String(), "No publication checklist available.")
	assert.NotContains(t, buf.String(), "Suggested Success Metrics")
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, buildSample(t, scheduler.LocalePTBR)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestWritePDF_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	r := BuildReport(nil, domain.ClientBriefing{}, nil, nil, date(2024, 7, 1), Options{LogoPath: "/does/not/exist.png"})
	require.NoError(t, WritePDF(&buf, r))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
