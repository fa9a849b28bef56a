package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/contentplan/internal/report"
	"github.com/alexanderramin/contentplan/internal/scheduler"
)

const titleColumnWidth = 48

// FormatCalendar renders the publication calendar as one row per post.
func FormatCalendar(calendar []scheduler.CalendarEntry) string {
	var b strings.Builder
	b.WriteString(Header("Calendar"))
	b.WriteString("\n")
	if len(calendar) == 0 {
		b.WriteString(Dim("No posts to schedule."))
		b.WriteString("\n")
		return b.String()
	}

	var rows [][]string
	for _, entry := range calendar {
		for i, item := range entry.Entries {
			day := entry.Day
			if i > 0 {
				day = ""
			}
			rows = append(rows, []string{day, item.Time, fmt.Sprintf("#%d", item.PostNumber), Truncate(item.Content, titleColumnWidth)})
		}
	}
	b.WriteString(RenderTable([]string{"DAY", "TIME", "POST", "TITLE"}, rows))
	fmt.Fprintf(&b, "%s\n", Dim(fmt.Sprintf("%s over %s", Plural(scheduler.PostCount(calendar), "post"), Plural(len(calendar), "day"))))
	return b.String()
}

// FormatChecklist renders the day-by-day tasks in display order.
func FormatChecklist(checklist []scheduler.ChecklistDayEntry, locale scheduler.Locale) string {
	var b strings.Builder
	b.WriteString(Header("Checklist"))
	b.WriteString("\n")
	if len(checklist) == 0 {
		b.WriteString(Dim("No tasks."))
		b.WriteString("\n")
		return b.String()
	}

	var rows [][]string
	for _, day := range checklist {
		for i, task := range report.SortTasksForDisplay(day.Tasks) {
			label := day.Day
			if i > 0 {
				label = ""
			}
			rows = append(rows, []string{label, "☐ " + locale.TaskLabel(task.Type), fmt.Sprintf("#%d", task.PostNumber), Truncate(task.Title, titleColumnWidth)})
		}
	}
	b.WriteString(RenderTable([]string{"DAY", "TASK", "POST", "TITLE"}, rows))
	return b.String()
}
