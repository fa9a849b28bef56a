package scheduler

import (
	"sort"
	"time"
)

// TaskType is a recurring operational task derived from a scheduled post.
type TaskType string

const (
	TaskPrepare                   TaskType = "prepare"
	TaskPost                      TaskType = "post"
	TaskRespondComments           TaskType = "respond_comments"
	TaskRespondCommentsSecondPass TaskType = "respond_comments_second_pass"
)

type ChecklistTask struct {
	Type       TaskType `json:"type"`
	PostNumber int      `json:"post_number"`
	Title      string   `json:"title"`
}

type ChecklistDayEntry struct {
	Day   string          `json:"day"`
	Date  time.Time       `json:"date"`
	Tasks []ChecklistTask `json:"tasks"`
}

type ChecklistOptions struct {
	// PrepareLeadDays is how many days before posting the Prepare task falls.
	// Values below 1 use the default.
	PrepareLeadDays int
	// FollowUpDays is how many days after posting the second comment pass falls.
	// Values below 1 use the default.
	FollowUpDays int
	Locale       Locale
}

const (
	DefaultPrepareLeadDays = 1
	DefaultFollowUpDays    = 1
)

func DefaultChecklistOptions() ChecklistOptions {
	return ChecklistOptions{
		PrepareLeadDays: DefaultPrepareLeadDays,
		FollowUpDays:    DefaultFollowUpDays,
		Locale:          LocaleEN,
	}
}

// BuildChecklist derives the day-by-day task list for a calendar. Each post
// yields Prepare (lead days before, never before the first calendar day),
// Post and RespondComments (on the post day) and a second comment pass
// (follow-up days after). Days come out chronologically; within a day tasks
// keep the order in which posts were processed.
func BuildChecklist(calendar []CalendarEntry, opts ChecklistOptions) []ChecklistDayEntry {
	checklist := []ChecklistDayEntry{}
	if len(calendar) == 0 {
		return checklist
	}

	lead := opts.PrepareLeadDays
	if lead < 1 {
		lead = DefaultPrepareLeadDays
	}
	followUp := opts.FollowUpDays
	if followUp < 1 {
		followUp = DefaultFollowUpDays
	}
	locale := opts.Locale.orDefault()

	first := DateOnly(calendar[0].Date)
	for _, entry := range calendar[1:] {
		if d := DateOnly(entry.Date); d.Before(first) {
			first = d
		}
	}

	index := map[string]int{}
	add := func(date time.Time, task ChecklistTask) {
		key := date.Format(DateLayout)
		i, ok := index[key]
		if !ok {
			i = len(checklist)
			index[key] = i
			checklist = append(checklist, ChecklistDayEntry{Day: locale.DayLabel(date), Date: date})
		}
		checklist[i].Tasks = append(checklist[i].Tasks, task)
	}

	for _, entry := range calendar {
		day := DateOnly(entry.Date)
		for _, item := range entry.Entries {
			prepare := day.AddDate(0, 0, -lead)
			if prepare.Before(first) {
				prepare = first
			}
			add(prepare, ChecklistTask{Type: TaskPrepare, PostNumber: item.PostNumber, Title: item.Content})
			add(day, ChecklistTask{Type: TaskPost, PostNumber: item.PostNumber, Title: item.Content})
			add(day, ChecklistTask{Type: TaskRespondComments, PostNumber: item.PostNumber, Title: item.Content})
			add(day.AddDate(0, 0, followUp), ChecklistTask{Type: TaskRespondCommentsSecondPass, PostNumber: item.PostNumber, Title: item.Content})
		}
	}

	sort.SliceStable(checklist, func(i, j int) bool {
		return checklist[i].Date.Before(checklist[j].Date)
	})
	return checklist
}
