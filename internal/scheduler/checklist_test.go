package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tasksFor collects (date, type) pairs for a single post.
func tasksFor(checklist []ChecklistDayEntry, postNumber int) map[TaskType]time.Time {
	out := map[TaskType]time.Time{}
	for _, day := range checklist {
		for _, task := range day.Tasks {
			if task.PostNumber == postNumber {
				out[task.Type] = day.Date
			}
		}
	}
	return out
}

func TestBuildChecklist_MonWedFri(t *testing.T) {
	cal := BuildCalendar(date(2025, 7, 14), refs("A", "B", "C"), CalendarOptions{Slots: monWedFri()})
	checklist := BuildChecklist(cal, DefaultChecklistOptions())

	a := tasksFor(checklist, 1)
	assert.Equal(t, date(2025, 7, 14), a[TaskPrepare], "prepare clamps to first calendar day")
	assert.Equal(t, date(2025, 7, 14), a[TaskPost])
	assert.Equal(t, date(2025, 7, 14), a[TaskRespondComments])
	assert.Equal(t, date(2025, 7, 15), a[TaskRespondCommentsSecondPass])

	b := tasksFor(checklist, 2)
	assert.Equal(t, date(2025, 7, 15), b[TaskPrepare])
	assert.Equal(t, date(2025, 7, 16), b[TaskPost])
	assert.Equal(t, date(2025, 7, 17), b[TaskRespondCommentsSecondPass])

	// 14, 15, 16, 17, 18, 19
	require.Len(t, checklist, 6)
	assert.Equal(t, "Monday, 14/07", checklist[0].Day)
	assert.Equal(t, "Saturday, 19/07", checklist[5].Day)
}

func TestBuildChecklist_ProcessingOrderWithinDay(t *testing.T) {
	cal := BuildCalendar(date(2025, 7, 14), refs("A", "B", "C"), CalendarOptions{Slots: monWedFri()})
	checklist := BuildChecklist(cal, DefaultChecklistOptions())

	day1 := checklist[0].Tasks
	require.Len(t, day1, 3)
	assert.Equal(t, TaskPrepare, day1[0].Type)
	assert.Equal(t, TaskPost, day1[1].Type)
	assert.Equal(t, TaskRespondComments, day1[2].Type)

	// Post A's second pass is recorded before post B's preparation.
	day2 := checklist[1].Tasks
	require.Len(t, day2, 2)
	assert.Equal(t, ChecklistTask{Type: TaskRespondCommentsSecondPass, PostNumber: 1, Title: "A"}, day2[0])
	assert.Equal(t, ChecklistTask{Type: TaskPrepare, PostNumber: 2, Title: "B"}, day2[1])
}

func TestBuildChecklist_CustomOffsets(t *testing.T) {
	cal := BuildCalendar(date(2025, 7, 14), refs("A", "B", "C", "D"), CalendarOptions{Slots: monWedFri()})
	checklist := BuildChecklist(cal, ChecklistOptions{PrepareLeadDays: 3, FollowUpDays: 2})

	d := tasksFor(checklist, 4)
	assert.Equal(t, date(2025, 7, 18), d[TaskPrepare])
	assert.Equal(t, date(2025, 7, 21), d[TaskPost])
	assert.Equal(t, date(2025, 7, 23), d[TaskRespondCommentsSecondPass])

	b := tasksFor(checklist, 2)
	assert.Equal(t, date(2025, 7, 14), b[TaskPrepare], "16/07 minus three days clamps to 14/07")
}

func TestBuildChecklist_NonPositiveOffsetsUseDefaults(t *testing.T) {
	cal := BuildCalendar(date(2025, 7, 14), refs("A", "B"), CalendarOptions{Slots: monWedFri()})

	assert.Equal(t,
		BuildChecklist(cal, DefaultChecklistOptions()),
		BuildChecklist(cal, ChecklistOptions{PrepareLeadDays: 0, FollowUpDays: -2}))
}

func TestBuildChecklist_EmptyCalendar(t *testing.T) {
	checklist := BuildChecklist(nil, DefaultChecklistOptions())
	assert.NotNil(t, checklist)
	assert.Empty(t, checklist)
}

func TestBuildChecklist_PortugueseLabels(t *testing.T) {
	cal := BuildCalendar(date(2024, 7, 26), refs("A"), CalendarOptions{Slots: DailySlotTable("10:00"), Locale: LocalePTBR})
	checklist := BuildChecklist(cal, ChecklistOptions{Locale: LocalePTBR})

	require.Len(t, checklist, 2)
	assert.Equal(t, "Sexta-feira, 26/07", checklist[0].Day)
	assert.Equal(t, "Sábado, 27/07", checklist[1].Day)
	assert.Equal(t, "Postar", LocalePTBR.TaskLabel(checklist[0].Tasks[1].Type))
}

func TestBuildChecklist_Idempotent(t *testing.T) {
	cal := BuildCalendar(date(2025, 7, 14), refs("A", "B", "C", "D", "E"), DefaultCalendarOptions())
	assert.Equal(t, BuildChecklist(cal, DefaultChecklistOptions()), BuildChecklist(cal, DefaultChecklistOptions()))
}
