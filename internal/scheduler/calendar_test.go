package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monWedFri() SlotTable {
	return SlotTable{
		{Weekday: time.Monday, Time: "10:00"},
		{Weekday: time.Wednesday, Time: "10:00"},
		{Weekday: time.Friday, Time: "10:00"},
	}
}

func refs(titles ...string) []PostRef {
	out := make([]PostRef, len(titles))
	for i, t := range titles {
		out[i] = PostRef{Title: t}
	}
	return out
}

func TestBuildCalendar_MonWedFri(t *testing.T) {
	cal := BuildCalendar(date(2025, 7, 14), refs("A", "B", "C"), CalendarOptions{Slots: monWedFri()})

	require.Len(t, cal, 3)
	assert.Equal(t, "Monday, 14/07", cal[0].Day)
	assert.Equal(t, "Wednesday, 16/07", cal[1].Day)
	assert.Equal(t, "Friday, 18/07", cal[2].Day)

	for i, want := range []string{"A", "B", "C"} {
		require.Len(t, cal[i].Entries, 1)
		assert.Equal(t, want, cal[i].Entries[0].Content)
		assert.Equal(t, i+1, cal[i].Entries[0].PostNumber)
		assert.Equal(t, "10:00", cal[i].Entries[0].Time)
	}
}

func TestBuildCalendar_WrapsIntoNextWeek(t *testing.T) {
	cal := BuildCalendar(date(2025, 7, 14), refs("A", "B", "C", "D"), CalendarOptions{Slots: monWedFri()})

	require.Len(t, cal, 4)
	assert.Equal(t, date(2025, 7, 21), cal[3].Date)
	assert.Equal(t, "Monday, 21/07", cal[3].Day)
	assert.Equal(t, 4, cal[3].Entries[0].PostNumber)
	assert.Equal(t, "D", cal[3].Entries[0].Content)
}

func TestBuildCalendar_StartMidWeek(t *testing.T) {
	// Thursday start: first slot is Friday, then the following Monday.
	cal := BuildCalendar(date(2025, 7, 17), refs("A", "B"), CalendarOptions{Slots: monWedFri()})

	require.Len(t, cal, 2)
	assert.Equal(t, date(2025, 7, 18), cal[0].Date)
	assert.Equal(t, date(2025, 7, 21), cal[1].Date)
}

func TestBuildCalendar_SeveralSlotsPerDaySortedByTime(t *testing.T) {
	slots := SlotTable{
		{Weekday: time.Monday, Time: "18:30"},
		{Weekday: time.Monday, Time: "09:00"},
	}
	cal := BuildCalendar(date(2025, 7, 14), refs("A", "B", "C"), CalendarOptions{Slots: slots})

	require.Len(t, cal, 2)
	require.Len(t, cal[0].Entries, 2)
	assert.Equal(t, "09:00", cal[0].Entries[0].Time)
	assert.Equal(t, "A", cal[0].Entries[0].Content)
	assert.Equal(t, "18:30", cal[0].Entries[1].Time)
	assert.Equal(t, "B", cal[0].Entries[1].Content)
	assert.Equal(t, date(2025, 7, 21), cal[1].Date)
	assert.Len(t, cal[1].Entries, 1)
}

func TestBuildCalendar_DailyTableIsOnePerDay(t *testing.T) {
	start := date(2025, 7, 14)
	cal := BuildCalendar(start, refs("A", "B", "C", "D", "E", "F", "G", "H"), CalendarOptions{Slots: DailySlotTable("12:00")})

	require.Len(t, cal, 8)
	for i, entry := range cal {
		assert.Equal(t, start.AddDate(0, 0, i), entry.Date)
	}
}

func TestBuildCalendar_EmptyPosts(t *testing.T) {
	cal := BuildCalendar(date(2025, 7, 14), nil, DefaultCalendarOptions())
	assert.NotNil(t, cal)
	assert.Empty(t, cal)
}

func TestBuildCalendar_MissingTitleUsesPlaceholder(t *testing.T) {
	cal := BuildCalendar(date(2025, 7, 14), refs("", "  "), DefaultCalendarOptions())

	require.Len(t, cal, 2)
	assert.Equal(t, Placeholder, cal[0].Entries[0].Content)
	assert.Equal(t, Placeholder, cal[1].Entries[0].Content)
}

func TestBuildCalendar_EmptyTableFallsBackToDefault(t *testing.T) {
	withEmpty := BuildCalendar(date(2025, 7, 12), refs("A", "B"), CalendarOptions{})
	withDefault := BuildCalendar(date(2025, 7, 12), refs("A", "B"), DefaultCalendarOptions())

	assert.Equal(t, withDefault, withEmpty)
	// Saturday start: default table skips the weekend.
	assert.Equal(t, date(2025, 7, 14), withEmpty[0].Date)
}

func TestBuildCalendar_MalformedTableFallsBackToDefault(t *testing.T) {
	cal := BuildCalendar(date(2025, 7, 14), refs("A"), CalendarOptions{Slots: SlotTable{{Weekday: time.Monday, Time: "25:99"}}})

	require.Len(t, cal, 1)
	assert.Equal(t, "10:00", cal[0].Entries[0].Time)
}

func TestBuildCalendar_PortugueseLabels(t *testing.T) {
	cal := BuildCalendar(date(2024, 7, 26), refs("A"), CalendarOptions{Slots: DailySlotTable("10:00"), Locale: LocalePTBR})

	require.Len(t, cal, 1)
	assert.Equal(t, "Sexta-feira, 26/07", cal[0].Day)
}

func TestBuildCalendar_IgnoresStartTimeOfDay(t *testing.T) {
	start := time.Date(2025, 7, 14, 23, 45, 0, 0, time.UTC)
	cal := BuildCalendar(start, refs("A"), CalendarOptions{Slots: monWedFri()})

	require.Len(t, cal, 1)
	assert.Equal(t, date(2025, 7, 14), cal[0].Date)
}

func TestBuildCalendar_Idempotent(t *testing.T) {
	posts := refs("A", "B", "C", "D", "E", "F", "G")
	first := BuildCalendar(date(2025, 7, 14), posts, CalendarOptions{Slots: monWedFri()})
	second := BuildCalendar(date(2025, 7, 14), posts, CalendarOptions{Slots: monWedFri()})
	assert.Equal(t, first, second)
}

func TestPostCountAndLastDate(t *testing.T) {
	cal := BuildCalendar(date(2025, 7, 14), refs("A", "B", "C", "D"), CalendarOptions{Slots: monWedFri()})

	assert.Equal(t, 4, PostCount(cal))
	assert.Equal(t, date(2025, 7, 21), LastDate(cal))
	assert.True(t, LastDate(nil).IsZero())
}
