package scheduler

import (
	"strings"
	"time"
)

// Placeholder is shown wherever a post has no usable title.
const Placeholder = "N/A"

// PostRef is the scheduler's view of a post: only its display title.
type PostRef struct {
	Title string
}

// Label returns the trimmed title, or Placeholder when empty.
func (p PostRef) Label() string {
	if t := strings.TrimSpace(p.Title); t != "" {
		return t
	}
	return Placeholder
}

// CalendarItem is one post placed in a slot.
type CalendarItem struct {
	Time       string `json:"time"`
	PostNumber int    `json:"post_number"`
	Content    string `json:"content"`
}

// CalendarEntry is a publication day with at least one post.
type CalendarEntry struct {
	Day     string         `json:"day"`
	Date    time.Time      `json:"date"`
	Entries []CalendarItem `json:"entries"`
}

type CalendarOptions struct {
	Slots  SlotTable
	Locale Locale
}

// DefaultCalendarOptions uses the business-day slot table and English labels.
func DefaultCalendarOptions() CalendarOptions {
	return CalendarOptions{Slots: DefaultSlotTable(), Locale: LocaleEN}
}

// BuildCalendar places posts, in input order, into the slot table starting at
// start (inclusive). Days are walked forward one at a time; on each day the
// matching slots are filled in time order until every post is placed. Post
// numbers are 1-based positions in posts.
//
// An empty or malformed slot table falls back to DefaultSlotTable.
func BuildCalendar(start time.Time, posts []PostRef, opts CalendarOptions) []CalendarEntry {
	calendar := []CalendarEntry{}
	if len(posts) == 0 {
		return calendar
	}

	slots := opts.Slots
	if slots.Validate() != nil {
		slots = DefaultSlotTable()
	}
	locale := opts.Locale.orDefault()
	byDay := slots.byWeekday()

	day := DateOnly(start)
	next := 0
	for next < len(posts) {
		daySlots := byDay[day.Weekday()]
		if len(daySlots) > 0 {
			entry := CalendarEntry{Day: locale.DayLabel(day), Date: day}
			for _, slot := range daySlots {
				if next == len(posts) {
					break
				}
				entry.Entries = append(entry.Entries, CalendarItem{
					Time:       slot.Time,
					PostNumber: next + 1,
					Content:    posts[next].Label(),
				})
				next++
			}
			calendar = append(calendar, entry)
		}
		day = day.AddDate(0, 0, 1)
	}
	return calendar
}

// PostCount returns the number of posts placed across the calendar.
func PostCount(calendar []CalendarEntry) int {
	n := 0
	for _, entry := range calendar {
		n += len(entry.Entries)
	}
	return n
}

// LastDate returns the latest calendar date, or the zero time for an empty calendar.
func LastDate(calendar []CalendarEntry) time.Time {
	var last time.Time
	for _, entry := range calendar {
		if entry.Date.After(last) {
			last = entry.Date
		}
	}
	return last
}
