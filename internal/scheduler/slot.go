package scheduler

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// TimeLayout is the time-of-day format used by slots ("HH:MM").
const TimeLayout = "15:04"

// Slot is a weekday/time-of-day pair eligible to host one scheduled post.
type Slot struct {
	Weekday time.Weekday
	Time    string
}

// String renders the slot in the same form ParseSlot accepts, e.g. "mon@10:00".
func (s Slot) String() string {
	return fmt.Sprintf("%s@%s", strings.ToLower(s.Weekday.String()[:3]), s.Time)
}

// SlotTable is the weekly posting policy. Order in the table is irrelevant;
// slots are taken in chronological order within each week.
type SlotTable []Slot

// DefaultSlotTable posts once per business day, Monday to Friday at 10:00.
func DefaultSlotTable() SlotTable {
	return SlotTable{
		{Weekday: time.Monday, Time: "10:00"},
		{Weekday: time.Tuesday, Time: "10:00"},
		{Weekday: time.Wednesday, Time: "10:00"},
		{Weekday: time.Thursday, Time: "10:00"},
		{Weekday: time.Friday, Time: "10:00"},
	}
}

// DailySlotTable posts once per day at the given time. With this table the
// calendar pairs post i with day start+i.
func DailySlotTable(at string) SlotTable {
	table := make(SlotTable, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		table = append(table, Slot{Weekday: wd, Time: at})
	}
	return table
}

// Validate reports the first malformed slot, or an error if the table is empty.
func (t SlotTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("slot table is empty")
	}
	for i, s := range t {
		if s.Weekday < time.Sunday || s.Weekday > time.Saturday {
			return fmt.Errorf("slot %d: invalid weekday %d", i, s.Weekday)
		}
		if err := ValidateTime(s.Time); err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
	}
	return nil
}

// String joins the slots in ParseSlotTable form.
func (t SlotTable) String() string {
	parts := make([]string, len(t))
	for i, s := range t {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// byWeekday groups slots per weekday, each group sorted by time of day.
func (t SlotTable) byWeekday() [7][]Slot {
	var days [7][]Slot
	for _, s := range t {
		days[s.Weekday] = append(days[s.Weekday], s)
	}
	for i := range days {
		sort.SliceStable(days[i], func(a, b int) bool {
			return days[i][a].Time < days[i][b].Time
		})
	}
	return days
}

// ValidateTime checks that s is a 24h "HH:MM" time of day.
func ValidateTime(s string) error {
	if len(s) != len(TimeLayout) {
		return fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	if _, err := time.Parse(TimeLayout, s); err != nil {
		return fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	return nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday, "dom": time.Sunday, "domingo": time.Sunday,
	"mon": time.Monday, "monday": time.Monday, "seg": time.Monday, "segunda": time.Monday, "segunda-feira": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday, "ter": time.Tuesday, "terca": time.Tuesday, "terça": time.Tuesday, "terça-feira": time.Tuesday, "terca-feira": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday, "qua": time.Wednesday, "quarta": time.Wednesday, "quarta-feira": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday, "qui": time.Thursday, "quinta": time.Thursday, "quinta-feira": time.Thursday,
	"fri": time.Friday, "friday": time.Friday, "sex": time.Friday, "sexta": time.Friday, "sexta-feira": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday, "sab": time.Saturday, "sáb": time.Saturday, "sabado": time.Saturday, "sábado": time.Saturday,
}

// ParseWeekday accepts English or Portuguese weekday names and their
// three-letter abbreviations, case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", s)
	}
	return wd, nil
}

// ParseSlot parses "weekday@HH:MM", e.g. "wed@18:30".
func ParseSlot(s string) (Slot, error) {
	day, at, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok {
		return Slot{}, fmt.Errorf("invalid slot %q (expected weekday@HH:MM)", s)
	}
	wd, err := ParseWeekday(day)
	if err != nil {
		return Slot{}, err
	}
	at = strings.TrimSpace(at)
	if err := ValidateTime(at); err != nil {
		return Slot{}, err
	}
	return Slot{Weekday: wd, Time: at}, nil
}

// ParseSlotTable parses a comma-separated list of slots.
func ParseSlotTable(spec string) (SlotTable, error) {
	var table SlotTable
	for _, part := range strings.Split(spec, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		slot, err := ParseSlot(part)
		if err != nil {
			return nil, err
		}
		table = append(table, slot)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("slot table is empty")
	}
	return table, nil
}
