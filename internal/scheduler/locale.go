package scheduler

import (
	"fmt"
	"strings"
	"time"
)

// Locale carries the labels used for day headings and checklist tasks.
type Locale struct {
	Name       string
	Weekdays   [7]string // indexed by time.Weekday
	TaskLabels map[TaskType]string
}

var LocaleEN = Locale{
	Name:     "en",
	Weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	TaskLabels: map[TaskType]string{
		TaskPrepare:                   "Prepare",
		TaskPost:                      "Post",
		TaskRespondComments:           "Respond to comments",
		TaskRespondCommentsSecondPass: "Respond to comments (2nd pass)",
	},
}

var LocalePTBR = Locale{
	Name:     "pt-BR",
	Weekdays: [7]string{"Domingo", "Segunda-feira", "Terça-feira", "Quarta-feira", "Quinta-feira", "Sexta-feira", "Sábado"},
	TaskLabels: map[TaskType]string{
		TaskPrepare:                   "Preparar",
		TaskPost:                      "Postar",
		TaskRespondComments:           "Responder comentários",
		TaskRespondCommentsSecondPass: "Responder 2ª vez comentários",
	},
}

// LookupLocale resolves a locale by name ("en", "pt", "pt-BR"). Unknown names
// resolve to English.
func LookupLocale(name string) Locale {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pt", "pt-br", "pt_br":
		return LocalePTBR
	default:
		return LocaleEN
	}
}

// DayLabel renders "Weekday, DD/MM".
func (l Locale) DayLabel(d time.Time) string {
	return fmt.Sprintf("%s, %02d/%02d", l.weekday(d.Weekday()), d.Day(), int(d.Month()))
}

// TaskLabel returns the display name for a task type.
func (l Locale) TaskLabel(t TaskType) string {
	if label, ok := l.TaskLabels[t]; ok {
		return label
	}
	if label, ok := LocaleEN.TaskLabels[t]; ok {
		return label
	}
	return string(t)
}

func (l Locale) weekday(wd time.Weekday) string {
	if name := l.Weekdays[wd]; name != "" {
		return name
	}
	return LocaleEN.Weekdays[wd]
}

func (l Locale) orDefault() Locale {
	if l.Name == "" {
		return LocaleEN
	}
	return l
}
