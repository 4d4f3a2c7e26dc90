package plan

import (
	"strings"

	"weekwise/backend/internal/i18n"
)

// Slot is one of the seven canonical weekday keys the board always maintains.
type Slot string

const (
	Monday    Slot = "monday"
	Tuesday   Slot = "tuesday"
	Wednesday Slot = "wednesday"
	Thursday  Slot = "thursday"
	Friday    Slot = "friday"
	Saturday  Slot = "saturday"
	Sunday    Slot = "sunday"
)

// Slots returns the canonical weekday keys in calendar order.
func Slots() []Slot {
	return []Slot{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ParseSlot resolves a raw slot key (e.g. from a URL) to a canonical Slot.
func ParseSlot(raw string) (Slot, bool) {
	s := Slot(strings.ToLower(raw))
	for _, known := range Slots() {
		if s == known {
			return s, true
		}
	}
	return "", false
}

// weekdayLabels is the closed-set dictionary mapping a plan's display labels
// onto canonical slots, one entry per supported language. The tables are
// static data; TestWeekdayLabelsComplete guarantees every language covers all
// seven slots.
var weekdayLabels = map[i18n.Language]map[string]Slot{
	i18n.LangZH: {
		"周一": Monday,
		"周二": Tuesday,
		"周三": Wednesday,
		"周四": Thursday,
		"周五": Friday,
		"周六": Saturday,
		"周日": Sunday,
	},
	i18n.LangEN: {
		"monday":    Monday,
		"tuesday":   Tuesday,
		"wednesday": Wednesday,
		"thursday":  Thursday,
		"friday":    Friday,
		"saturday":  Saturday,
		"sunday":    Sunday,
	},
}

// SlotForLabel matches a schedule entry's day label against the union of all
// language dictionaries. The model's response language is not guaranteed to
// match the request language, so matching per-language would drop valid
// entries; the union is unambiguous because no label collides across
// languages. English labels match case-insensitively.
func SlotForLabel(label string) (Slot, bool) {
	if slot, ok := weekdayLabels[i18n.LangZH][label]; ok {
		return slot, true
	}
	if slot, ok := weekdayLabels[i18n.LangEN][strings.ToLower(strings.TrimSpace(label))]; ok {
		return slot, true
	}
	return "", false
}

// LabelsFor exposes a language's dictionary for validation in tests.
func LabelsFor(lang i18n.Language) map[string]Slot {
	return weekdayLabels[lang]
}
