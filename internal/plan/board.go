package plan

import (
	"fmt"

	"weekwise/backend/internal/model"
)

// Day is the editable content of one weekday slot. Unlike
// model.TrainingDay it carries no label: the slot key is the identity.
type Day struct {
	Content  string `json:"content"`
	Duration string `json:"duration"`
	Notes    string `json:"notes"`
}

// Field names one editable field of a Day.
type Field string

const (
	FieldContent  Field = "content"
	FieldDuration Field = "duration"
	FieldNotes    Field = "notes"
)

// ParseField resolves a raw field name from a request.
func ParseField(raw string) (Field, bool) {
	switch Field(raw) {
	case FieldContent, FieldDuration, FieldNotes:
		return Field(raw), true
	}
	return "", false
}

// Board is the editable state behind the printable poster: the seven
// canonical weekday slots, the title, the tips and strategies lists, and the
// per-day completion flags. Completion flags are independent of day content.
// There is no edit history; last write wins.
type Board struct {
	Title      string                   `json:"title"`
	Days       map[Slot]Day             `json:"days"`
	Completed  map[Slot]bool            `json:"completed"`
	Tips       []string                 `json:"tips"`
	Strategies []model.TrainingStrategy `json:"strategies"`
}

// Apply merges a generated training plan into the board:
//   - a non-empty title replaces the current one;
//   - each schedule entry is mapped through the weekday dictionaries and
//     overwrites its slot's content, duration and notes as a unit; entries
//     with an unrecognized day label are skipped, not fatal;
//   - tips and strategies are replaced wholesale only when non-empty, so an
//     absent list leaves the previous one untouched.
//
// The returned slice holds the day labels that could not be matched, for the
// caller to log.
func (b *Board) Apply(p *model.TrainingPlan) []string {
	if p == nil {
		return nil
	}

	if p.Title != "" {
		b.Title = p.Title
	}

	var skipped []string
	for _, entry := range p.Schedule {
		slot, ok := SlotForLabel(entry.Day)
		if !ok {
			skipped = append(skipped, entry.Day)
			continue
		}
		b.Days[slot] = Day{
			Content:  entry.Content,
			Duration: entry.Duration,
			Notes:    entry.Notes,
		}
	}

	if len(p.Tips) > 0 {
		b.Tips = append([]string(nil), p.Tips...)
	}
	if len(p.Strategies) > 0 {
		b.Strategies = append([]model.TrainingStrategy(nil), p.Strategies...)
	}

	return skipped
}

// Edit is a pending single-field change. The board is untouched until
// Confirm; Cancel discards the staged value. This mirrors the poster's
// in-place cell editing, where escape reverts and submit or focus loss
// commits.
type Edit struct {
	board   *Board
	slot    Slot
	field   Field
	pending string
	done    bool
}

// BeginEdit stages an edit of one field of one day. The staged value starts
// as the field's current content.
func (b *Board) BeginEdit(slot Slot, field Field) (*Edit, error) {
	day, ok := b.Days[slot]
	if !ok {
		return nil, fmt.Errorf("unknown day slot %q", slot)
	}
	e := &Edit{board: b, slot: slot, field: field}
	switch field {
	case FieldContent:
		e.pending = day.Content
	case FieldDuration:
		e.pending = day.Duration
	case FieldNotes:
		e.pending = day.Notes
	default:
		return nil, fmt.Errorf("unknown field %q", field)
	}
	return e, nil
}

// Set replaces the staged value.
func (e *Edit) Set(value string) { e.pending = value }

// Confirm writes the staged value to the board. Only the edited field
// changes; the other two fields of the day keep their values.
func (e *Edit) Confirm() {
	if e.done {
		return
	}
	day := e.board.Days[e.slot]
	switch e.field {
	case FieldContent:
		day.Content = e.pending
	case FieldDuration:
		day.Duration = e.pending
	case FieldNotes:
		day.Notes = e.pending
	}
	e.board.Days[e.slot] = day
	e.done = true
}

// Cancel drops the staged value without touching the board.
func (e *Edit) Cancel() { e.done = true }

// SetField edits a single field through the begin/confirm protocol.
func (b *Board) SetField(slot Slot, field Field, value string) error {
	e, err := b.BeginEdit(slot, field)
	if err != nil {
		return err
	}
	e.Set(value)
	e.Confirm()
	return nil
}

// SetTitle overwrites the poster title.
func (b *Board) SetTitle(title string) { b.Title = title }

// ToggleCompleted flips one day's completion flag and returns the new value.
func (b *Board) ToggleCompleted(slot Slot) (bool, error) {
	if _, ok := b.Completed[slot]; !ok {
		return false, fmt.Errorf("unknown day slot %q", slot)
	}
	b.Completed[slot] = !b.Completed[slot]
	return b.Completed[slot], nil
}
