package model

import "encoding/json"

// ChatMessage is one turn of a conversation transcript. The slice order is the
// chronological order of the conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TrainingDay describes the workout for a single calendar weekday. Day is a
// display label in the plan's language (e.g. "周一" or "Monday") and is only
// used for matching against the canonical weekday dictionaries.
type TrainingDay struct {
	Day      string `json:"day"`
	Content  string `json:"content"`
	Duration string `json:"duration"`
	Notes    string `json:"notes"`
}

// TrainingStrategy is one of the short titled recommendations shown under the
// schedule table.
type TrainingStrategy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TrainingPlan is the structured object the model is instructed to emit.
// A plan is either absent or fully populated; there is no partial state.
type TrainingPlan struct {
	Title      string             `json:"title"`
	Subtitle   string             `json:"subtitle"`
	Schedule   []TrainingDay      `json:"schedule"`
	Tips       []string           `json:"tips"`
	Strategies []TrainingStrategy `json:"strategies"`
}

// ResultKind tags the two variants of a model completion.
type ResultKind int

const (
	// PlainReply means the completion did not match the schema and was
	// absorbed as free conversational text.
	PlainReply ResultKind = iota
	// StructuredPlan means the completion carried a training plan.
	StructuredPlan
)

// GenerationResult is the outcome of one gateway call. The schema-mismatch
// fallback is a first-class variant, not an error: a completion that is not
// valid plan JSON becomes a PlainReply carrying the raw text untouched.
type GenerationResult struct {
	Kind     ResultKind
	Response string
	Plan     *TrainingPlan // non-nil only when Kind is StructuredPlan
}

// NewPlainReply wraps raw completion text as a plan-less result.
func NewPlainReply(text string) *GenerationResult {
	return &GenerationResult{Kind: PlainReply, Response: text}
}

// NewStructuredPlan wraps a schema-compliant completion.
func NewStructuredPlan(response string, plan *TrainingPlan) *GenerationResult {
	return &GenerationResult{Kind: StructuredPlan, Response: response, Plan: plan}
}

// generationWire is the HTTP body shape shared by both gateway endpoints.
// trainingPlan is null for a plain reply, so callers can always assume the
// {response, trainingPlan} shape on a 200.
type generationWire struct {
	Response     string        `json:"response"`
	TrainingPlan *TrainingPlan `json:"trainingPlan"`
}

func (r *GenerationResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(generationWire{Response: r.Response, TrainingPlan: r.Plan})
}

func (r *GenerationResult) UnmarshalJSON(data []byte) error {
	var w generationWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.TrainingPlan != nil {
		*r = *NewStructuredPlan(w.Response, w.TrainingPlan)
	} else {
		*r = *NewPlainReply(w.Response)
	}
	return nil
}
