package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"weekwise/backend/internal/i18n"
	"weekwise/backend/internal/interfaces"
	"weekwise/backend/internal/model"
	"weekwise/backend/internal/service"
)

// This package implements the chat loop around the gateway: a transcript with
// optimistic appends, a waiting state that blocks overlapping sends, the
// fixed apology on failure, and the terminal "completed" state once a reply
// carries a plan. The session drives the chat service directly; one session
// handles one conversation.

// State is the session's position in its lifecycle.
type State int

const (
	// StateIdle accepts the next user message.
	StateIdle State = iota
	// StateAwaitingReply has a request in flight; sends are rejected.
	StateAwaitingReply
	// StateCompleted is terminal: a plan was generated and the composer is
	// retired. There is no transition back to StateIdle.
	StateCompleted
)

var (
	// ErrBusy is returned when a send arrives while a reply is pending.
	ErrBusy = errors.New("a reply is already pending")
	// ErrCompleted is returned for sends after a plan has been generated.
	ErrCompleted = errors.New("session is completed")
)

// Entry is one transcript line as the UI shows it.
type Entry struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	IsUser bool   `json:"is_user"`
}

// Session is a single chat conversation. It is not safe for concurrent use;
// the loop is single-threaded by design, with one request in flight at most.
type Session struct {
	gateway    interfaces.ChatService
	lang       i18n.Language
	state      State
	transcript []Entry
	plan       *model.TrainingPlan
}

// New creates a session whose transcript is seeded with the localized
// welcome message.
func New(gateway interfaces.ChatService, lang i18n.Language) *Session {
	return &Session{
		gateway: gateway,
		lang:    lang,
		state:   StateIdle,
		transcript: []Entry{
			{ID: uuid.NewString(), Text: i18n.Welcome(lang), IsUser: false},
		},
	}
}

// Send appends the user's message optimistically, forwards the turn to the
// gateway, and appends either the assistant's reply or the fixed apology.
// A reply that carries a plan moves the session to StateCompleted. The
// gateway error, if any, is returned alongside the apology so the caller can
// inspect it; the transcript is already consistent either way.
func (s *Session) Send(ctx context.Context, text string) (*model.GenerationResult, error) {
	switch s.state {
	case StateAwaitingReply:
		return nil, ErrBusy
	case StateCompleted:
		return nil, ErrCompleted
	}

	history := s.history()
	s.append(text, true)
	s.state = StateAwaitingReply

	result, err := s.gateway.Chat(ctx, &service.ChatRequest{
		Message:  text,
		History:  history,
		Language: s.lang,
	})
	if err != nil {
		s.append(i18n.Apology(s.lang), false)
		s.state = StateIdle
		return nil, err
	}

	s.append(result.Response, false)
	if result.Kind == model.StructuredPlan {
		s.plan = result.Plan
		s.state = StateCompleted
	} else {
		s.state = StateIdle
	}
	return result, nil
}

// State reports the session's lifecycle position.
func (s *Session) State() State { return s.state }

// Transcript returns a copy of the conversation so far.
func (s *Session) Transcript() []Entry {
	return append([]Entry(nil), s.transcript...)
}

// Plan returns the generated plan once the session is completed, nil before.
func (s *Session) Plan() *model.TrainingPlan { return s.plan }

func (s *Session) append(text string, isUser bool) {
	s.transcript = append(s.transcript, Entry{ID: uuid.NewString(), Text: text, IsUser: isUser})
}

// history converts the transcript to role-tagged messages for the gateway.
func (s *Session) history() []model.ChatMessage {
	msgs := make([]model.ChatMessage, 0, len(s.transcript))
	for _, e := range s.transcript {
		role := "assistant"
		if e.IsUser {
			role = "user"
		}
		msgs = append(msgs, model.ChatMessage{Role: role, Content: e.Text})
	}
	return msgs
}
