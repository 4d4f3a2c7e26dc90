package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"weekwise/backend/internal/i18n"
	"weekwise/backend/internal/model"
	"weekwise/backend/internal/service"
	"weekwise/backend/internal/session"
)

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Chat(ctx context.Context, req *service.ChatRequest) (*model.GenerationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GenerationResult), args.Error(1)
}

func (m *MockChatService) GeneratePlan(ctx context.Context, prompt string, lang i18n.Language) (*model.GenerationResult, error) {
	args := m.Called(ctx, prompt, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GenerationResult), args.Error(1)
}

func TestSession_New(t *testing.T) {
	s := session.New(new(MockChatService), i18n.LangZH)

	assert.Equal(t, session.StateIdle, s.State())
	transcript := s.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, i18n.Welcome(i18n.LangZH), transcript[0].Text)
	assert.False(t, transcript[0].IsUser)
	assert.NotEmpty(t, transcript[0].ID)
	assert.Nil(t, s.Plan())
}

func TestSession_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("Plain reply appends and returns to idle", func(t *testing.T) {
		gateway := new(MockChatService)
		s := session.New(gateway, i18n.LangEN)

		gateway.On("Chat", ctx, mock.MatchedBy(func(req *service.ChatRequest) bool {
			// The history sent to the gateway must not yet contain the
			// message being sent: it is appended optimistically after the
			// snapshot is taken.
			return req.Message == "I want to train" && len(req.History) == 1
		})).Return(model.NewPlainReply("Tell me more"), nil).Once()

		result, err := s.Send(ctx, "I want to train")

		require.NoError(t, err)
		assert.Equal(t, model.PlainReply, result.Kind)
		assert.Equal(t, session.StateIdle, s.State())

		transcript := s.Transcript()
		require.Len(t, transcript, 3)
		assert.True(t, transcript[1].IsUser)
		assert.Equal(t, "I want to train", transcript[1].Text)
		assert.Equal(t, "Tell me more", transcript[2].Text)
		gateway.AssertExpectations(t)
	})

	t.Run("Gateway failure appends the apology and stays usable", func(t *testing.T) {
		gateway := new(MockChatService)
		s := session.New(gateway, i18n.LangZH)

		gateway.On("Chat", ctx, mock.Anything).Return(nil, assert.AnError).Once()

		_, err := s.Send(ctx, "hello")

		require.Error(t, err)
		assert.Equal(t, session.StateIdle, s.State())

		transcript := s.Transcript()
		require.Len(t, transcript, 3)
		// The user's message stays in the transcript even though the call
		// failed.
		assert.Equal(t, "hello", transcript[1].Text)
		assert.Equal(t, i18n.Apology(i18n.LangZH), transcript[2].Text)

		// The session accepts the next message.
		gateway.On("Chat", ctx, mock.Anything).Return(model.NewPlainReply("ok"), nil).Once()
		_, err = s.Send(ctx, "try again")
		assert.NoError(t, err)
	})

	t.Run("Structured plan completes the session", func(t *testing.T) {
		gateway := new(MockChatService)
		s := session.New(gateway, i18n.LangEN)

		generated := &model.TrainingPlan{Title: "Final Plan"}
		gateway.On("Chat", ctx, mock.Anything).
			Return(model.NewStructuredPlan("here you go", generated), nil).Once()

		result, err := s.Send(ctx, "make my plan")

		require.NoError(t, err)
		assert.Equal(t, model.StructuredPlan, result.Kind)
		assert.Equal(t, session.StateCompleted, s.State())
		assert.Equal(t, generated, s.Plan())
	})

	t.Run("Completed is terminal", func(t *testing.T) {
		gateway := new(MockChatService)
		s := session.New(gateway, i18n.LangEN)

		gateway.On("Chat", ctx, mock.Anything).
			Return(model.NewStructuredPlan("done", &model.TrainingPlan{}), nil).Once()
		_, err := s.Send(ctx, "plan please")
		require.NoError(t, err)

		_, err = s.Send(ctx, "one more thing")
		assert.ErrorIs(t, err, session.ErrCompleted)
		// No further gateway call was made.
		gateway.AssertNumberOfCalls(t, "Chat", 1)
	})

	t.Run("Send while a reply is pending is rejected", func(t *testing.T) {
		gateway := new(MockChatService)
		s := session.New(gateway, i18n.LangEN)

		// Re-enter Send from inside the gateway call to observe the
		// awaiting-reply state.
		var reentrantErr error
		gateway.On("Chat", ctx, mock.Anything).
			Return(model.NewPlainReply("ok"), nil).
			Run(func(mock.Arguments) {
				_, reentrantErr = s.Send(ctx, "impatient")
			}).Once()

		_, err := s.Send(ctx, "hello")
		require.NoError(t, err)
		assert.ErrorIs(t, reentrantErr, session.ErrBusy)
	})

	t.Run("Transcript feeds back as role-tagged history", func(t *testing.T) {
		gateway := new(MockChatService)
		s := session.New(gateway, i18n.LangEN)

		gateway.On("Chat", ctx, mock.Anything).Return(model.NewPlainReply("first reply"), nil).Once()
		_, err := s.Send(ctx, "first message")
		require.NoError(t, err)

		gateway.On("Chat", ctx, mock.MatchedBy(func(req *service.ChatRequest) bool {
			h := req.History
			return len(h) == 3 &&
				h[0].Role == "assistant" && // welcome
				h[1].Role == "user" && h[1].Content == "first message" &&
				h[2].Role == "assistant" && h[2].Content == "first reply"
		})).Return(model.NewPlainReply("second reply"), nil).Once()

		_, err = s.Send(ctx, "second message")
		require.NoError(t, err)
		gateway.AssertExpectations(t)
	})
}
