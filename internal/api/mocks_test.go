package api_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"weekwise/backend/internal/i18n"
	"weekwise/backend/internal/model"
	"weekwise/backend/internal/plan"
	"weekwise/backend/internal/service"
)

// Hand-written testify mocks for the service interfaces the handlers depend
// on.

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

type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) Get(ctx context.Context) (*plan.Board, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Board), args.Error(1)
}

func (m *MockBoardService) EditDay(ctx context.Context, slot plan.Slot, field plan.Field, value string) (*plan.Board, error) {
	args := m.Called(ctx, slot, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Board), args.Error(1)
}

func (m *MockBoardService) SetTitle(ctx context.Context, title string) (*plan.Board, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Board), args.Error(1)
}

func (m *MockBoardService) ToggleCompleted(ctx context.Context, slot plan.Slot) (*plan.Board, error) {
	args := m.Called(ctx, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Board), args.Error(1)
}
