package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"weekwise/backend/internal/llm"
	"weekwise/backend/internal/model"
	"weekwise/backend/internal/plan"
)

// Hand-written testify mocks for the service dependencies.

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LoadBoard(ctx context.Context) (*plan.Board, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Board), args.Error(1)
}

func (m *MockRepository) SaveBoard(ctx context.Context, b *plan.Board) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) PutPlan(ctx context.Context, p *model.TrainingPlan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) TakePlan(ctx context.Context) (*model.TrainingPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrainingPlan), args.Error(1)
}
