package interfaces

import (
	"context"

	"weekwise/backend/internal/i18n"
	"weekwise/backend/internal/model"
	"weekwise/backend/internal/plan"
	"weekwise/backend/internal/service"
)

// This file defines the interfaces for our core services. The API layer and
// the chat session depend on these instead of the concrete implementations,
// which keeps them decoupled and mockable in tests.

// ChatService is the contract of the prompt/response gateway core.
type ChatService interface {
	Chat(ctx context.Context, req *service.ChatRequest) (*model.GenerationResult, error)
	GeneratePlan(ctx context.Context, prompt string, lang i18n.Language) (*model.GenerationResult, error)
}

// BoardService is the contract of the plan board operations.
type BoardService interface {
	Get(ctx context.Context) (*plan.Board, error)
	EditDay(ctx context.Context, slot plan.Slot, field plan.Field, value string) (*plan.Board, error)
	SetTitle(ctx context.Context, title string) (*plan.Board, error)
	ToggleCompleted(ctx context.Context, slot plan.Slot) (*plan.Board, error)
}
