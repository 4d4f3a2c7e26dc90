package repository

import (
	"context"

	"weekwise/backend/internal/model"
	"weekwise/backend/internal/plan"
)

// Repository persists the plan board and the one-shot hand-off buffer.
//
// The hand-off buffer is a single slot: PutPlan overwrites whatever is there
// (last write wins) and TakePlan consumes it, so a stored plan is delivered
// at most once.
type Repository interface {
	// LoadBoard returns the saved board, or ErrNotFound if none was saved yet.
	LoadBoard(ctx context.Context) (*plan.Board, error)
	// SaveBoard replaces the saved board.
	SaveBoard(ctx context.Context, b *plan.Board) error

	// PutPlan stores a generated plan in the hand-off slot.
	PutPlan(ctx context.Context, p *model.TrainingPlan) error
	// TakePlan removes and returns the buffered plan. ErrNotFound means the
	// slot is empty; a malformed stored payload is also reported as
	// ErrNotFound after being logged and cleared, never as a failure.
	TakePlan(ctx context.Context) (*model.TrainingPlan, error)
}
