package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	app_errors "weekwise/backend/internal/errors"
	"weekwise/backend/internal/plan"
	"weekwise/backend/internal/repository"
)

// BoardService owns the editable plan board: loading it (seeding defaults on
// first use), consuming the hand-off buffer, and applying edits. Every
// mutation is persisted before it is reported back.
type BoardService struct {
	repo repository.Repository
}

func NewBoardService(repo repository.Repository) *BoardService {
	return &BoardService{repo: repo}
}

// Get returns the current board. If a generated plan is waiting in the
// hand-off slot it is merged in first and the slot cleared, so the plan is
// consumed exactly once. A board that was never saved starts from the
// built-in defaults.
func (s *BoardService) Get(ctx context.Context) (*plan.Board, error) {
	board, err := s.repo.LoadBoard(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("could not load board: %w", err)
		}
		board = plan.DefaultBoard()
	}

	pending, err := s.repo.TakePlan(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("could not consume hand-off slot: %w", err)
		}
		return board, nil
	}

	skipped := board.Apply(pending)
	for _, label := range skipped {
		slog.Warn("No weekday mapping for schedule entry, skipping", "day", label)
	}
	if err := s.repo.SaveBoard(ctx, board); err != nil {
		return nil, fmt.Errorf("could not save merged board: %w", err)
	}
	return board, nil
}

// EditDay overwrites a single field of one weekday slot.
func (s *BoardService) EditDay(ctx context.Context, slot plan.Slot, field plan.Field, value string) (*plan.Board, error) {
	return s.mutate(ctx, func(b *plan.Board) error {
		if err := b.SetField(slot, field, value); err != nil {
			return app_errors.New(app_errors.TypeValidation, err)
		}
		return nil
	})
}

// SetTitle overwrites the poster title.
func (s *BoardService) SetTitle(ctx context.Context, title string) (*plan.Board, error) {
	return s.mutate(ctx, func(b *plan.Board) error {
		b.SetTitle(title)
		return nil
	})
}

// ToggleCompleted flips one day's completion checkbox.
func (s *BoardService) ToggleCompleted(ctx context.Context, slot plan.Slot) (*plan.Board, error) {
	return s.mutate(ctx, func(b *plan.Board) error {
		if _, err := b.ToggleCompleted(slot); err != nil {
			return app_errors.New(app_errors.TypeValidation, err)
		}
		return nil
	})
}

// mutate loads the board (merging any pending plan), applies fn, and
// persists the result.
func (s *BoardService) mutate(ctx context.Context, fn func(*plan.Board) error) (*plan.Board, error) {
	board, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(board); err != nil {
		return nil, err
	}
	if err := s.repo.SaveBoard(ctx, board); err != nil {
		return nil, fmt.Errorf("could not save board: %w", err)
	}
	return board, nil
}
