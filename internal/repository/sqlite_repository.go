package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"weekwise/backend/internal/model"
	"weekwise/backend/internal/plan"
)

// Both tables are single-row documents: the board is one JSON blob keyed by a
// fixed id, and the hand-off buffer is one JSON blob that TakePlan deletes on
// read.
const singletonID = 1

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a Repository backed by an initialized SQLite
// database (see database.InitDB).
func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) LoadBoard(ctx context.Context) (*plan.Board, error) {
	query := "SELECT data FROM board WHERE id = ?"
	var data []byte
	err := r.db.QueryRowContext(ctx, query, singletonID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not load board: %w", err)
	}

	var b plan.Board
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("could not decode stored board: %w", err)
	}
	return &b, nil
}

func (r *sqliteRepository) SaveBoard(ctx context.Context, b *plan.Board) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("could not encode board: %w", err)
	}
	query := `INSERT INTO board (id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query, singletonID, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("could not save board: %w", err)
	}
	return nil
}

func (r *sqliteRepository) PutPlan(ctx context.Context, p *model.TrainingPlan) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("could not encode training plan: %w", err)
	}
	query := `INSERT INTO handoff (id, data, created_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, created_at = excluded.created_at`
	_, err = r.db.ExecContext(ctx, query, singletonID, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("could not store training plan: %w", err)
	}
	return nil
}

func (r *sqliteRepository) TakePlan(ctx context.Context) (*model.TrainingPlan, error) {
	// Read and delete in one transaction so a plan is delivered at most once
	// even with concurrent readers.
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var data []byte
	err = tx.QueryRowContext(ctx, "SELECT data FROM handoff WHERE id = ?", singletonID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not read hand-off slot: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM handoff WHERE id = ?", singletonID); err != nil {
		return nil, fmt.Errorf("could not clear hand-off slot: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit hand-off read: %w", err)
	}

	var p model.TrainingPlan
	if err := json.Unmarshal(data, &p); err != nil {
		// A malformed payload is logged and dropped, not surfaced: the board
		// must still come up with its defaults intact.
		slog.Warn("Discarding malformed plan in hand-off slot", "error", err)
		return nil, ErrNotFound
	}
	return &p, nil
}
