package repository

import (
	"context"
	"fmt"

	"slotbot/database"
)

// JackpotRepository provides access to the shared jackpot pool, a singleton
// row created by the initial migration.
type JackpotRepository struct {
	q queryable
}

// NewJackpotRepository creates a new jackpot repository
func NewJackpotRepository(db *database.DB) *JackpotRepository {
	return &JackpotRepository{q: db.Pool}
}

// newJackpotRepositoryWithTx creates a new jackpot repository with a transaction
func newJackpotRepositoryWithTx(tx queryable) *JackpotRepository {
	return &JackpotRepository{q: tx}
}

// Get returns the current pool amount
func (r *JackpotRepository) Get(ctx context.Context) (int64, error) {
	var amount int64
	err := r.q.QueryRow(ctx, `SELECT amount FROM jackpot WHERE id = 1`).Scan(&amount)
	if err != nil {
		return 0, fmt.Errorf("failed to get jackpot amount: %w", err)
	}
	return amount, nil
}

// Add increments the pool atomically
func (r *JackpotRepository) Add(ctx context.Context, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	result, err := r.q.Exec(ctx, `UPDATE jackpot SET amount = amount + $1 WHERE id = 1`, amount)
	if err != nil {
		return fmt.Errorf("failed to add to jackpot: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("jackpot row not found")
	}

	return nil
}

// ConsumeAndReset atomically reads the current pool amount, resets the pool
// to the seed value and returns the pre-reset amount. The row lock taken by
// the inner SELECT guarantees no two callers are paid the same pool value.
func (r *JackpotRepository) ConsumeAndReset(ctx context.Context, seed int64) (int64, error) {
	query := `
		UPDATE jackpot j
		SET amount = $1
		FROM (SELECT amount FROM jackpot WHERE id = 1 FOR UPDATE) prev
		WHERE j.id = 1
		RETURNING prev.amount
	`

	var previous int64
	if err := r.q.QueryRow(ctx, query, seed).Scan(&previous); err != nil {
		return 0, fmt.Errorf("failed to consume jackpot: %w", err)
	}

	return previous, nil
}
