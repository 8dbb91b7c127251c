package repository

import (
	"context"
	"fmt"

	"slotbot/database"
	"slotbot/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// queryable abstracts over a pool and a transaction
type queryable interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const accountColumns = `
	user_id,
	balance,
	total_spins,
	total_won,
	total_lost,
	biggest_win,
	last_daily_at,
	last_spin_at,
	streak_days,
	created_at,
	updated_at
`

// AccountRepository provides access to player ledger rows
type AccountRepository struct {
	q queryable
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *database.DB) *AccountRepository {
	return &AccountRepository{q: db.Pool}
}

// newAccountRepositoryWithTx creates a new account repository with a transaction
func newAccountRepositoryWithTx(tx queryable) *AccountRepository {
	return &AccountRepository{q: tx}
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.UserID,
		&account.Balance,
		&account.TotalSpins,
		&account.TotalWon,
		&account.TotalLost,
		&account.BiggestWin,
		&account.LastDailyAt,
		&account.LastSpinAt,
		&account.StreakDays,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByUserID retrieves an account by user ID, or nil when none exists
func (r *AccountRepository) GetByUserID(ctx context.Context, userID string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1`

	account, err := scanAccount(r.q.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account for user %s: %w", userID, err)
	}

	return account, nil
}

// GetForUpdate retrieves an account and locks its row for the remainder of
// the surrounding transaction, serializing concurrent mutations of the same
// user. Returns nil when the account does not exist.
func (r *AccountRepository) GetForUpdate(ctx context.Context, userID string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 FOR UPDATE`

	account, err := scanAccount(r.q.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock account for user %s: %w", userID, err)
	}

	return account, nil
}

// Create creates a new account with the starting balance. The primary key on
// user_id guarantees at most one row per user.
func (r *AccountRepository) Create(ctx context.Context, userID string, startingBalance int64) (*models.Account, error) {
	query := `
		INSERT INTO accounts (user_id, balance)
		VALUES ($1, $2)
		RETURNING ` + accountColumns

	account, err := scanAccount(r.q.QueryRow(ctx, query, userID, startingBalance))
	if err != nil {
		return nil, fmt.Errorf("failed to create account for user %s: %w", userID, err)
	}

	return account, nil
}

// ApplySpinResult commits the whole outcome of one spin as a single atomic
// update: new balance, spin counter, win/loss totals, biggest win and the
// cooldown timestamp.
func (r *AccountRepository) ApplySpinResult(ctx context.Context, userID string, newBalance, totalBet, totalPayout, spinAtMs int64) error {
	wonDelta := max(0, totalPayout-totalBet)
	lostDelta := max(0, totalBet-totalPayout)

	query := `
		UPDATE accounts
		SET
			balance = $1,
			total_spins = total_spins + 1,
			total_won = total_won + $2,
			total_lost = total_lost + $3,
			biggest_win = GREATEST(biggest_win, $4),
			last_spin_at = $5,
			updated_at = NOW()
		WHERE user_id = $6
	`

	result, err := r.q.Exec(ctx, query, newBalance, wonDelta, lostDelta, totalPayout, spinAtMs, userID)
	if err != nil {
		return fmt.Errorf("failed to apply spin result for user %s: %w", userID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("account for user %s not found", userID)
	}

	return nil
}

// ApplyDailyClaim credits the reward and persists the claim timestamp and the
// new streak in a single atomic update.
func (r *AccountRepository) ApplyDailyClaim(ctx context.Context, userID string, reward, claimedAtMs int64, streakDays int) error {
	query := `
		UPDATE accounts
		SET
			balance = balance + $1,
			last_daily_at = $2,
			streak_days = $3,
			updated_at = NOW()
		WHERE user_id = $4
	`

	result, err := r.q.Exec(ctx, query, reward, claimedAtMs, streakDays, userID)
	if err != nil {
		return fmt.Errorf("failed to apply daily claim for user %s: %w", userID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("account for user %s not found", userID)
	}

	return nil
}

// TopBalances returns the richest accounts, descending by balance. Ties are
// broken by user ID so the ordering is stable.
func (r *AccountRepository) TopBalances(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	query := `
		SELECT user_id, balance, total_spins, biggest_win
		FROM accounts
		ORDER BY balance DESC, user_id ASC
		LIMIT $1
	`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top balances: %w", err)
	}
	defer rows.Close()

	var entries []*models.LeaderboardEntry
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(&entry.UserID, &entry.Balance, &entry.TotalSpins, &entry.BiggestWin); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard entries: %w", err)
	}

	return entries, nil
}
