package service

import (
	"context"
	"time"

	"slotbot/events"
	"slotbot/models"
)

// AccountRepository defines the interface for ledger data access
type AccountRepository interface {
	// GetByUserID retrieves an account, or nil when none exists
	GetByUserID(ctx context.Context, userID string) (*models.Account, error)

	// GetForUpdate retrieves an account and locks its row until the
	// surrounding transaction ends; nil when none exists
	GetForUpdate(ctx context.Context, userID string) (*models.Account, error)

	// Create creates a new account with the starting balance
	Create(ctx context.Context, userID string, startingBalance int64) (*models.Account, error)

	// ApplySpinResult commits one spin's outcome as a single atomic update
	ApplySpinResult(ctx context.Context, userID string, newBalance, totalBet, totalPayout, spinAtMs int64) error

	// ApplyDailyClaim credits the reward and persists streak state atomically
	ApplyDailyClaim(ctx context.Context, userID string, reward, claimedAtMs int64, streakDays int) error

	// TopBalances returns the richest accounts, descending by balance
	TopBalances(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error)
}

// JackpotRepository defines the interface for the shared jackpot pool
type JackpotRepository interface {
	// Get returns the current pool amount
	Get(ctx context.Context) (int64, error)

	// Add increments the pool atomically
	Add(ctx context.Context, amount int64) error

	// ConsumeAndReset returns the pre-reset pool amount and resets the pool
	// to seed; no two callers can be paid the same pool value
	ConsumeAndReset(ctx context.Context, seed int64) (int64, error)
}

// EventPublisher publishes events that are held until the unit of work commits
type EventPublisher interface {
	Publish(e events.Event)
}

// UnitOfWork scopes repositories and event publication to one transaction
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AccountRepository() AccountRepository
	JackpotRepository() JackpotRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// SpinService defines the interface for running spins
type SpinService interface {
	// Spin runs one paid spin plus any free spins it unlocks and commits
	// the net result to the ledger
	Spin(ctx context.Context, userID string, bet int64, now time.Time) (*models.SpinReport, error)

	// CurrentJackpot returns the current jackpot pool amount
	CurrentJackpot(ctx context.Context) (int64, error)
}

// AccountService defines the interface for ledger operations
type AccountService interface {
	// GetOrCreateAccount retrieves an existing account or creates one with
	// the starting balance
	GetOrCreateAccount(ctx context.Context, userID string) (*models.Account, error)

	// ClaimDaily grants the daily reward and advances the streak
	ClaimDaily(ctx context.Context, userID string, now time.Time) (*models.DailyClaimResult, error)

	// TopBalances returns the balance leaderboard
	TopBalances(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error)
}
