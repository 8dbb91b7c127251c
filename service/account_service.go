package service

import (
	"context"
	"fmt"
	"time"

	"slotbot/config"
	"slotbot/events"
	"slotbot/models"
)

// dailyInterval is the minimum wall-clock gap between two daily claims.
const dailyInterval = 24 * time.Hour

type accountService struct {
	uowFactory UnitOfWorkFactory
}

// NewAccountService creates a new account service
func NewAccountService(uowFactory UnitOfWorkFactory) AccountService {
	return &accountService{
		uowFactory: uowFactory,
	}
}

// GetOrCreateAccount retrieves an existing account or creates one with the
// starting balance.
func (s *accountService) GetOrCreateAccount(ctx context.Context, userID string) (*models.Account, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	account, err := uow.AccountRepository().GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if account == nil {
		// Primary key on user_id prevents duplicate accounts
		account, err = uow.AccountRepository().Create(ctx, userID, config.Get().StartingBalance)
		if err != nil {
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
		uow.EventBus().Publish(events.AccountCreatedEvent{
			UserID:          userID,
			StartingBalance: account.Balance,
		})
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return account, nil
}

// ClaimDaily grants the daily reward once per 24 hours. The reward scales
// with the streak held before the claim, and the streak advances by calendar
// date: a claim the day after the previous one extends it, a claim after a
// longer gap restarts it at 1.
func (s *accountService) ClaimDaily(ctx context.Context, userID string, now time.Time) (*models.DailyClaimResult, error) {
	cfg := config.Get()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	account, err := uow.AccountRepository().GetForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		account, err = uow.AccountRepository().Create(ctx, userID, cfg.StartingBalance)
		if err != nil {
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
		uow.EventBus().Publish(events.AccountCreatedEvent{
			UserID:          userID,
			StartingBalance: account.Balance,
		})
	}

	// Validate before any durable mutation
	if account.LastDailyAt > 0 {
		elapsed := now.Sub(time.UnixMilli(account.LastDailyAt))
		if elapsed < dailyInterval {
			return nil, &DailyNotReadyError{Remaining: dailyInterval - elapsed}
		}
	}

	reward := cfg.DailyReward + int64(account.StreakDays)*cfg.DailyStreakBonus
	streak := nextStreakDays(account.LastDailyAt, account.StreakDays, now)

	if err := uow.AccountRepository().ApplyDailyClaim(ctx, userID, reward, now.UnixMilli(), streak); err != nil {
		return nil, fmt.Errorf("failed to apply daily claim: %w", err)
	}

	uow.EventBus().Publish(events.DailyClaimedEvent{
		UserID: userID,
		Amount: reward,
		Streak: streak,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.DailyClaimResult{
		Amount:     reward,
		Streak:     streak,
		NewBalance: account.Balance + reward,
	}, nil
}

// TopBalances returns the balance leaderboard
func (s *accountService) TopBalances(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	entries, err := uow.AccountRepository().TopBalances(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top balances: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return entries, nil
}

// nextStreakDays computes the streak that results from claiming at now,
// comparing calendar dates rather than elapsed time: a last claim dated
// yesterday extends the streak, one dated today leaves it unchanged, and
// anything older restarts it.
func nextStreakDays(lastDailyAtMs int64, streakDays int, now time.Time) int {
	if lastDailyAtMs <= 0 {
		return 1
	}

	last := time.UnixMilli(lastDailyAtMs).In(now.Location())

	switch {
	case sameDate(last, now):
		return streakDays
	case sameDate(last, now.AddDate(0, 0, -1)):
		return streakDays + 1
	default:
		return 1
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
