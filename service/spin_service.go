package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"slotbot/config"
	"slotbot/events"
	"slotbot/models"
	"slotbot/slot"
)

type spinService struct {
	uowFactory UnitOfWorkFactory
	engine     *slot.Engine
}

// NewSpinService creates a new spin service
func NewSpinService(uowFactory UnitOfWorkFactory, engine *slot.Engine) SpinService {
	return &spinService{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Spin runs one paid spin plus any free spins it unlocks. The whole spin
// executes inside a single transaction with the account row locked, so
// concurrent spins from the same user serialize and a rejected spin leaves
// every durable value untouched.
func (s *spinService) Spin(ctx context.Context, userID string, bet int64, now time.Time) (*models.SpinReport, error) {
	if bet <= 0 {
		return nil, ErrInvalidBet
	}

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
		// Primary key on user_id prevents duplicate accounts
		account, err = uow.AccountRepository().Create(ctx, userID, cfg.StartingBalance)
		if err != nil {
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
		uow.EventBus().Publish(events.AccountCreatedEvent{
			UserID:          userID,
			StartingBalance: cfg.StartingBalance,
		})
	}

	// Validate before any durable mutation
	if bet > account.Balance {
		return nil, &InsufficientBalanceError{Balance: account.Balance, Bet: bet}
	}
	if account.LastSpinAt > 0 {
		elapsed := now.Sub(time.UnixMilli(account.LastSpinAt))
		if elapsed < cfg.SpinCooldown {
			return nil, &CooldownError{Remaining: cfg.SpinCooldown - elapsed}
		}
	}

	// The pool grows before the paid round is evaluated, so a triggering
	// spin still contributes
	contribution := max(1, int64(math.Floor(float64(bet)*cfg.JackpotContribution)))
	if err := uow.JackpotRepository().Add(ctx, contribution); err != nil {
		return nil, fmt.Errorf("failed to add jackpot contribution: %w", err)
	}

	report := &models.SpinReport{TotalBet: bet}

	outcome, err := s.playRound(ctx, uow, userID, bet, report, false)
	if err != nil {
		return nil, err
	}
	report.FreeSpinsGranted = outcome.FreeSpins

	// Free spins run sequentially against whatever pool state the previous
	// round left behind. Scatters drawn here do not extend the chain, and a
	// zero wager contributes nothing to the pool.
	for i := 0; i < report.FreeSpinsGranted; i++ {
		if _, err := s.playRound(ctx, uow, userID, 0, report, true); err != nil {
			return nil, err
		}
	}

	report.NewBalance = account.Balance - report.TotalBet + report.TotalPayout

	if err := uow.AccountRepository().ApplySpinResult(ctx, userID, report.NewBalance, report.TotalBet, report.TotalPayout, now.UnixMilli()); err != nil {
		return nil, fmt.Errorf("failed to apply spin result: %w", err)
	}

	report.NextJackpot, err = uow.JackpotRepository().Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get jackpot amount: %w", err)
	}

	uow.EventBus().Publish(events.SpinSettledEvent{
		UserID:      userID,
		TotalBet:    report.TotalBet,
		TotalPayout: report.TotalPayout,
		NewBalance:  report.NewBalance,
		Rounds:      len(report.Rounds),
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return report, nil
}

// playRound evaluates one round against the current pool and, on a jackpot
// hit, consumes the pool back to its seed so later rounds see the reset value.
func (s *spinService) playRound(ctx context.Context, uow UnitOfWork, userID string, bet int64, report *models.SpinReport, free bool) (slot.Outcome, error) {
	pool, err := uow.JackpotRepository().Get(ctx)
	if err != nil {
		return slot.Outcome{}, fmt.Errorf("failed to get jackpot amount: %w", err)
	}

	outcome := s.engine.Evaluate(s.engine.DrawReels(), bet, pool)
	report.TotalPayout += outcome.Payout
	report.Rounds = append(report.Rounds, models.RoundResult{
		Round:   len(report.Rounds) + 1,
		Free:    free,
		Outcome: outcome,
	})

	if outcome.JackpotHit {
		won, err := uow.JackpotRepository().ConsumeAndReset(ctx, config.Get().JackpotSeed)
		if err != nil {
			return slot.Outcome{}, fmt.Errorf("failed to consume jackpot: %w", err)
		}
		uow.EventBus().Publish(events.JackpotWonEvent{UserID: userID, Amount: won})
	}

	return outcome, nil
}

// CurrentJackpot returns the current jackpot pool amount
func (s *spinService) CurrentJackpot(ctx context.Context) (int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	amount, err := uow.JackpotRepository().Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get jackpot amount: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return amount, nil
}
