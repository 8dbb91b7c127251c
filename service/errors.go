package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidBet rejects non-positive wagers before any state is touched.
var ErrInvalidBet = errors.New("bet must be positive")

// InsufficientBalanceError rejects a spin whose wager exceeds the balance.
// No durable state is mutated.
type InsufficientBalanceError struct {
	Balance int64
	Bet     int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: have %d, need %d", e.Balance, e.Bet)
}

// CooldownError rejects a spin that arrives before the cooldown has elapsed.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("spin cooldown active: %s remaining", e.Remaining)
}

// DailyNotReadyError rejects a daily claim made less than 24h after the last.
type DailyNotReadyError struct {
	Remaining time.Duration
}

func (e *DailyNotReadyError) Error() string {
	return fmt.Sprintf("daily reward not ready: %s remaining", e.Remaining)
}
