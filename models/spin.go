package models

import "slotbot/slot"

// RoundResult is one evaluated round inside a spin: the paid round or one of
// the free spins it unlocked.
type RoundResult struct {
	Round   int // 1-based position within the spin
	Free    bool
	Outcome slot.Outcome
}

// SpinReport is the aggregated result of one paid spin plus its free spins
// (returned to the user).
type SpinReport struct {
	TotalBet         int64
	TotalPayout      int64
	Rounds           []RoundResult
	FreeSpinsGranted int
	NewBalance       int64
	NextJackpot      int64
}

// Net returns the player's profit or loss for the whole spin.
func (r *SpinReport) Net() int64 {
	return r.TotalPayout - r.TotalBet
}

// DailyClaimResult is the outcome of a granted daily reward (returned to the
// user).
type DailyClaimResult struct {
	Amount     int64
	Streak     int
	NewBalance int64
}
