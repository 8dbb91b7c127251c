package models

import "time"

// Account is one player's durable ledger row. Timestamps for the cooldown
// and daily-claim gates are stored as Unix milliseconds, 0 meaning never.
type Account struct {
	UserID      string    `db:"user_id"`
	Balance     int64     `db:"balance"`
	TotalSpins  int64     `db:"total_spins"`
	TotalWon    int64     `db:"total_won"`
	TotalLost   int64     `db:"total_lost"`
	BiggestWin  int64     `db:"biggest_win"`
	LastDailyAt int64     `db:"last_daily_at"`
	LastSpinAt  int64     `db:"last_spin_at"`
	StreakDays  int       `db:"streak_days"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// LeaderboardEntry is one row of the balance ranking.
type LeaderboardEntry struct {
	UserID     string
	Balance    int64
	TotalSpins int64
	BiggestWin int64
}
