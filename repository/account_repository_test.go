package repository

import (
	"context"
	"sync"
	"testing"

	"slotbot/events"
	"slotbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	repo := NewAccountRepository(testDB.DB)

	missing, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := repo.Create(ctx, "user-1", 1000)
	require.NoError(t, err)
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, int64(1000), created.Balance)
	assert.Equal(t, int64(0), created.TotalSpins)
	assert.Equal(t, int64(0), created.LastDailyAt)
	assert.Equal(t, int64(0), created.LastSpinAt)
	assert.Equal(t, 0, created.StreakDays)

	fetched, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, created.Balance, fetched.Balance)

	// The primary key forbids a second row for the same user
	_, err = repo.Create(ctx, "user-1", 1000)
	assert.Error(t, err)
}

func TestAccountRepository_ApplySpinResult(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	repo := NewAccountRepository(testDB.DB)
	_, err := repo.Create(ctx, "user-1", 1000)
	require.NoError(t, err)

	// Losing spin: bet 100, payout 40
	err = repo.ApplySpinResult(ctx, "user-1", 940, 100, 40, 1700000000000)
	require.NoError(t, err)

	account, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(940), account.Balance)
	assert.Equal(t, int64(1), account.TotalSpins)
	assert.Equal(t, int64(0), account.TotalWon)
	assert.Equal(t, int64(60), account.TotalLost)
	assert.Equal(t, int64(40), account.BiggestWin)
	assert.Equal(t, int64(1700000000000), account.LastSpinAt)

	// Winning spin: bet 100, payout 600
	err = repo.ApplySpinResult(ctx, "user-1", 1440, 100, 600, 1700000010000)
	require.NoError(t, err)

	account, err = repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1440), account.Balance)
	assert.Equal(t, int64(2), account.TotalSpins)
	assert.Equal(t, int64(500), account.TotalWon)
	assert.Equal(t, int64(60), account.TotalLost)
	assert.Equal(t, int64(600), account.BiggestWin)

	// A smaller payout never lowers the biggest win
	err = repo.ApplySpinResult(ctx, "user-1", 1540, 100, 200, 1700000020000)
	require.NoError(t, err)

	account, err = repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(600), account.BiggestWin)
}

func TestAccountRepository_ApplySpinResult_MissingAccount(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	repo := NewAccountRepository(testDB.DB)

	err := repo.ApplySpinResult(ctx, "nobody", 100, 10, 0, 1700000000000)
	assert.Error(t, err)
}

// Concurrent read-modify-write cycles through the unit of work must not lose
// updates: the row lock serializes them.
func TestAccountRepository_ConcurrentSpins_NoLostUpdates(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	repo := NewAccountRepository(testDB.DB)
	_, err := repo.Create(ctx, "user-1", 100000)
	require.NoError(t, err)

	factory := NewUnitOfWorkFactory(testDB.DB, events.NewBus())

	const spins = 20
	const bet, payout = 100, 60 // net -40 per spin

	var wg sync.WaitGroup
	errs := make(chan error, spins)
	for i := 0; i < spins; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uow := factory.Create()
			if err := uow.Begin(ctx); err != nil {
				errs <- err
				return
			}
			defer uow.Rollback()

			account, err := uow.AccountRepository().GetForUpdate(ctx, "user-1")
			if err != nil {
				errs <- err
				return
			}
			newBalance := account.Balance - bet + payout
			if err := uow.AccountRepository().ApplySpinResult(ctx, "user-1", newBalance, bet, payout, 1700000000000); err != nil {
				errs <- err
				return
			}
			errs <- uow.Commit()
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	account, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(100000-spins*(bet-payout)), account.Balance)
	assert.Equal(t, int64(spins), account.TotalSpins)
	assert.Equal(t, int64(spins*(bet-payout)), account.TotalLost)
}

func TestAccountRepository_ApplyDailyClaim(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	repo := NewAccountRepository(testDB.DB)
	_, err := repo.Create(ctx, "user-1", 1000)
	require.NoError(t, err)

	err = repo.ApplyDailyClaim(ctx, "user-1", 1500, 1700000000000, 1)
	require.NoError(t, err)

	account, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), account.Balance)
	assert.Equal(t, int64(1700000000000), account.LastDailyAt)
	assert.Equal(t, 1, account.StreakDays)
}

func TestAccountRepository_TopBalances(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	repo := NewAccountRepository(testDB.DB)

	for _, row := range []struct {
		userID  string
		balance int64
	}{
		{"user-a", 500},
		{"user-b", 9000},
		{"user-c", 500},
		{"user-d", 1200},
	} {
		_, err := repo.Create(ctx, row.userID, row.balance)
		require.NoError(t, err)
	}

	entries, err := repo.TopBalances(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "user-b", entries[0].UserID)
	assert.Equal(t, "user-d", entries[1].UserID)
	// Ties resolve by user ID
	assert.Equal(t, "user-a", entries[2].UserID)
}
