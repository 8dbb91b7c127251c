package service

import (
	"context"

	"slotbot/events"
	"slotbot/models"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetByUserID(ctx context.Context, userID string) (*models.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) GetForUpdate(ctx context.Context, userID string) (*models.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, userID string, startingBalance int64) (*models.Account, error) {
	args := m.Called(ctx, userID, startingBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplySpinResult(ctx context.Context, userID string, newBalance, totalBet, totalPayout, spinAtMs int64) error {
	args := m.Called(ctx, userID, newBalance, totalBet, totalPayout, spinAtMs)
	return args.Error(0)
}

func (m *MockAccountRepository) ApplyDailyClaim(ctx context.Context, userID string, reward, claimedAtMs int64, streakDays int) error {
	args := m.Called(ctx, userID, reward, claimedAtMs, streakDays)
	return args.Error(0)
}

func (m *MockAccountRepository) TopBalances(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LeaderboardEntry), args.Error(1)
}

// MockJackpotRepository is a mock implementation of JackpotRepository
type MockJackpotRepository struct {
	mock.Mock
}

func (m *MockJackpotRepository) Get(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJackpotRepository) Add(ctx context.Context, amount int64) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

func (m *MockJackpotRepository) ConsumeAndReset(ctx context.Context, seed int64) (int64, error) {
	args := m.Called(ctx, seed)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher. It records
// published events for assertions instead of going through testify's
// expectation machinery, since most tests only care that nothing leaked.
type MockEventPublisher struct {
	Published []events.Event
}

func (m *MockEventPublisher) Publish(e events.Event) {
	m.Published = append(m.Published, e)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	accountRepo AccountRepository
	jackpotRepo JackpotRepository
	publisher   EventPublisher
}

// SetRepositories wires the repositories returned by the getter methods
func (m *MockUnitOfWork) SetRepositories(accountRepo AccountRepository, jackpotRepo JackpotRepository, publisher EventPublisher) {
	m.accountRepo = accountRepo
	m.jackpotRepo = jackpotRepo
	m.publisher = publisher
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) AccountRepository() AccountRepository {
	return m.accountRepo
}

func (m *MockUnitOfWork) JackpotRepository() JackpotRepository {
	return m.jackpotRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.publisher
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
