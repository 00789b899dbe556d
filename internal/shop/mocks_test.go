package shop

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/modateam/shopcore/internal/domain"
	"github.com/modateam/shopcore/internal/repository"
)

// MockRepository implements repository.Shop for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetMemberByUsername(ctx context.Context, username string) (*domain.Member, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockRepository) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockRepository) ListInventory(ctx context.Context, username string) ([]domain.OwnedItem, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnedItem), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.ShopTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.ShopTx), args.Error(1)
}

// MockTx implements repository.ShopTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) GetMemberForUpdate(ctx context.Context, username string) (*domain.Member, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockTx) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockTx) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockTx) GetOwnedItem(ctx context.Context, inventoryID int, username string) (*domain.OwnedItem, error) {
	args := m.Called(ctx, inventoryID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OwnedItem), args.Error(1)
}

func (m *MockTx) ListInventoryForUpdate(ctx context.Context, username string) ([]domain.OwnedItem, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnedItem), args.Error(1)
}

func (m *MockTx) AdjustGold(ctx context.Context, username string, delta int) (int, error) {
	args := m.Called(ctx, username, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) UpdateGachaState(ctx context.Context, username string, goldDelta, failCount int) (int, error) {
	args := m.Called(ctx, username, goldDelta, failCount)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) InsertInventoryEntry(ctx context.Context, username string, itemID int) error {
	args := m.Called(ctx, username, itemID)
	return args.Error(0)
}

func (m *MockTx) InsertInventoryEntries(ctx context.Context, username string, itemIDs []int) error {
	args := m.Called(ctx, username, itemIDs)
	return args.Error(0)
}

func (m *MockTx) DeleteInventoryEntry(ctx context.Context, inventoryID int, username string) error {
	args := m.Called(ctx, inventoryID, username)
	return args.Error(0)
}

func (m *MockTx) DeleteInventoryByUsername(ctx context.Context, username string) (int, error) {
	args := m.Called(ctx, username)
	return args.Int(0), args.Error(1)
}

// MockCatalog implements catalog.Service for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockCatalog) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

// scriptedRand returns a fixed sequence of values, then repeats the last one.
type scriptedRand struct {
	values []int
	pos    int
}

func (s *scriptedRand) Intn(n int) int {
	v := s.values[s.pos]
	if s.pos < len(s.values)-1 {
		s.pos++
	}
	if v >= n {
		v = n - 1
	}
	return v
}
