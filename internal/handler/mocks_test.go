package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/modateam/shopcore/internal/domain"
)

// MockShopService implements shop.Service for handler testing
type MockShopService struct {
	mock.Mock
}

func (m *MockShopService) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockShopService) GetInventory(ctx context.Context, username string) ([]domain.OwnedItem, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnedItem), args.Error(1)
}

func (m *MockShopService) GetBalance(ctx context.Context, username string) (*domain.Balance, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockShopService) BuyItem(ctx context.Context, username string, itemID int) (*domain.PurchaseResult, error) {
	args := m.Called(ctx, username, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseResult), args.Error(1)
}

func (m *MockShopService) SellItem(ctx context.Context, username string, inventoryID int) (*domain.SaleResult, error) {
	args := m.Called(ctx, username, inventoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleResult), args.Error(1)
}

func (m *MockShopService) SellAllItems(ctx context.Context, username string) (*domain.SaleResult, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleResult), args.Error(1)
}

func (m *MockShopService) PlayFixedGacha(ctx context.Context, username string) (*domain.GachaResult, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GachaResult), args.Error(1)
}

func (m *MockShopService) PlayDynamicGacha(ctx context.Context, username string, count int) (*domain.GachaResult, error) {
	args := m.Called(ctx, username, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GachaResult), args.Error(1)
}
