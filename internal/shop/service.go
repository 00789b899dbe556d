package shop

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/modateam/shopcore/internal/catalog"
	"github.com/modateam/shopcore/internal/domain"
	"github.com/modateam/shopcore/internal/gacha"
	"github.com/modateam/shopcore/internal/repository"
)

// Service defines the shop use-cases. Every mutating operation runs inside
// one store transaction holding a row lock on the member, so operations on
// the same account are linearized. Business outcomes (not found,
// insufficient funds, nothing to sell) come back as failed results;
// returned errors mean the store or the catalog misbehaved.
type Service interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetInventory(ctx context.Context, username string) ([]domain.OwnedItem, error)
	GetBalance(ctx context.Context, username string) (*domain.Balance, error)
	BuyItem(ctx context.Context, username string, itemID int) (*domain.PurchaseResult, error)
	SellItem(ctx context.Context, username string, inventoryID int) (*domain.SaleResult, error)
	SellAllItems(ctx context.Context, username string) (*domain.SaleResult, error)
	PlayFixedGacha(ctx context.Context, username string) (*domain.GachaResult, error)
	PlayDynamicGacha(ctx context.Context, username string, count int) (*domain.GachaResult, error)
}

type service struct {
	repo    repository.Shop
	catalog catalog.Service
	rng     gacha.Rand
	printer *message.Printer
}

// NewService creates a new shop service. The random source is injected so
// gacha behavior can be replayed deterministically in tests.
func NewService(repo repository.Shop, catalogSvc catalog.Service, rng gacha.Rand) Service {
	return &service{
		repo:    repo,
		catalog: catalogSvc,
		rng:     rng,
		printer: message.NewPrinter(language.English),
	}
}

// ListItems returns the catalog through the snapshot cache.
func (s *service) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.catalog.ListItems(ctx)
}

// GetInventory returns the member's owned items, newest first.
func (s *service) GetInventory(ctx context.Context, username string) ([]domain.OwnedItem, error) {
	owned, err := s.repo.ListInventory(ctx, username)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListInventoryFailed, err)
	}
	return owned, nil
}

// GetBalance returns the member's gold and pity counter. An unknown
// username yields a zero balance rather than an error: the endpoint is
// polled by clients before registration completes.
func (s *service) GetBalance(ctx context.Context, username string) (*domain.Balance, error) {
	member, err := s.repo.GetMemberByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return &domain.Balance{}, nil
		}
		return nil, fmt.Errorf(ErrMsgGetMemberFailed, err)
	}
	return &domain.Balance{Gold: member.Gold, GachaFailCount: member.GachaFailCount}, nil
}

// gold formats an amount with thousands separators, matching the display
// style of the original client ("12,500G").
func (s *service) gold(amount int) string {
	return s.printer.Sprintf("%d", amount)
}
