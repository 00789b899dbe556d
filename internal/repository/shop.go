package repository

import (
	"context"

	"github.com/modateam/shopcore/internal/domain"
)

// Shop defines the interface for shop persistence. Read methods run on the
// pool; every mutating use-case goes through a ShopTx.
type Shop interface {
	GetMemberByUsername(ctx context.Context, username string) (*domain.Member, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
	ListInventory(ctx context.Context, username string) ([]domain.OwnedItem, error)
	BeginTx(ctx context.Context) (ShopTx, error)
}

// ShopTx defines the transactional shop operations. GetMemberForUpdate takes
// a row-level write lock on the member, serializing concurrent operations on
// the same account for the lifetime of the transaction.
type ShopTx interface {
	Tx
	GetMemberForUpdate(ctx context.Context, username string) (*domain.Member, error)
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetOwnedItem(ctx context.Context, inventoryID int, username string) (*domain.OwnedItem, error)
	ListInventoryForUpdate(ctx context.Context, username string) ([]domain.OwnedItem, error)

	// AdjustGold applies a delta to the member's gold and returns the new
	// balance. The statement refuses to drive gold negative and reports
	// domain.ErrInsufficientFunds instead; callers still check the balance
	// first so that failure carries a proper message.
	AdjustGold(ctx context.Context, username string, delta int) (int, error)

	// UpdateGachaState applies the gold delta and persists the final pity
	// counter in a single statement, as the dynamic gacha requires.
	UpdateGachaState(ctx context.Context, username string, goldDelta, failCount int) (int, error)

	InsertInventoryEntry(ctx context.Context, username string, itemID int) error
	InsertInventoryEntries(ctx context.Context, username string, itemIDs []int) error
	DeleteInventoryEntry(ctx context.Context, inventoryID int, username string) error
	DeleteInventoryByUsername(ctx context.Context, username string) (int, error)
}
