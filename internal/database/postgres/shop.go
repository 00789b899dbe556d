package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/modateam/shopcore/internal/domain"
	"github.com/modateam/shopcore/internal/repository"
)

// ShopRepository implements the shop repository for PostgreSQL
type ShopRepository struct {
	db *pgxpool.Pool
}

// NewShopRepository creates a new ShopRepository
func NewShopRepository(db *pgxpool.Pool) *ShopRepository {
	return &ShopRepository{db: db}
}

// ShopTx implements repository.ShopTx
type ShopTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *ShopRepository) BeginTx(ctx context.Context) (repository.ShopTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &ShopTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *ShopTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *ShopTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetMemberByUsername retrieves a member without locking
func (r *ShopRepository) GetMemberByUsername(ctx context.Context, username string) (*domain.Member, error) {
	return getMember(ctx, r.db, username, false)
}

// GetMemberForUpdate retrieves a member with a row-level write lock.
// Concurrent operations on the same member block here until commit.
func (t *ShopTx) GetMemberForUpdate(ctx context.Context, username string) (*domain.Member, error) {
	return getMember(ctx, t.tx, username, true)
}

func getMember(ctx context.Context, q querier, username string, forUpdate bool) (*domain.Member, error) {
	sql := `SELECT username, name, gold, gacha_fail_count FROM members WHERE username = $1`
	if forUpdate {
		sql += ` FOR UPDATE`
	}

	var m domain.Member
	err := q.QueryRow(ctx, sql, username).Scan(&m.Username, &m.Name, &m.Gold, &m.GachaFailCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return &m, nil
}

// ListItems retrieves the full catalog ordered by ascending price
func (r *ShopRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	return listItems(ctx, r.db)
}

// ListItems for Tx
func (t *ShopTx) ListItems(ctx context.Context) ([]domain.Item, error) {
	return listItems(ctx, t.tx)
}

func listItems(ctx context.Context, q querier) ([]domain.Item, error) {
	rows, err := q.Query(ctx,
		`SELECT id, name, description, image_url, price, rarity, gacha_weight
		 FROM items ORDER BY price ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.ImageURL, &it.Price, &it.Rarity, &it.GachaWeight); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

// GetItemByID retrieves an item by id
func (r *ShopRepository) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	return getItemByID(ctx, r.db, itemID)
}

// GetItemByID for Tx
func (t *ShopTx) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	return getItemByID(ctx, t.tx, itemID)
}

func getItemByID(ctx context.Context, q querier, itemID int) (*domain.Item, error) {
	var it domain.Item
	err := q.QueryRow(ctx,
		`SELECT id, name, description, image_url, price, rarity, gacha_weight
		 FROM items WHERE id = $1`, itemID).
		Scan(&it.ID, &it.Name, &it.Description, &it.ImageURL, &it.Price, &it.Rarity, &it.GachaWeight)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Return nil if item not found
		}
		return nil, fmt.Errorf("failed to get item by id: %w", err)
	}
	return &it, nil
}

// ListInventory retrieves the member's inventory joined to catalog items,
// newest acquisitions first
func (r *ShopRepository) ListInventory(ctx context.Context, username string) ([]domain.OwnedItem, error) {
	return listInventory(ctx, r.db, username, false)
}

// ListInventoryForUpdate locks the member's inventory rows for the
// duration of the transaction (sell-all path)
func (t *ShopTx) ListInventoryForUpdate(ctx context.Context, username string) ([]domain.OwnedItem, error) {
	return listInventory(ctx, t.tx, username, true)
}

func listInventory(ctx context.Context, q querier, username string, forUpdate bool) ([]domain.OwnedItem, error) {
	sql := `SELECT inv.id, inv.item_id, i.name, i.description, i.image_url, i.price, i.rarity, inv.acquired_at
		FROM inventory inv
		JOIN items i ON i.id = inv.item_id
		WHERE inv.username = $1
		ORDER BY inv.acquired_at DESC`
	if forUpdate {
		sql += ` FOR UPDATE OF inv`
	}

	rows, err := q.Query(ctx, sql, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	var owned []domain.OwnedItem
	for rows.Next() {
		var o domain.OwnedItem
		if err := rows.Scan(&o.InventoryID, &o.ItemID, &o.Name, &o.Description, &o.ImageURL, &o.Price, &o.Rarity, &o.AcquiredAt); err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		owned = append(owned, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	return owned, nil
}

// GetOwnedItem retrieves one inventory row joined to its item, scoped to
// the owning member
func (t *ShopTx) GetOwnedItem(ctx context.Context, inventoryID int, username string) (*domain.OwnedItem, error) {
	var o domain.OwnedItem
	err := t.tx.QueryRow(ctx,
		`SELECT inv.id, inv.item_id, i.name, i.description, i.image_url, i.price, i.rarity, inv.acquired_at
		 FROM inventory inv
		 JOIN items i ON i.id = inv.item_id
		 WHERE inv.id = $1 AND inv.username = $2`, inventoryID, username).
		Scan(&o.InventoryID, &o.ItemID, &o.Name, &o.Description, &o.ImageURL, &o.Price, &o.Rarity, &o.AcquiredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Return nil if not owned
		}
		return nil, fmt.Errorf("failed to get owned item: %w", err)
	}
	return &o, nil
}

// AdjustGold applies a delta to the member's gold. The guard clause keeps
// the balance non-negative at the statement level; the service checks the
// balance beforehand so this is the backstop, not the primary check.
func (t *ShopTx) AdjustGold(ctx context.Context, username string, delta int) (int, error) {
	var newGold int
	err := t.tx.QueryRow(ctx,
		`UPDATE members SET gold = gold + $1
		 WHERE username = $2 AND gold + $1 >= 0
		 RETURNING gold`, delta, username).Scan(&newGold)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if delta < 0 {
				return 0, domain.ErrInsufficientFunds
			}
			return 0, domain.ErrMemberNotFound
		}
		return 0, fmt.Errorf("failed to adjust gold: %w", err)
	}
	return newGold, nil
}

// UpdateGachaState debits gold and persists the pity counter in one statement
func (t *ShopTx) UpdateGachaState(ctx context.Context, username string, goldDelta, failCount int) (int, error) {
	var newGold int
	err := t.tx.QueryRow(ctx,
		`UPDATE members SET gold = gold + $1, gacha_fail_count = $2
		 WHERE username = $3 AND gold + $1 >= 0
		 RETURNING gold`, goldDelta, failCount, username).Scan(&newGold)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if goldDelta < 0 {
				return 0, domain.ErrInsufficientFunds
			}
			return 0, domain.ErrMemberNotFound
		}
		return 0, fmt.Errorf("failed to update gacha state: %w", err)
	}
	return newGold, nil
}

// InsertInventoryEntry adds one ownership record
func (t *ShopTx) InsertInventoryEntry(ctx context.Context, username string, itemID int) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO inventory (username, item_id) VALUES ($1, $2)`, username, itemID)
	if err != nil {
		return fmt.Errorf("failed to insert inventory entry: %w", err)
	}
	return nil
}

// InsertInventoryEntries adds ownership records in bulk (dynamic gacha)
func (t *ShopTx) InsertInventoryEntries(ctx context.Context, username string, itemIDs []int) error {
	if len(itemIDs) == 0 {
		return nil
	}

	rows := make([][]any, len(itemIDs))
	for i, id := range itemIDs {
		rows[i] = []any{username, id}
	}

	_, err := t.tx.CopyFrom(ctx,
		pgx.Identifier{"inventory"},
		[]string{"username", "item_id"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert inventory entries: %w", err)
	}
	return nil
}

// DeleteInventoryEntry removes one ownership record, scoped to the owner
func (t *ShopTx) DeleteInventoryEntry(ctx context.Context, inventoryID int, username string) error {
	tag, err := t.tx.Exec(ctx,
		`DELETE FROM inventory WHERE id = $1 AND username = $2`, inventoryID, username)
	if err != nil {
		return fmt.Errorf("failed to delete inventory entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotInInventory
	}
	return nil
}

// DeleteInventoryByUsername removes every ownership record for the member
// and returns the number removed
func (t *ShopTx) DeleteInventoryByUsername(ctx context.Context, username string) (int, error) {
	tag, err := t.tx.Exec(ctx,
		`DELETE FROM inventory WHERE username = $1`, username)
	if err != nil {
		return 0, fmt.Errorf("failed to delete inventory: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
