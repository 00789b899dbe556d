package domain

import "time"

// Rarity is the quality tier of a catalog item. It drives gacha draw
// partitioning: LEGENDARY items are the pity-guaranteed tier.
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityRare      Rarity = "RARE"
	RarityLegendary Rarity = "LEGENDARY"
)

// IsLegendary reports whether the rarity is the top tier.
func (r Rarity) IsLegendary() bool {
	return r == RarityLegendary
}

// Item represents a catalog item. The catalog is read-mostly: items are
// never mutated by shop operations.
type Item struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	ImageURL    string `json:"image_url" db:"image_url"`
	Price       int    `json:"price" db:"price"`
	Rarity      Rarity `json:"rarity" db:"rarity"`
	// GachaWeight is the relative weight for the fixed-odds draw.
	// Zero means the item cannot drop from the fixed gacha.
	GachaWeight int `json:"gacha_weight" db:"gacha_weight"`
}

// SellValue returns the gold credited when the item is sold: half the
// purchase price, rounded down.
func (i Item) SellValue() int {
	return i.Price / 2
}

// OwnedItem is one inventory row joined to its catalog item.
type OwnedItem struct {
	InventoryID int       `json:"inventory_id"`
	ItemID      int       `json:"item_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Price       int       `json:"price"`
	Rarity      Rarity    `json:"rarity"`
	AcquiredAt  time.Time `json:"acquired_at"`
}

// SellValue returns the gold credited when the owned item is sold.
func (o OwnedItem) SellValue() int {
	return o.Price / 2
}
