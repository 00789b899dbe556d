package catalog

import "time"

const (
	// DefaultTTL bounds catalog staleness. Buy/sell traffic does not
	// invalidate the cache; price and rarity only change out of band.
	DefaultTTL = 60 * time.Second

	// ItemCacheSize caps the item-by-id lookup cache.
	ItemCacheSize = 256
)

// Log messages
const (
	LogMsgCatalogRefreshed = "Catalog snapshot refreshed"
)
