package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details; handlers and
// tests both reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidPullCount      = "count must be between 1 and 100"

	ErrMsgListItemsFailed    = "Failed to list items"
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgGetGoldFailed      = "Failed to get gold"
	ErrMsgBuyItemFailed      = "Failed to buy item"
	ErrMsgSellItemFailed     = "Failed to sell item"
	ErrMsgSellAllFailed      = "Failed to sell items"
	ErrMsgGachaFailed        = "Failed to play gacha"
)
