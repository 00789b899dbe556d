package shop

// Operation names for metrics labels
const (
	opBuy          = "buy"
	opSell         = "sell"
	opSellAll      = "sell_all"
	opFixedGacha   = "gacha_fixed"
	opDynamicGacha = "gacha_dynamic"
)

// Costs and rates
const (
	// FixedGachaCost is the flat price of one premium (fixed-odds) draw.
	FixedGachaCost = 1000

	// DynamicGachaCostPerPull is the price of one lucky-box draw.
	DynamicGachaCostPerPull = 100

	// MaxDynamicPulls bounds one dynamic gacha request.
	MaxDynamicPulls = 100
)

// User-facing result messages
const (
	MsgMemberNotFound       = "Member not found. Use the username registered with the team."
	MsgItemNotFound         = "That item does not exist."
	MsgInsufficientGold     = "Not enough gold!"
	MsgNoItemToSell         = "Could not find the item to sell."
	MsgNothingToSell        = "No items to sell."
	MsgFixedGachaShortGold  = "Not enough gold! (1,000G required)"
	MsgBuySuccessFmt        = "'%s' purchased! Remaining gold: %dG"
	MsgSellSuccessFmt       = "'%s' sold! +%dG"
	MsgSellAllSuccessFmt    = "Sold all %d items! +%sG"
	MsgDynamicShortGoldFmt  = "Not enough gold! (%dG required)"
	MsgFixedGachaResultFmt  = "Premium gacha result: [%s] %s acquired!"
	MsgDynamicMultiFmt      = "Finished %d pulls! (legendary: %d) - pity %d/%d"
	MsgDynamicJackpotFmt    = "[JACKPOT] [%s] %s acquired!"
	MsgDynamicMissFmt       = "Miss... (%d/%d) [%s] %s acquired!"
)

// Log messages
const (
	LogMsgBuyItemCalled          = "BuyItem called"
	LogMsgSellItemCalled         = "SellItem called"
	LogMsgSellAllItemsCalled     = "SellAllItems called"
	LogMsgPlayFixedGachaCalled   = "PlayFixedGacha called"
	LogMsgPlayDynamicGachaCalled = "PlayDynamicGacha called"
	LogMsgItemPurchased          = "Item purchased"
	LogMsgItemSold               = "Item sold"
	LogMsgInventoryLiquidated    = "Inventory liquidated"
	LogMsgGachaPlayed            = "Gacha played"
)

// Error message formats
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetMemberFailed         = "failed to get member: %w"
	ErrMsgGetItemFailed           = "failed to get item: %w"
	ErrMsgListItemsFailed         = "failed to list items: %w"
	ErrMsgListInventoryFailed     = "failed to list inventory: %w"
	ErrMsgAdjustGoldFailed        = "failed to adjust gold: %w"
	ErrMsgUpdateInventoryFailed   = "failed to update inventory: %w"
	ErrMsgDrawFailed              = "failed to draw reward: %w"
)
