package domain

// Result is the common outcome record every shop use-case returns.
// Business failures (not found, insufficient funds, nothing to sell) are
// reported here with Success=false; only store failures travel as errors.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Failure builds a failed Result with the given message.
func Failure(message string) Result {
	return Result{Success: false, Message: message}
}

// PurchaseResult is the outcome of a buy operation.
type PurchaseResult struct {
	Result
	ItemName string `json:"item_name,omitempty"`
	NewGold  int    `json:"new_gold"`
}

// SaleResult is the outcome of a sell or sell-all operation.
type SaleResult struct {
	Result
	SoldCount  int `json:"sold_count"`
	GoldGained int `json:"gold_gained"`
}

// DrawnItem is one gacha reward as reported to the caller.
type DrawnItem struct {
	ItemID int    `json:"item_id"`
	Name   string `json:"name"`
	Rarity Rarity `json:"rarity"`
}

// GachaResult is the outcome of a fixed or dynamic gacha operation.
// FailCount is the persisted pity counter after the draw; it is always
// zero for the fixed gacha, which does not interact with pity.
type GachaResult struct {
	Result
	Items     []DrawnItem `json:"items,omitempty"`
	FailCount int         `json:"fail_count"`
}
