package domain

// Member represents a shop account. Members are created by the external
// registration flow; this service only mutates gold and the gacha fail count.
type Member struct {
	Username       string `json:"username" db:"username"`
	Name           string `json:"name" db:"name"`
	Gold           int    `json:"gold" db:"gold"`
	GachaFailCount int    `json:"gacha_fail_count" db:"gacha_fail_count"`
}

// Balance is the read-model returned by the gold endpoint.
type Balance struct {
	Gold           int `json:"gold"`
	GachaFailCount int `json:"gacha_fail_count"`
}
