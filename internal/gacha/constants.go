package gacha

// Pity mechanics. A member can never go more than PityLimit dynamic draws
// without a LEGENDARY reward: once the running fail counter reaches
// PityLimit-1 the next draw is forced to the legendary partition.
const (
	PityLimit = 50

	// The non-pity legendary chance is 1 in LegendaryRollRange.
	LegendaryRollRange = 100
	LegendaryRollHit   = 1
)
