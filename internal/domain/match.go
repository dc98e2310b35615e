package domain

// Match is a single accepted (item, slot) pair from a screenshot sweep.
// The same item may be matched at more than one slot, and similar
// reference images may match the same slot; deduplication belongs to
// the grant ledger, not the matcher.
type Match struct {
	Item      Item `json:"item"`
	SlotIndex int  `json:"slot_index"`
	DiffCount int  `json:"diff_count"`
}

// GrantResult reports the outcome of a grant attempt.
// TotalScore is the player's score after the operation whether or not
// the grant was new, so callers can always report a consistent total.
type GrantResult struct {
	ItemID     int    `json:"item_id"`
	ItemName   string `json:"item_name"`
	PointValue int    `json:"point_value"`
	Granted    bool   `json:"granted"`
	TotalScore int    `json:"total_score"`
}
