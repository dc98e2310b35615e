package domain

// Player represents a registered player, keyed by Discord ID.
// Score is non-negative and equals the sum of point values over all
// items the player has acquired.
type Player struct {
	DiscordID   string `json:"discord_id"`
	DisplayName string `json:"display_name"`
	Score       int    `json:"score"`
}
