package ledger

import "time"

// Grant retry policy for transient transaction failures
const (
	// MaxGrantAttempts bounds internal retries before a grant is
	// surfaced as failed. A failed grant is never reported as success.
	MaxGrantAttempts = 3

	// GrantRetryDelay is the pause between retry attempts.
	GrantRetryDelay = 50 * time.Millisecond
)

// DefaultLeaderboardLimit is used when a caller asks for a
// non-positive number of leaderboard entries.
const DefaultLeaderboardLimit = 10

// Log messages
const (
	LogMsgGrantRetry     = "Grant attempt failed, retrying"
	LogMsgGrantExhausted = "Grant failed after all retry attempts"
	LogMsgItemGranted    = "Item granted"
	LogMsgDuplicateGrant = "Item already owned, no grant"
)
