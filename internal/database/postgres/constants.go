package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row is missing
	PgErrorCodeForeignKeyViolation = "23503"
	// PgErrorCodeSerializationFailure is raised when concurrent transactions conflict
	PgErrorCodeSerializationFailure = "40001"
	// PgErrorCodeDeadlockDetected is raised when the server breaks a deadlock
	PgErrorCodeDeadlockDetected = "40P01"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Player Operations
const (
	ErrMsgFailedToUpsertPlayer   = "failed to upsert player"
	ErrMsgFailedToGetPlayer      = "failed to get player"
	ErrMsgFailedToGetLeaderboard = "failed to get leaderboard"
)

// Error Messages - Item Operations
const (
	ErrMsgFailedToGetAllItems = "failed to get all items"
	ErrMsgFailedToGetItemByID = "failed to get item by id"
	ErrMsgFailedToInsertItem  = "failed to insert item"
)

// Error Messages - Grant Operations
const (
	ErrMsgFailedToClaimItem     = "failed to claim item"
	ErrMsgFailedToCreditScore   = "failed to credit score"
	ErrMsgFailedToReadScore     = "failed to read score"
	ErrMsgFailedToGetOwnedItems = "failed to get owned items"
)
