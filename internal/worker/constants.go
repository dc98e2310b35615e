package worker

// Default pool sizing. One screenshot scan is CPU-bound for tens of
// milliseconds, so a small pool keeps the bot responsive.
const (
	DefaultWorkers   = 2
	DefaultQueueSize = 64
)

// Log messages
const LogMsgJobFailed = "Background job failed"
