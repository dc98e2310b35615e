package scanner

// DefaultAcceptanceThreshold is the maximum differing-pixel count for
// a slot/item pair to count as a match. Tuned against real captures;
// independent of the diff tolerance, which absorbs per-pixel noise.
const DefaultAcceptanceThreshold = 0

// DefaultMatchWorkers bounds concurrent slot comparisons per
// screenshot so large catalogs cannot fan out without limit.
const DefaultMatchWorkers = 8

// Log messages
const (
	LogMsgReferenceSkipped  = "Reference image unavailable, skipping item"
	LogMsgComparisonSkipped = "Comparison skipped"
	LogMsgMatchAccepted     = "Match accepted"
	LogMsgScanComplete      = "Screenshot scan complete"
	LogMsgScreenshotFailed  = "Screenshot could not be processed"
)
