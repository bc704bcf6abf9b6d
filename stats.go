package hiero

import "time"

// RuntimeStatistics facilitates the retrieval of statistics about Map and Sketch execution
type RuntimeStatistics interface {
	// GetStartTime returns the time at which the first leaf operation began
	GetStartTime() time.Time
	// GetNumLeavesProcessed returns the number of leaf operations which have completed successfully
	GetNumLeavesProcessed() int64
	// GetNumLeafFailures returns the number of leaf operations which have failed
	GetNumLeafFailures() int64
	// GetNumCombines returns the number of partial results which have been combined
	GetNumCombines() int64
	// GetCurrentLeafProcessingTime returns a rolling average of leaf processing time
	GetCurrentLeafProcessingTime() time.Duration
}
