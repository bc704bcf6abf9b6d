package stats

import (
	"sync"
	"time"
)

const statisticRollingWindows = 5

// RunStatistics contains statistics about the leaf operations executed over a Dataset.
// It is safe for concurrent use.
type RunStatistics struct {
	lock                   sync.Mutex
	started                bool
	startTime              time.Time
	leavesProcessed        int64
	leafFailures           int64
	combines               int64
	recentLeafRuntimes     []int64 // for rolling average of recent leaf processing times
	recentLeafRuntimesHead int
	recentLeafRuntimesLen  int
}

// Start triggers statistics tracking, if it hasn't been started already
func (rs *RunStatistics) Start() {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	rs.start()
}

func (rs *RunStatistics) start() {
	if !rs.started {
		rs.started = true
		rs.startTime = time.Now()
		rs.recentLeafRuntimes = make([]int64, statisticRollingWindows)
	}
}

// StartLeaf tracks the beginning of the processing of a leaf, returning its start time
func (rs *RunStatistics) StartLeaf() time.Time {
	rs.Start()
	return time.Now()
}

// EndLeaf tracks the end of the processing of a leaf which began at start
func (rs *RunStatistics) EndLeaf(start time.Time, err error) {
	elapsed := time.Since(start).Nanoseconds()
	rs.lock.Lock()
	defer rs.lock.Unlock()
	rs.start()
	if err != nil {
		rs.leafFailures++
		return
	}
	rs.leavesProcessed++
	rs.recentLeafRuntimes[rs.recentLeafRuntimesHead] = elapsed
	rs.recentLeafRuntimesHead = (rs.recentLeafRuntimesHead + 1) % len(rs.recentLeafRuntimes)
	if rs.recentLeafRuntimesLen < len(rs.recentLeafRuntimes) {
		rs.recentLeafRuntimesLen++
	}
}

// Combined tracks the combination of n partial results
func (rs *RunStatistics) Combined(n int) {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	rs.combines += int64(n)
}

// GetStartTime returns the time at which the first leaf operation began
func (rs *RunStatistics) GetStartTime() time.Time {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.startTime
}

// GetNumLeavesProcessed returns the number of leaf operations which have completed successfully
func (rs *RunStatistics) GetNumLeavesProcessed() int64 {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.leavesProcessed
}

// GetNumLeafFailures returns the number of leaf operations which have failed
func (rs *RunStatistics) GetNumLeafFailures() int64 {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.leafFailures
}

// GetNumCombines returns the number of partial results which have been combined
func (rs *RunStatistics) GetNumCombines() int64 {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.combines
}

// GetCurrentLeafProcessingTime returns a rolling average of leaf processing time
func (rs *RunStatistics) GetCurrentLeafProcessingTime() time.Duration {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	if rs.recentLeafRuntimesLen == 0 {
		return 0
	}
	var total int64
	for _, d := range rs.recentLeafRuntimes {
		total += d
	}
	return time.Duration(total / int64(rs.recentLeafRuntimesLen))
}
