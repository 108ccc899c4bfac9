package worker

import "time"

// DefaultJobTimeout bounds a single job execution
const DefaultJobTimeout = 30 * time.Second

// Log messages for the worker pool
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
