package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log field keys
const (
	LogFieldWorker = "worker"
	LogFieldError  = "error"
)
