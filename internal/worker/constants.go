package worker

import "time"

// SweepInterval is how often the reward worker closes an activity window.
const SweepInterval = time.Minute

// Log Messages
const (
	LogMsgRewardWorkerStarted  = "Reward worker started"
	LogMsgRewardWorkerStopping = "Shutting down reward worker"
	LogMsgRewardWorkerStopped  = "Reward worker shutdown complete"
	LogMsgRewardWorkerTimeout  = "Reward worker shutdown timeout"
	LogMsgNotifyFailed         = "Reward notification failed"
)
