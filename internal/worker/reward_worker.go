package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GuildCoin_Go/internal/daily"
	"github.com/osse101/GuildCoin_Go/internal/logger"
)

// RewardNotifier delivers a daily reward notice to the user. The chat
// platform layer provides the implementation.
type RewardNotifier interface {
	NotifyReward(ctx context.Context, reward daily.Reward) error
}

// RewardWorker drives the daily reward sweep on a fixed interval. Each tick
// closes the current activity window and pays users that crossed the
// active-minutes threshold.
type RewardWorker struct {
	dailyService daily.Service
	notifier     RewardNotifier
	interval     time.Duration
	shutdown     chan struct{}
	wg           sync.WaitGroup
}

// NewRewardWorker creates a new RewardWorker
func NewRewardWorker(dailyService daily.Service, notifier RewardNotifier) *RewardWorker {
	return &RewardWorker{
		dailyService: dailyService,
		notifier:     notifier,
		interval:     SweepInterval,
		shutdown:     make(chan struct{}),
	}
}

// Start launches the sweep loop.
func (w *RewardWorker) Start() {
	logger.FromContext(context.Background()).Info(LogMsgRewardWorkerStarted, "interval", w.interval)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.shutdown:
				return
			case <-ticker.C:
				w.sweep()
			}
		}
	}()
}

func (w *RewardWorker) sweep() {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	for _, reward := range w.dailyService.Sweep(ctx) {
		if w.notifier == nil {
			continue
		}
		if err := w.notifier.NotifyReward(ctx, reward); err != nil {
			log.Warn(LogMsgNotifyFailed, "user_id", reward.UserID, "error", err)
		}
	}
}

// Shutdown stops the loop and waits for an in-flight sweep to finish.
func (w *RewardWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRewardWorkerStopping)

	close(w.shutdown)

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgRewardWorkerStopped)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgRewardWorkerTimeout)
		return ctx.Err()
	}
}
