package service

import (
	"context"
	"sync"
	"time"

	"github.com/lushkiwi/UT-Marketplace/internal/logger"
)

type inboxRefreshJob struct {
	conversations ConversationService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewInboxRefreshJob creates an inboxRefreshJob that pulls the inbox delta on
// a ticker. The job is idle until Start is called.
func NewInboxRefreshJob(conversations ConversationService) InboxRefreshJob {
	return &inboxRefreshJob{conversations: conversations}
}

// Start implements InboxRefreshJob. It stops any previously running job, then
// launches a background goroutine that calls Refresh every interval. If
// interval is zero or negative it defaults to 30 seconds. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *inboxRefreshJob) Start(ctx context.Context, userID int64, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		log := logger.FromContext(jobCtx)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				// A failed sweep is retried on the next tick; offline
				// periods are expected, so failures stay at debug level.
				if _, err := j.conversations.Refresh(jobCtx, userID); err != nil {
					log.Debug().Err(err).Int64("user_id", userID).Msg("inbox refresh sweep failed")
				}
			}
		}
	}()
}

// Stop implements InboxRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *inboxRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
