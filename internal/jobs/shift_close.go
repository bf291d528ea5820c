package jobs

import (
	"context"
	"log"
	"time"
)

// ForgottenCloser closes attendance cycles left open past the cutoff.
type ForgottenCloser interface {
	CloseForgotten(ctx context.Context, cutoff time.Time) (int, error)
}

// StartShiftCloseJob periodically force-closes cycles whose owner forgot to
// time out. Anything still open at the start of the current day gets closed
// with zero credited hours and the forgot_time_out flag set.
func StartShiftCloseJob(ctx context.Context, closer ForgottenCloser, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				now := time.Now()
				cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

				tickCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
				closed, err := closer.CloseForgotten(tickCtx, cutoff)
				cancel()
				if err != nil {
					log.Printf("shift close job error: %v", err)
					continue
				}
				if closed > 0 {
					log.Printf("shift close job closed %d forgotten cycles", closed)
				}
			}
		}
	}()
}
